package app

import (
	"net/http"

	"go.uber.org/zap"

	"sevanear/internal/domain"
	"sevanear/internal/location"
	"sevanear/internal/logger"
	"sevanear/internal/nav"
	"sevanear/internal/services/browser"
	"sevanear/internal/services/submission"
	"sevanear/internal/source"
	"sevanear/internal/state"
)

// Wire bundles the store, navigator, services, and clients for the CLI.
type Wire struct {
	Log         *zap.Logger
	Source      domain.Source
	Store       *state.Store
	Nav         *nav.Navigator
	Locator     domain.Locator
	Browser     *browser.Service
	Submissions *submission.Service
}

// NewWire constructs the dependency graph from cfg. The screen and map view
// come from the front-end; nil means a no-op sink (fine for plain
// line-oriented commands).
func NewWire(cfg Config, screen domain.Screen, mapView domain.MapView) (*Wire, error) {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	var src domain.Source
	if cfg.Fixture {
		src = source.NewFixture()
	} else {
		httpClient := cfg.HTTP
		if httpClient == nil && cfg.Timeout > 0 {
			httpClient = &http.Client{Timeout: cfg.Timeout}
		}
		src = source.NewClient(cfg.APIURL, httpClient)
	}

	store := state.New()
	navigator := nav.New(screen)

	// No host-shell bridge exists in a terminal build; the chain is the
	// environment coordinate, then the configured default.
	locator := location.NewChain(
		log,
		domain.Coordinate{Latitude: cfg.DefaultLatitude, Longitude: cfg.DefaultLongitude},
		location.Env{LatVar: EnvLatVar, LngVar: EnvLngVar},
	)

	return &Wire{
		Log:         log,
		Source:      src,
		Store:       store,
		Nav:         navigator,
		Locator:     locator,
		Browser:     browser.New(src, store, navigator, locator, mapView, log),
		Submissions: submission.New(src, log),
	}, nil
}
