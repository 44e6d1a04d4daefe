package location

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"sevanear/internal/domain"
)

// ErrPermissionDenied reports that the host shell refused the location
// permission. It only ever moves the chain to the next strategy.
var ErrPermissionDenied = errors.New("location permission denied")

// Func adapts a plain function to domain.Strategy.
type Func func(ctx context.Context) (domain.Coordinate, error)

// Position calls the function.
func (f Func) Position(ctx context.Context) (domain.Coordinate, error) { return f(ctx) }

// Bridge asks the host shell's permission-gated geolocation capability:
// check the permission, request it once if missing, then query the position.
// Denial falls through rather than propagating as a hard failure.
type Bridge struct {
	bridge domain.PermissionBridge
}

// NewBridge wraps a host-shell bridge as a chain strategy.
func NewBridge(b domain.PermissionBridge) *Bridge { return &Bridge{bridge: b} }

func (b *Bridge) Position(ctx context.Context) (domain.Coordinate, error) {
	granted, err := b.bridge.CheckPermission(ctx)
	if err != nil {
		return domain.Coordinate{}, err
	}
	if !granted {
		granted, err = b.bridge.RequestPermission(ctx)
		if err != nil {
			return domain.Coordinate{}, err
		}
		if !granted {
			return domain.Coordinate{}, ErrPermissionDenied
		}
	}
	return b.bridge.Position(ctx)
}

// Env reads a fixed coordinate from a pair of environment variables, the
// closest a terminal client gets to the browser geolocation API.
type Env struct {
	LatVar string
	LngVar string
}

func (e Env) Position(ctx context.Context) (domain.Coordinate, error) {
	rawLat, okLat := os.LookupEnv(e.LatVar)
	rawLng, okLng := os.LookupEnv(e.LngVar)
	if !okLat || !okLng {
		return domain.Coordinate{}, fmt.Errorf("%s/%s not set", e.LatVar, e.LngVar)
	}
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("parse %s: %w", e.LatVar, err)
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("parse %s: %w", e.LngVar, err)
	}
	return domain.Coordinate{Latitude: lat, Longitude: lng}, nil
}

// Static always resolves to a fixed coordinate.
type Static struct {
	At domain.Coordinate
}

func (s Static) Position(ctx context.Context) (domain.Coordinate, error) { return s.At, nil }
