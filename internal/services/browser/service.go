package browser

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"sevanear/internal/domain"
	"sevanear/internal/domain/types"
	"sevanear/internal/nav"
	"sevanear/internal/state"
)

// nearbyRadiusKm is the backend's geo-search radius. Results are trusted
// as-is; the client never re-validates distances.
const nearbyRadiusKm = 5

// MapFunc adapts a plain function to domain.MapView.
type MapFunc func(at domain.Coordinate)

// CenterOn calls the function.
func (f MapFunc) CenterOn(at domain.Coordinate) { f(at) }

// Service orchestrates search, nearby, and detail flows: it queries the data
// source, commits results to the state store, and drives the navigator.
//
// Each fetch runs under a store generation so a response arriving after the
// user has moved on is discarded rather than committed.
type Service struct {
	source  domain.Source
	store   *state.Store
	nav     *nav.Navigator
	locator domain.Locator
	mapView domain.MapView
	log     *zap.Logger
}

// New constructs a browser over the given collaborators. mapView may be nil
// when no map surface exists; log may be nil.
func New(
	source domain.Source,
	store *state.Store,
	navigator *nav.Navigator,
	locator domain.Locator,
	mapView domain.MapView,
	log *zap.Logger,
) *Service {
	if mapView == nil {
		mapView = MapFunc(func(domain.Coordinate) {})
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		source:  source,
		store:   store,
		nav:     navigator,
		locator: locator,
		mapView: mapView,
		log:     log,
	}
}

// LoadCatalog fetches the hospital and category catalogs into the store.
// It runs once at startup and again only on a full restart.
func (s *Service) LoadCatalog(ctx context.Context) error {
	hospitals, err := s.source.ListHospitals(ctx)
	if err != nil {
		return fmt.Errorf("load hospitals: %w", err)
	}
	serviceTypes, err := s.source.ListServiceTypes(ctx)
	if err != nil {
		return fmt.Errorf("load service types: %w", err)
	}
	s.store.SetHospitals(hospitals)
	s.store.SetServiceTypes(serviceTypes)
	return nil
}

// Search fetches the services of one hospital, optionally narrowed to a
// category, commits them with their display texts, and navigates to the
// list page. An empty hospital selection fails locally with
// domain.ErrHospitalRequired before any network call.
func (s *Service) Search(
	ctx context.Context,
	hospital domain.HospitalID,
	serviceType domain.ServiceTypeID,
) error {
	if hospital == "" {
		return domain.ErrHospitalRequired
	}
	s.store.SelectHospital(hospital)

	gen := s.store.NextListGen()
	list, err := s.source.FilterServices(ctx, hospital, serviceType)
	if err != nil {
		return err
	}

	title := "Services"
	if h, ok := s.store.HospitalByID(hospital); ok {
		title = h.Name
	}
	if !s.store.CommitServices(gen, list, title, countText(len(list), "available")) {
		s.log.Debug("stale search response dropped", zap.String("hospital", hospital.String()))
		return nil
	}
	s.nav.Push(types.PageServiceList)
	return nil
}

// FindNearby resolves the current position, fetches the services within the
// backend's radius, and navigates to the list page. The locator never
// fails, so the flow degrades to the default coordinate at worst.
func (s *Service) FindNearby(ctx context.Context) error {
	at := s.locator.Position(ctx)

	gen := s.store.NextListGen()
	list, err := s.source.NearbyServices(ctx, at, nearbyRadiusKm)
	if err != nil {
		return err
	}
	if !s.store.CommitServices(gen, list, "Nearby Services", countText(len(list), "found within 5km")) {
		s.log.Debug("stale nearby response dropped")
		return nil
	}
	s.nav.Push(types.PageServiceList)
	return nil
}

// ViewDetail fetches one listing, makes it the currently viewed service,
// navigates to the detail page, and centers the map on its coordinate.
func (s *Service) ViewDetail(ctx context.Context, id domain.ServiceID) error {
	gen := s.store.NextDetailGen()
	svc, err := s.source.GetService(ctx, id)
	if err != nil {
		return err
	}
	if !s.store.CommitCurrent(gen, svc) {
		s.log.Debug("stale detail response dropped", zap.String("service", id.String()))
		return nil
	}
	s.nav.Push(types.PageServiceDetail)
	s.mapView.CenterOn(svc.Location)
	return nil
}

// countText pluralizes the list counter, e.g. "1 service available",
// "3 services found within 5km".
func countText(n int, suffix string) string {
	noun := "service"
	if n != 1 {
		noun = "services"
	}
	return fmt.Sprintf("%d %s %s", n, noun, suffix)
}
