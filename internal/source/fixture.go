package source

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sevanear/internal/domain"
)

// SimulatedDelay approximates one network round trip in fixture mode.
const SimulatedDelay = 300 * time.Millisecond

// Fixture serves the canned sample catalog instead of a live backend. Every
// call waits Delay before answering so flows behave like real fetches.
type Fixture struct {
	Delay time.Duration

	hospitals    []domain.Hospital
	serviceTypes []domain.ServiceType
	services     []domain.Service
}

// NewFixture returns a fixture source with the default simulated delay.
func NewFixture() *Fixture {
	return &Fixture{
		Delay:        SimulatedDelay,
		hospitals:    fixtureHospitals(),
		serviceTypes: fixtureServiceTypes(),
		services:     fixtureServices(),
	}
}

func (f *Fixture) wait(ctx context.Context) error {
	if f.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(f.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (f *Fixture) ListHospitals(ctx context.Context) ([]domain.Hospital, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return append([]domain.Hospital(nil), f.hospitals...), nil
}

func (f *Fixture) ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return append([]domain.ServiceType(nil), f.serviceTypes...), nil
}

func (f *Fixture) FilterServices(
	ctx context.Context,
	hospital domain.HospitalID,
	serviceType domain.ServiceTypeID,
) ([]domain.Service, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	var out []domain.Service
	for _, s := range f.services {
		if s.HospitalID != hospital {
			continue
		}
		if !serviceType.All() && s.ServiceTypeID != serviceType {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *Fixture) GetService(ctx context.Context, id domain.ServiceID) (domain.Service, error) {
	if err := f.wait(ctx); err != nil {
		return domain.Service{}, err
	}
	for _, s := range f.services {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Service{}, fmt.Errorf("%w: %s", domain.ErrServiceNotFound, id)
}

// NearbyServices returns the whole sample set; the fixture has no real
// geospatial index and the samples all sit around one city anyway.
func (f *Fixture) NearbyServices(
	ctx context.Context,
	at domain.Coordinate,
	radiusKm float64,
) ([]domain.Service, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return append([]domain.Service(nil), f.services...), nil
}

func (f *Fixture) CreateService(
	ctx context.Context,
	draft domain.ServiceDraft,
) (domain.CreateAck, error) {
	if err := f.wait(ctx); err != nil {
		return domain.CreateAck{}, err
	}
	return domain.CreateAck{
		ID:      "new-" + uuid.NewString(),
		Message: "Created successfully",
	}, nil
}

// Compile-time assertion that Fixture implements domain.Source.
var _ domain.Source = (*Fixture)(nil)
