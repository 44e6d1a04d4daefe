package interfaces

import (
	"context"

	domaintypes "sevanear/internal/domain/types"
)

// Source is the closed set of backend operations the client performs.
// Implementations are the live HTTP backend and the canned fixture set;
// callers never see which one they hold.
type Source interface {
	// ListHospitals returns the hospital catalog.
	ListHospitals(ctx context.Context) ([]domaintypes.Hospital, error)

	// ListServiceTypes returns the category catalog.
	ListServiceTypes(ctx context.Context) ([]domaintypes.ServiceType, error)

	// FilterServices returns the services owned by hospital, narrowed to one
	// category unless serviceType is the all-categories sentinel.
	FilterServices(
		ctx context.Context,
		hospital domaintypes.HospitalID,
		serviceType domaintypes.ServiceTypeID,
	) ([]domaintypes.Service, error)

	// GetService returns a single listing by identifier.
	GetService(ctx context.Context, id domaintypes.ServiceID) (domaintypes.Service, error)

	// NearbyServices returns the listings within radiusKm of a coordinate.
	// Radius semantics belong to the backend; results are not re-filtered.
	NearbyServices(
		ctx context.Context,
		at domaintypes.Coordinate,
		radiusKm float64,
	) ([]domaintypes.Service, error)

	// CreateService submits a new listing and returns the backend's ack.
	CreateService(
		ctx context.Context,
		draft domaintypes.ServiceDraft,
	) (domaintypes.CreateAck, error)
}
