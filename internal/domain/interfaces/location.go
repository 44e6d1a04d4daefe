package interfaces

import (
	"context"

	domaintypes "sevanear/internal/domain/types"
)

// Locator resolves the device's current position. It never fails outward:
// implementations degrade to a fixed default coordinate rather than
// returning an error, because no caller in the app handles a missing
// location.
type Locator interface {
	Position(ctx context.Context) domaintypes.Coordinate
}

// Strategy is one way of resolving the position inside a fallback chain.
// Returning an error means "unavailable here, try the next strategy".
type Strategy interface {
	Position(ctx context.Context) (domaintypes.Coordinate, error)
}

// PermissionBridge is the host shell's permission-gated geolocation
// capability. The shell itself is out of scope; this is its contract.
type PermissionBridge interface {
	CheckPermission(ctx context.Context) (granted bool, err error)
	RequestPermission(ctx context.Context) (granted bool, err error)
	Position(ctx context.Context) (domaintypes.Coordinate, error)
}
