package interfaces

import domaintypes "sevanear/internal/domain/types"

// Screen is the navigator's rendering sink: hide every page, show the one
// requested. The terminal front-end implements it; tests use a fake.
type Screen interface {
	Show(page domaintypes.Page)
}

// MapView receives the map-centering side effect when a service detail
// page opens. The actual tile rendering is out of scope.
type MapView interface {
	CenterOn(at domaintypes.Coordinate)
}
