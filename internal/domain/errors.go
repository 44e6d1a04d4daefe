package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrHospitalRequired is returned when a search is attempted without a
	// hospital selection. It is raised locally, before any network call.
	ErrHospitalRequired = errors.New("select a hospital before searching")

	// ErrServiceNotFound is returned when a listing identifier is unknown.
	ErrServiceNotFound = errors.New("service not found")
)

// BackendError reports a non-2xx response from the services backend. The raw
// body is retained so the failure can be shown to the user verbatim; there is
// no retry and no partial recovery.
type BackendError struct {
	Method     string
	URL        string
	Status     string
	StatusCode int
	Body       []byte
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s %s: %s", e.Method, e.URL, e.Status)
}
