package state

import (
	"sync"

	"sevanear/internal/domain"
)

// Store holds the session's last-fetched snapshots and current selections.
// Every writer overwrites whole fields; nothing merges and nothing notifies.
// Consumers re-read synchronously after an operation completes.
//
// List and detail commits carry a generation token. A fetch that starts
// later bumps the generation, so a slow response from an earlier fetch is
// discarded instead of overwriting newer state.
type Store struct {
	mu sync.Mutex

	hospitals    []domain.Hospital
	serviceTypes []domain.ServiceType

	services    []domain.Service
	listTitle   string
	listCounter string
	listGen     uint64

	selectedHospital domain.HospitalID

	current    domain.Service
	hasCurrent bool
	detailGen  uint64
}

// New returns an empty store.
func New() *Store { return &Store{} }

// SetHospitals replaces the hospital catalog.
func (s *Store) SetHospitals(hs []domain.Hospital) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hospitals = append([]domain.Hospital(nil), hs...)
}

// SetServiceTypes replaces the category catalog.
func (s *Store) SetServiceTypes(ts []domain.ServiceType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serviceTypes = append([]domain.ServiceType(nil), ts...)
}

// Hospitals returns a copy of the hospital catalog.
func (s *Store) Hospitals() []domain.Hospital {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Hospital(nil), s.hospitals...)
}

// ServiceTypes returns a copy of the category catalog.
func (s *Store) ServiceTypes() []domain.ServiceType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ServiceType(nil), s.serviceTypes...)
}

// HospitalByID looks a hospital up in the current catalog.
func (s *Store) HospitalByID(id domain.HospitalID) (domain.Hospital, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.hospitals {
		if h.ID == id {
			return h, true
		}
	}
	return domain.Hospital{}, false
}

// ServiceTypeByID looks a category up in the current catalog.
func (s *Store) ServiceTypeByID(id domain.ServiceTypeID) (domain.ServiceType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.serviceTypes {
		if t.ID == id {
			return t, true
		}
	}
	return domain.ServiceType{}, false
}

// SelectHospital records the hospital the user is searching under.
func (s *Store) SelectHospital(id domain.HospitalID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedHospital = id
}

// SelectedHospital returns the current hospital selection.
func (s *Store) SelectedHospital() domain.HospitalID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedHospital
}

// NextListGen marks the start of a new service-list fetch and invalidates
// any fetch still in flight.
func (s *Store) NextListGen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listGen++
	return s.listGen
}

// CommitServices replaces the service list with its display texts. It
// reports false, leaving state untouched, when gen is no longer current.
func (s *Store) CommitServices(gen uint64, list []domain.Service, title, counter string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.listGen {
		return false
	}
	s.services = append([]domain.Service(nil), list...)
	s.listTitle = title
	s.listCounter = counter
	return true
}

// Services returns a copy of the current service list.
func (s *Store) Services() []domain.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Service(nil), s.services...)
}

// ListTexts returns the list page's title and counter line.
func (s *Store) ListTexts() (title, counter string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listTitle, s.listCounter
}

// NextDetailGen marks the start of a new detail fetch.
func (s *Store) NextDetailGen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailGen++
	return s.detailGen
}

// CommitCurrent replaces the currently viewed service, subject to the same
// generation check as CommitServices.
func (s *Store) CommitCurrent(gen uint64, svc domain.Service) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.detailGen {
		return false
	}
	s.current = svc
	s.hasCurrent = true
	return true
}

// Current returns the currently viewed service, if any.
func (s *Store) Current() (domain.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.hasCurrent
}
