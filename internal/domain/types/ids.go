package types

// HospitalID identifies a hospital in the directory.
type HospitalID string

// String returns the string form of the hospital identifier.
func (id HospitalID) String() string { return string(id) }

// ServiceID identifies a single community-aid service listing.
type ServiceID string

// String returns the string form of the service identifier.
func (id ServiceID) String() string { return string(id) }

// ServiceTypeID identifies a service category. The zero value means
// "all categories" when used as a filter.
type ServiceTypeID int

// All reports whether the identifier is the unfiltered sentinel.
func (id ServiceTypeID) All() bool { return id == 0 }
