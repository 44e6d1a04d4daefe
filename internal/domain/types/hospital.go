package types

// Hospital is one entry of the hospital catalog. Identifiers are unique
// within a single fetch and are the foreign-key target of Service.
type Hospital struct {
	ID       HospitalID `json:"id"`
	Name     string     `json:"name"`
	Location Coordinate `json:"location"`
	Address  string     `json:"address,omitempty"`
	District string     `json:"district,omitempty"`
	Phone    string     `json:"phone,omitempty"`
}

// ServiceType is one entry of the category catalog used as an optional
// search filter.
type ServiceType struct {
	ID   ServiceTypeID `json:"id"`
	Name string        `json:"name"`
	Icon string        `json:"icon,omitempty"`
}
