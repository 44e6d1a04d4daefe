package types

// Service is a community-aid offering tied to a hospital and a category.
// Listings are created remotely through the submission flow and are
// read-only to this client afterwards; a re-fetch replaces the whole set.
type Service struct {
	ID              ServiceID     `json:"id"`
	HospitalID      HospitalID    `json:"hospital_id"`
	HospitalName    string        `json:"hospital_name,omitempty"`
	ServiceTypeID   ServiceTypeID `json:"service_type_id"`
	ServiceTypeName string        `json:"service_type_name,omitempty"`
	Name            string        `json:"name"`
	Provider        string        `json:"provider"`
	ProviderContact string        `json:"provider_contact,omitempty"`
	Contact         string        `json:"contact,omitempty"`
	Description     string        `json:"description,omitempty"`
	Timings         string        `json:"timings,omitempty"`
	Eligibility     string        `json:"eligibility,omitempty"`
	RequiredDocs    string        `json:"required_docs,omitempty"`
	Location        Coordinate    `json:"location"`
	Active          bool          `json:"is_active"`
}

// CreateAck is the backend's acknowledgment of a new listing.
type CreateAck struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
