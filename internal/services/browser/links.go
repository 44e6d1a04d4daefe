package browser

import (
	"fmt"

	"sevanear/internal/domain"
)

// CallLink returns the dial URI for a listing, preferring the provider's
// direct number over the general contact.
func CallLink(s domain.Service) string {
	number := s.ProviderContact
	if number == "" {
		number = s.Contact
	}
	return "tel:" + number
}

// DirectionsLink returns the external map-routing URL for a listing's
// coordinate.
func DirectionsLink(s domain.Service) string {
	return fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&destination=%v,%v",
		s.Location.Latitude, s.Location.Longitude,
	)
}
