package browser_test

import (
	"testing"

	"sevanear/internal/domain"
	"sevanear/internal/services/browser"
)

func TestCallLink_PrefersProviderContact(t *testing.T) {
	svc := domain.Service{ProviderContact: "9876543210", Contact: "0495-111"}
	if got := browser.CallLink(svc); got != "tel:9876543210" {
		t.Fatalf("got %q", got)
	}

	svc.ProviderContact = ""
	if got := browser.CallLink(svc); got != "tel:0495-111" {
		t.Fatalf("got %q", got)
	}
}

func TestDirectionsLink(t *testing.T) {
	svc := domain.Service{Location: domain.Coordinate{Latitude: 11.2588, Longitude: 75.7804}}
	want := "https://www.google.com/maps/dir/?api=1&destination=11.2588,75.7804"
	if got := browser.DirectionsLink(svc); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
