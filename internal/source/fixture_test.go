package source_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sevanear/internal/domain"
	"sevanear/internal/source"
)

// quickFixture strips the simulated delay for tests that don't care about it.
func quickFixture() *source.Fixture {
	f := source.NewFixture()
	f.Delay = 0
	return f
}

func TestFixture_ServiceTypesRoundTrip(t *testing.T) {
	got, err := quickFixture().ListServiceTypes(context.Background())
	if err != nil {
		t.Fatalf("ListServiceTypes: %v", err)
	}
	wantNames := []string{"Food", "Medicine", "Shelter", "Medical Care", "Transport", "Counseling"}
	if len(got) != len(wantNames) {
		t.Fatalf("got %d types, want %d", len(got), len(wantNames))
	}
	for i, name := range wantNames {
		if got[i].Name != name {
			t.Fatalf("types[%d] = %q, want %q (order must be preserved)", i, got[i].Name, name)
		}
		if got[i].ID != domain.ServiceTypeID(i+1) {
			t.Fatalf("types[%d].ID = %d, want %d", i, got[i].ID, i+1)
		}
	}
}

func TestFixture_FilterByHospitalOnly(t *testing.T) {
	got, err := quickFixture().FilterServices(context.Background(), "1", 0)
	if err != nil {
		t.Fatalf("FilterServices: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("hospital 1 owns %d services, want 3", len(got))
	}
	for _, s := range got {
		if s.HospitalID != "1" {
			t.Fatalf("service %s belongs to hospital %s", s.ID, s.HospitalID)
		}
	}
}

func TestFixture_FilterByHospitalAndType(t *testing.T) {
	got, err := quickFixture().FilterServices(context.Background(), "1", 2)
	if err != nil {
		t.Fatalf("FilterServices: %v", err)
	}
	if len(got) != 1 || got[0].ID != "s2" {
		t.Fatalf("got %v, want exactly s2", got)
	}

	// A category no hospital-1 service carries yields an empty list.
	got, err = quickFixture().FilterServices(context.Background(), "1", 5)
	if err != nil {
		t.Fatalf("FilterServices: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d services, want 0", len(got))
	}
}

func TestFixture_GetServiceDetail(t *testing.T) {
	svc, err := quickFixture().GetService(context.Background(), "s1")
	if err != nil {
		t.Fatalf("GetService: %v", err)
	}
	if svc.Provider != "Helping Hands NGO" {
		t.Fatalf("provider = %q, want %q", svc.Provider, "Helping Hands NGO")
	}
	if svc.Eligibility == "" || svc.RequiredDocs == "" {
		t.Fatal("s1 carries both optional sections")
	}
}

func TestFixture_GetServiceUnknown(t *testing.T) {
	_, err := quickFixture().GetService(context.Background(), "nope")
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("err = %v, want ErrServiceNotFound", err)
	}
}

func TestFixture_NearbyReturnsWholeSet(t *testing.T) {
	got, err := quickFixture().NearbyServices(context.Background(), domain.Coordinate{}, 5)
	if err != nil {
		t.Fatalf("NearbyServices: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("got %d services, want the full fixture set of 6", len(got))
	}
}

func TestFixture_CreateAck(t *testing.T) {
	ack, err := quickFixture().CreateService(context.Background(), domain.ServiceDraft{Name: "x"})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if ack.ID == "" {
		t.Fatal("ack carries no id")
	}
	if ack.Message != "Created successfully" {
		t.Fatalf("message = %q", ack.Message)
	}
}

func TestFixture_DelayHonorsContext(t *testing.T) {
	f := source.NewFixture() // full 300ms delay
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := f.ListHospitals(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want DeadlineExceeded", err)
	}
}
