package location_test

import (
	"context"
	"errors"
	"testing"

	"sevanear/internal/domain"
	"sevanear/internal/location"
)

var errUnavailable = errors.New("unavailable")

func failing() location.Func {
	return func(ctx context.Context) (domain.Coordinate, error) {
		return domain.Coordinate{}, errUnavailable
	}
}

func TestChain_DenialEverywhereResolvesDefault(t *testing.T) {
	c := location.NewChain(nil, location.DefaultCoordinate, failing(), failing(), failing())

	got := c.Position(context.Background())
	if got.Latitude != 11.2588 || got.Longitude != 75.7804 {
		t.Fatalf("got %v, want the Kozhikode default", got)
	}
}

func TestChain_NoStrategiesResolvesDefault(t *testing.T) {
	fallback := domain.Coordinate{Latitude: 1, Longitude: 2}
	c := location.NewChain(nil, fallback)

	if got := c.Position(context.Background()); got != fallback {
		t.Fatalf("got %v, want %v", got, fallback)
	}
}

func TestChain_FirstSuccessWins(t *testing.T) {
	want := domain.Coordinate{Latitude: 10, Longitude: 76}
	second := location.Static{At: domain.Coordinate{Latitude: 99, Longitude: 99}}
	c := location.NewChain(nil, location.DefaultCoordinate,
		failing(),
		location.Static{At: want},
		second,
	)

	if got := c.Position(context.Background()); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// fakeBridge scripts the host-shell permission flow.
type fakeBridge struct {
	granted      bool
	grantOnAsk   bool
	asked        bool
	at           domain.Coordinate
	positionErr  error
	positionHits int
}

func (b *fakeBridge) CheckPermission(ctx context.Context) (bool, error) {
	return b.granted, nil
}

func (b *fakeBridge) RequestPermission(ctx context.Context) (bool, error) {
	b.asked = true
	return b.grantOnAsk, nil
}

func (b *fakeBridge) Position(ctx context.Context) (domain.Coordinate, error) {
	b.positionHits++
	return b.at, b.positionErr
}

func TestBridge_RequestsPermissionOnce(t *testing.T) {
	want := domain.Coordinate{Latitude: 11.25, Longitude: 75.78}
	bridge := &fakeBridge{grantOnAsk: true, at: want}

	got, err := location.NewBridge(bridge).Position(context.Background())
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	if !bridge.asked {
		t.Fatal("permission was never requested")
	}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBridge_DenialFallsThrough(t *testing.T) {
	bridge := &fakeBridge{}
	_, err := location.NewBridge(bridge).Position(context.Background())
	if !errors.Is(err, location.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
	if bridge.positionHits != 0 {
		t.Fatal("position queried despite denial")
	}

	// Inside a chain the denial is invisible: the default comes back.
	c := location.NewChain(nil, location.DefaultCoordinate, location.NewBridge(bridge))
	if got := c.Position(context.Background()); got != location.DefaultCoordinate {
		t.Fatalf("got %v, want default", got)
	}
}

func TestEnv_ReadsCoordinate(t *testing.T) {
	t.Setenv("TEST_LAT", "9.9312")
	t.Setenv("TEST_LNG", "76.2673")

	got, err := location.Env{LatVar: "TEST_LAT", LngVar: "TEST_LNG"}.Position(context.Background())
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	if got.Latitude != 9.9312 || got.Longitude != 76.2673 {
		t.Fatalf("got %v", got)
	}
}

func TestEnv_UnsetFallsThrough(t *testing.T) {
	_, err := location.Env{LatVar: "TEST_UNSET_LAT", LngVar: "TEST_UNSET_LNG"}.Position(context.Background())
	if err == nil {
		t.Fatal("expected error for unset variables")
	}
}
