package app_test

import (
	"testing"

	"sevanear/internal/app"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := app.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL == "" {
		t.Fatal("no default API URL")
	}
	if cfg.Fixture {
		t.Fatal("fixture mode must default off")
	}
	if cfg.DefaultLatitude != 11.2588 || cfg.DefaultLongitude != 75.7804 {
		t.Fatalf("default coordinate = %v, %v", cfg.DefaultLatitude, cfg.DefaultLongitude)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SEVANEAR_FIXTURE", "true")
	t.Setenv("SEVANEAR_API_URL", "http://localhost:9999")

	cfg, err := app.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Fixture {
		t.Fatal("SEVANEAR_FIXTURE ignored")
	}
	if cfg.APIURL != "http://localhost:9999" {
		t.Fatalf("api url = %q", cfg.APIURL)
	}
}

func TestNewWire_FixtureMode(t *testing.T) {
	cfg, err := app.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Fixture = true

	w, err := app.NewWire(cfg, nil, nil)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.Source == nil || w.Store == nil || w.Nav == nil || w.Browser == nil || w.Submissions == nil {
		t.Fatal("wire is missing a component")
	}
}
