package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MetricsBackend != BackendMongo {
		t.Fatalf("expected default backend mongo, got %s", cfg.MetricsBackend)
	}
	if cfg.Timezone != "America/Argentina/Buenos_Aires" {
		t.Fatalf("unexpected default timezone: %s", cfg.Timezone)
	}
	if cfg.Country != "Argentina" {
		t.Fatalf("unexpected default country: %s", cfg.Country)
	}
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("METRICS_BACKEND", "dynamo")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoad_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("METRICS_BACKEND", "postgres")
	t.Setenv("POSTGRES_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing POSTGRES_DSN")
	}
}

func TestFloorInstant(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	floor, err := cfg.FloorInstant(loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2025, 5, 22, 17, 30, 0, 0, loc)
	if !floor.Equal(want) {
		t.Fatalf("expected floor %v, got %v", want, floor)
	}
}

func TestFloorInstant_Invalid(t *testing.T) {
	t.Setenv("METRICS_FLOOR", "2025-05-22")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := cfg.FloorInstant(loc); err == nil {
		t.Fatalf("expected error for date-only floor")
	}
}
