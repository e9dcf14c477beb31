package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

type Config struct {
	ServiceEnvironment string `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	ServiceAPIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`

	// MetricsBackend selects the event-store adapter: "mongo" (the
	// collection the bot writes) or "postgres" (a relational mirror).
	MetricsBackend string `envconfig:"METRICS_BACKEND" default:"mongo"`

	MongoURI        string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase   string `envconfig:"MONGO_DATABASE" default:"ListMe-test"`
	MongoCollection string `envconfig:"MONGO_COLLECTION" default:"lists"`

	PostgresDSN string `envconfig:"POSTGRES_DSN"`

	// Display timezone for all calendar-day bucketing.
	Timezone string `envconfig:"METRICS_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	// Historical floor: local instant the first trustworthy data was
	// written; everything at or before its day is clamped to it.
	Floor   string `envconfig:"METRICS_FLOOR" default:"2025-05-22T17:30:00"`
	Country string `envconfig:"METRICS_COUNTRY" default:"Argentina"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.MetricsBackend {
	case BackendMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for the mongo backend")
		}
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown METRICS_BACKEND %q", c.MetricsBackend)
	}
	return nil
}

// Location loads the configured display timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid METRICS_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// FloorInstant parses the historical floor in the display timezone.
func (c *Config) FloorInstant(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02T15:04:05", c.Floor, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid METRICS_FLOOR %q: %w", c.Floor, err)
	}
	return t, nil
}
