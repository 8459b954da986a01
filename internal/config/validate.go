package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if err := c.Languages.validate(); err != nil {
		return fmt.Errorf("languages: %w", err)
	}

	if err := c.Review.validate(); err != nil {
		return fmt.Errorf("review: %w", err)
	}

	if c.Media.Root == "" {
		return fmt.Errorf("media.root is required")
	}

	return nil
}

func (l *LanguagesConfig) validate() error {
	if l.Source == "" {
		return fmt.Errorf("source is required")
	}
	if l.Target == "" {
		return fmt.Errorf("target is required")
	}
	return nil
}

func (r *ReviewConfig) validate() error {
	if r.QueueLimit <= 0 {
		return fmt.Errorf("queue_limit must be > 0 (got %d)", r.QueueLimit)
	}
	if _, err := r.Location(); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	return nil
}

// Location resolves the configured timezone to a *time.Location.
// "Local" maps to the process local zone.
func (r *ReviewConfig) Location() (*time.Location, error) {
	if r.Timezone == "" || r.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid location %q: %w", r.Timezone, err)
	}
	return loc, nil
}
