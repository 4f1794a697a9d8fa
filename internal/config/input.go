package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // zone names resolve without a system zoneinfo

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/output"
	"gopkg.in/yaml.v3"
)

const (
	// MinConcurrency and MaxConcurrency bound the range worker limit.
	MinConcurrency = 1
	MaxConcurrency = 64
)

// ErrInvalidConfiguration wraps every validation failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// instantLayouts are tried in order after RFC 3339.
var instantLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ConfigLoader handles loading and validation of CLI configuration files
type ConfigLoader struct{}

// NewConfigLoader creates a new configuration loader
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// LoadFromFile reads a YAML file over the defaults and validates the result.
// Unknown keys are rejected.
func (cl *ConfigLoader) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := domain.DefaultConfiguration()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cl.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (cl *ConfigLoader) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("%w: no configuration", ErrInvalidConfiguration)
	}
	if _, err := cl.Location(config); err != nil {
		return err
	}
	if output.GetFormatterByName(config.Format) == nil {
		return fmt.Errorf("%w: format %q is not one of %s", ErrInvalidConfiguration, config.Format,
			strings.Join(output.AvailableFormatterNames(), ", "))
	}
	if config.Concurrency < MinConcurrency || config.Concurrency > MaxConcurrency {
		return fmt.Errorf("%w: concurrency must be between %d and %d, got %d", ErrInvalidConfiguration,
			MinConcurrency, MaxConcurrency, config.Concurrency)
	}
	if _, err := cl.TimeFrame(config); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured IANA zone; empty means UTC.
func (cl *ConfigLoader) Location(config *domain.Configuration) (*time.Location, error) {
	loc, err := time.LoadLocation(config.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: location %q: %v", ErrInvalidConfiguration, config.Location, err)
	}
	return loc, nil
}

// TimeFrame resolves the configured Qi Men frame; empty means the hour frame.
func (cl *ConfigLoader) TimeFrame(config *domain.Configuration) (domain.TimeFrame, error) {
	frame, err := domain.ParseTimeFrame(config.TimeFrame)
	if err != nil {
		return domain.HourFrame, fmt.Errorf("%w: time frame: %v", ErrInvalidConfiguration, err)
	}
	return frame, nil
}

// CreateExampleConfiguration returns a fully populated configuration suitable
// for writing out as a starting point.
func (cl *ConfigLoader) CreateExampleConfiguration() *domain.Configuration {
	config := domain.DefaultConfiguration()
	config.TimeFrame = domain.HourFrame.English()
	return &config
}

// ParseInstant reads RFC 3339, or a local date-time in loc when no offset is given.
func ParseInstant(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a time; use RFC 3339 or 2006-01-02T15:04", s)
}
