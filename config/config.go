// Package config loads converter configuration
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/datetime"
	"github.com/viant/datetime/layout"
	"gopkg.in/yaml.v3"
)

// Config represents converter configuration
type Config struct {
	ZoneConversion bool     `yaml:"zoneConversion"`
	Zone           string   `yaml:"zone,omitempty"`
	Formats        []string `yaml:"formats,omitempty"`
	LogLevel       string   `yaml:"logLevel,omitempty"`
}

// Location returns configured zone, empty zone or 'Local' resolves to time.Local at call time
func (c *Config) Location() (func() *time.Location, error) {
	zone := strings.TrimSpace(c.Zone)
	if zone == "" || strings.EqualFold(zone, "local") {
		return func() *time.Location { return time.Local }, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("invalid zone %q: %w", zone, err)
	}
	return func() *time.Location { return loc }, nil
}

// Specifiers returns configured format specifiers, defaults when none configured
func (c *Config) Specifiers() ([]layout.Specifier, error) {
	if len(c.Formats) == 0 {
		return layout.Defaults(), nil
	}
	return layout.Parse(c.Formats)
}

// Converter creates configured converter
func (c *Config) Converter(logger zerolog.Logger) (*datetime.Converter, error) {
	location, err := c.Location()
	if err != nil {
		return nil, err
	}
	specifiers, err := c.Specifiers()
	if err != nil {
		return nil, err
	}
	return datetime.New(c.ZoneConversion,
		datetime.WithSpecifiers(specifiers...),
		datetime.WithLocation(location),
		datetime.WithLogger(logger),
	), nil
}

// Decode decodes YAML config
func Decode(data []byte) (*Config, error) {
	ret := &Config{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return ret, nil
}

// Load loads YAML config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", path, err)
	}
	return Decode(data)
}
