package config

import (
	"fmt"
	"time"

	"github.com/muurk/paddyterm/internal/catalog"
	"github.com/muurk/paddyterm/internal/content"
)

// Source modes
const (
	ModeFixtures = "fixtures"
	ModeStrands  = "strands"
)

// Config represents the entire user configuration file.
type Config struct {
	Version int           `yaml:"version"`
	Source  *SourceConfig `yaml:"source"`
	UI      *UIConfig     `yaml:"ui"`
	Log     *LogConfig    `yaml:"log"`
}

// SourceConfig selects where page layouts come from.
type SourceConfig struct {
	Mode           string         `yaml:"mode"`                      // fixtures or strands
	BaseURL        string         `yaml:"base_url,omitempty"`        // strands API base URL
	TimeoutSeconds int            `yaml:"timeout_seconds,omitempty"` // HTTP request timeout
	Strands        *StrandsConfig `yaml:"strands,omitempty"`         // Query parameters
}

// StrandsConfig holds the query parameters sent to the strands API. Empty
// fields keep their defaults.
type StrandsConfig struct {
	AppKey       string `yaml:"app_key,omitempty"`
	BetexRegion  string `yaml:"betex_region,omitempty"`
	Jurisdiction string `yaml:"jurisdiction,omitempty"`
	Currency     string `yaml:"currency,omitempty"`
	Locale       string `yaml:"locale,omitempty"`
	Language     string `yaml:"language,omitempty"`
	Region       string `yaml:"region,omitempty"`
	Timezone     string `yaml:"timezone,omitempty"`
}

// UIConfig holds browser preferences.
type UIConfig struct {
	StartPage string `yaml:"start_page"` // Page identifier loaded at startup
}

// LogConfig configures the log file. Logging is off when Level is empty.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Source: &SourceConfig{
			Mode:           ModeFixtures,
			BaseURL:        content.DefaultStrandsURL,
			TimeoutSeconds: int(content.DefaultTimeout / time.Second),
		},
		UI:  &UIConfig{StartPage: catalog.HomePageID},
		Log: &LogConfig{},
	}
}

// fillDefaults replaces missing sections with their defaults.
func (c *Config) fillDefaults() {
	d := NewConfig()
	if c.Source == nil {
		c.Source = d.Source
	}
	if c.Source.Mode == "" {
		c.Source.Mode = d.Source.Mode
	}
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = d.Source.BaseURL
	}
	if c.Source.TimeoutSeconds == 0 {
		c.Source.TimeoutSeconds = d.Source.TimeoutSeconds
	}
	if c.UI == nil {
		c.UI = d.UI
	}
	if c.UI.StartPage == "" {
		c.UI.StartPage = d.UI.StartPage
	}
	if c.Log == nil {
		c.Log = d.Log
	}
}

// Validate checks values that would otherwise fail later.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", c.Version)
	}
	switch c.Source.Mode {
	case ModeFixtures, ModeStrands:
	default:
		return fmt.Errorf("invalid source mode %q (expected %s or %s)", c.Source.Mode, ModeFixtures, ModeStrands)
	}
	if c.Source.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid source timeout: %d seconds", c.Source.TimeoutSeconds)
	}
	return nil
}

// Timeout returns the HTTP request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Source.TimeoutSeconds) * time.Second
}

// StrandsOptions returns the query parameters with configured values
// applied over the defaults.
func (c *Config) StrandsOptions() content.StrandsOptions {
	opts := content.DefaultStrandsOptions()
	s := c.Source.Strands
	if s == nil {
		return opts
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&opts.AppKey, s.AppKey)
	set(&opts.BetexRegion, s.BetexRegion)
	set(&opts.Jurisdiction, s.Jurisdiction)
	set(&opts.Currency, s.Currency)
	set(&opts.Locale, s.Locale)
	set(&opts.Language, s.Language)
	set(&opts.Region, s.Region)
	set(&opts.Timezone, s.Timezone)
	return opts
}
