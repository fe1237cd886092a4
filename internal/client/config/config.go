package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/recipeadmin/internal/logging"
)

// Output formats of rendered views.
const (
	OutputText = "text"
	OutputHTML = "html"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime settings for the admin console.
//
// RequestTimeout of zero means requests are bounded only by the server.
// An empty Timezone means the local zone of the machine.
type Config struct {
	BaseURL        string
	Username       string
	LogLevel       string
	LogBackend     string
	LogFormat      string
	MetricsAddr    string
	Timezone       string
	RequestTimeout time.Duration
	OutputFormat   string
}

// LoadDefaults populates c with defaults suitable for a local backend.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.Username = ""
	c.LogLevel = "info"
	c.LogBackend = logging.BackendSlog
	c.LogFormat = "text"
	c.MetricsAddr = ""
	c.Timezone = ""
	c.RequestTimeout = 0
	c.OutputFormat = OutputText
}

// LoadConfig applies defaults, then the config file (if any), then flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate checks the values a typo would otherwise turn into a confusing
// failure at first use.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidConfig, c.BaseURL)
	}
	switch c.OutputFormat {
	case OutputText, OutputHTML:
	default:
		return fmt.Errorf("%w: output format %q", ErrInvalidConfig, c.OutputFormat)
	}
	switch c.LogBackend {
	case logging.BackendSlog, logging.BackendZap:
	default:
		return fmt.Errorf("%w: log backend %q", ErrInvalidConfig, c.LogBackend)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidConfig)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %w", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}
