package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/recipeadmin/internal/flagx"
	"github.com/dmitrijs2005/recipeadmin/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the config, shared by JSON and YAML.
// Absent keys leave the current value untouched.
type fileConfig struct {
	BaseURL        string          `json:"base_url" yaml:"base_url"`
	Username       string          `json:"username" yaml:"username"`
	LogLevel       string          `json:"log_level" yaml:"log_level"`
	LogBackend     string          `json:"log_backend" yaml:"log_backend"`
	LogFormat      string          `json:"log_format" yaml:"log_format"`
	MetricsAddr    string          `json:"metrics_addr" yaml:"metrics_addr"`
	Timezone       string          `json:"timezone" yaml:"timezone"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	OutputFormat   string          `json:"output_format" yaml:"output_format"`
}

// parseFile overlays cfg with the file named by -c/-config. Files ending in
// .yaml or .yml are YAML, anything else is JSON. Read and decode errors
// panic.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc fileConfig) apply(cfg *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.BaseURL, fc.BaseURL)
	set(&cfg.Username, fc.Username)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.LogBackend, fc.LogBackend)
	set(&cfg.LogFormat, fc.LogFormat)
	set(&cfg.MetricsAddr, fc.MetricsAddr)
	set(&cfg.Timezone, fc.Timezone)
	set(&cfg.OutputFormat, fc.OutputFormat)
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
}
