package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/recipeadmin/internal/flagx"
)

var knownFlags = []string{"-a", "-u", "-l", "-log-backend", "-log-format", "-m", "-tz", "-t", "-o"}

// parseFlags overlays cfg with command-line flags. Only the flags listed in
// knownFlags are looked at, so -c/-config and foreign flags pass through.
// A malformed value panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the recipe site")
	fs.StringVar(&cfg.Username, "u", cfg.Username, "username to log in with")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogBackend, "log-backend", cfg.LogBackend, "log backend (slog, zap)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json)")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "address to serve client metrics on, empty to disable")
	fs.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "IANA timezone for displayed dates, empty for local")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout, 0 for none")
	fs.StringVar(&cfg.OutputFormat, "o", cfg.OutputFormat, "view output format (text, html)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
