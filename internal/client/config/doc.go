// Package config loads runtime configuration for the admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. A .yaml/.yml file is
//     decoded as YAML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string            base URL of the recipe site
//	-u string            username to log in with
//	-l string            log level
//	-log-backend string  slog or zap
//	-log-format string   text or json
//	-m string            metrics listen address, empty to disable
//	-tz string           timezone for displayed dates
//	-t duration          per-request timeout, 0 for none
//	-o string            view output format, text or html
//
// # File schema
//
// Durations accept either strings like "5s" or integer nanoseconds:
//
//	base_url: http://localhost:8080
//	username: admin
//	log_level: debug
//	log_backend: zap
//	request_timeout: 5s
//	output_format: text
//
// Environment variables are not read.
package config
