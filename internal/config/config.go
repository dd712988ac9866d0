// Package config loads configuration from files, env vars, and flags, and
// validates it.
package config

import (
	"pluralizer"
	"pluralizer/internal/logging"
)

// Config holds the application configuration.
type Config struct {
	Rules   pluralizer.Config `mapstructure:"rules"`
	Logging logging.Config    `mapstructure:"logging"`
}
