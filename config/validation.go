package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration carries everything the server
// needs to start. Sensitive values have no defaults outside development, so
// missing ones are surfaced here rather than as a connection failure later.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.JWTSecret == "" && !isLocal() {
		errors = append(errors, "JWT_SECRET (or the jwt_secret secret) is required")
	}
	if cfg.DBPassword == "" && IsProduction() {
		errors = append(errors, "DB_PASSWORD (or the db_password secret) is required in production")
	}
	if cfg.ServerPort == "" {
		errors = append(errors, "SERVER_PORT must not be empty")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" {
		errors = append(errors, "DB_HOST and DB_PORT must not be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}

func isLocal() bool {
	env := GetEnvironment()
	return env == Development || env == Test
}
