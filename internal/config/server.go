package config

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServerConfig holds the process-level settings read once at startup.
type ServerConfig struct {
	Addr        string
	Environment string
	LogLevel    zerolog.Level
}

// Server builds the server configuration from the environment.
func Server() *ServerConfig {
	return &ServerConfig{
		Addr:        GetEnvOrDefault("LISTEN_ADDR", ":8080"),
		Environment: GetEnvOrDefault("APP_ENV", ""),
		LogLevel:    parseLogLevel(GetEnvOrDefault("LOG_LEVEL", "info")),
	}
}

// IsProduction reports whether the process runs in production mode.
// Production disables the interactive playground.
func (c *ServerConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func parseLogLevel(value string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(value))
	if err != nil {
		log.Warn().Str("level", value).Msg("Unknown log level, falling back to info")
		return zerolog.InfoLevel
	}
	return level
}
