// ABOUTME: This file provides JSON structured logging for the service
// ABOUTME: Standardizes on slog with a level taken from LOG_LEVEL
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config represents logger configuration loaded from the environment.
type Config struct {
	Level       string `env:"LOG_LEVEL" default:"info"`
	ServiceName string `env:"SERVICE_NAME" default:"credibility-checker"`
}

// LoadConfigFromEnv loads logger configuration from environment variables.
func LoadConfigFromEnv() *Config {
	return &Config{
		Level:       getEnvOrDefault("LOG_LEVEL", "info"),
		ServiceName: getEnvOrDefault("SERVICE_NAME", "credibility-checker"),
	}
}

// Init creates the process-wide logger based on configuration.
func Init(config *Config) *slog.Logger {
	return NewWithLevel(os.Stdout, config.ServiceName, config.Level)
}

// NewWithLevel creates a JSON slog.Logger with a specific log level.
func NewWithLevel(output io.Writer, serviceName, level string) *slog.Logger {
	options := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: false,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{Key: "time", Value: a.Value}
			case slog.LevelKey:
				// Lowercase for log-aggregator compatibility
				if lv, ok := a.Value.Any().(slog.Level); ok {
					return slog.String("level", strings.ToLower(lv.String()))
				}
				return a
			case slog.MessageKey:
				return slog.Attr{Key: "msg", Value: a.Value}
			default:
				return a
			}
		},
	}

	handler := slog.NewJSONHandler(output, options)
	return slog.New(handler).With(slog.String("service", serviceName))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
