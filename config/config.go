// ABOUTME: This file implements configuration management with environment variable support
// ABOUTME: Provides validation and defaults for every tunable in the pipeline
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	HTTP     HTTPConfig     `json:"http"`
	Scraper  ScraperConfig  `json:"scraper"`
	Cache    CacheConfig    `json:"cache"`
	Batch    BatchConfig    `json:"batch"`
	Analyzer AnalyzerConfig `json:"analyzer"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
}

// HTTPConfig controls the fallback HTML fetch path.
type HTTPConfig struct {
	Timeout        time.Duration `json:"timeout" env:"HTTP_TIMEOUT" default:"10s"`
	UserAgent      string        `json:"user_agent" env:"HTTP_USER_AGENT"`
	MaxIdleConns   int           `json:"max_idle_conns" env:"HTTP_MAX_IDLE_CONNS" default:"10"`
	MaxBodyBytes   int64         `json:"max_body_bytes" env:"HTTP_MAX_BODY_BYTES" default:"10485760"` // 10MB
	RespectRobots  bool          `json:"respect_robots" env:"FETCH_RESPECT_ROBOTS" default:"false"`
	DomainInterval time.Duration `json:"domain_interval" env:"FETCH_DOMAIN_INTERVAL" default:"0s"`
}

// ScraperConfig controls the primary external extraction worker.
type ScraperConfig struct {
	Enabled bool          `json:"enabled" env:"SCRAPER_ENABLED" default:"true"`
	Command string        `json:"command" env:"SCRAPER_COMMAND" default:"python3"`
	Args    []string      `json:"args" env:"SCRAPER_ARGS" default:"scraper_worker.py"`
	Timeout time.Duration `json:"timeout" env:"SCRAPER_TIMEOUT" default:"15s"`
}

type CacheConfig struct {
	Backend  string        `json:"backend" env:"CACHE_BACKEND" default:"file"`
	Dir      string        `json:"dir" env:"CACHE_DIR" default:"./cache"`
	TTL      time.Duration `json:"ttl" env:"CACHE_TTL" default:"24h"`
	RedisURL string        `json:"redis_url" env:"CACHE_REDIS_URL" default:"redis://localhost:6379"`
}

type BatchConfig struct {
	MaxURLs     int `json:"max_urls" env:"BATCH_MAX_URLS" default:"10"`
	Concurrency int `json:"concurrency" env:"BATCH_CONCURRENCY" default:"5"`
}

type AnalyzerConfig struct {
	LexiconPath string `json:"lexicon_path" env:"ANALYZER_LEXICON_PATH" default:""`
}

// DefaultUserAgent mimics a desktop browser; many news sites reject
// obvious bot agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func loadFromEnv(config *Config) error {
	var err error

	// Server config
	if config.Server.Port, err = intFromEnv("SERVER_PORT", 9300); err != nil {
		return err
	}
	if config.Server.ShutdownTimeout, err = durationFromEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second); err != nil {
		return err
	}
	if config.Server.ReadTimeout, err = durationFromEnv("SERVER_READ_TIMEOUT", 10*time.Second); err != nil {
		return err
	}
	if config.Server.WriteTimeout, err = durationFromEnv("SERVER_WRITE_TIMEOUT", 60*time.Second); err != nil {
		return err
	}

	// HTTP config (fallback fetch)
	if config.HTTP.Timeout, err = durationFromEnv("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return err
	}
	config.HTTP.UserAgent = stringFromEnv("HTTP_USER_AGENT", DefaultUserAgent)
	if config.HTTP.MaxIdleConns, err = intFromEnv("HTTP_MAX_IDLE_CONNS", 10); err != nil {
		return err
	}
	if config.HTTP.MaxBodyBytes, err = int64FromEnv("HTTP_MAX_BODY_BYTES", 10*1024*1024); err != nil {
		return err
	}
	if config.HTTP.RespectRobots, err = boolFromEnv("FETCH_RESPECT_ROBOTS", false); err != nil {
		return err
	}
	if config.HTTP.DomainInterval, err = durationFromEnv("FETCH_DOMAIN_INTERVAL", 0); err != nil {
		return err
	}

	// Scraper config (primary extraction worker)
	if config.Scraper.Enabled, err = boolFromEnv("SCRAPER_ENABLED", true); err != nil {
		return err
	}
	config.Scraper.Command = stringFromEnv("SCRAPER_COMMAND", "python3")
	if args := os.Getenv("SCRAPER_ARGS"); args != "" {
		config.Scraper.Args = strings.Split(args, ",")
		for i, arg := range config.Scraper.Args {
			config.Scraper.Args[i] = strings.TrimSpace(arg)
		}
	} else {
		config.Scraper.Args = []string{"scraper_worker.py"}
	}
	if config.Scraper.Timeout, err = durationFromEnv("SCRAPER_TIMEOUT", 15*time.Second); err != nil {
		return err
	}

	// Cache config
	config.Cache.Backend = stringFromEnv("CACHE_BACKEND", "file")
	config.Cache.Dir = stringFromEnv("CACHE_DIR", "./cache")
	if config.Cache.TTL, err = durationFromEnv("CACHE_TTL", 24*time.Hour); err != nil {
		return err
	}
	config.Cache.RedisURL = stringFromEnv("CACHE_REDIS_URL", "redis://localhost:6379")

	// Batch config
	if config.Batch.MaxURLs, err = intFromEnv("BATCH_MAX_URLS", 10); err != nil {
		return err
	}
	if config.Batch.Concurrency, err = intFromEnv("BATCH_CONCURRENCY", 5); err != nil {
		return err
	}

	// Analyzer config
	config.Analyzer.LexiconPath = stringFromEnv("ANALYZER_LEXICON_PATH", "")

	return nil
}

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.HTTP.Timeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive: %v", config.HTTP.Timeout)
	}

	if config.HTTP.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive: %d", config.HTTP.MaxBodyBytes)
	}

	if config.Scraper.Timeout <= 0 {
		return fmt.Errorf("scraper timeout must be positive: %v", config.Scraper.Timeout)
	}

	if config.Scraper.Enabled && config.Scraper.Command == "" {
		return fmt.Errorf("scraper command cannot be empty when scraper is enabled")
	}

	switch config.Cache.Backend {
	case "file", "redis", "memory":
	default:
		return fmt.Errorf("unknown cache backend: %s", config.Cache.Backend)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive: %v", config.Cache.TTL)
	}

	if config.Cache.Backend == "file" && config.Cache.Dir == "" {
		return fmt.Errorf("cache dir cannot be empty for the file backend")
	}

	if config.Cache.Backend == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("redis URL cannot be empty for the redis backend")
	}

	if config.Batch.MaxURLs <= 0 {
		return fmt.Errorf("batch max URLs must be positive: %d", config.Batch.MaxURLs)
	}

	if config.Batch.Concurrency <= 0 {
		return fmt.Errorf("batch concurrency must be positive: %d", config.Batch.Concurrency)
	}

	if config.Batch.Concurrency > config.Batch.MaxURLs {
		config.Batch.Concurrency = config.Batch.MaxURLs
	}

	return nil
}

func stringFromEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}
	return parsed, nil
}

func int64FromEnv(key string, fallback int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}
	return parsed, nil
}

func boolFromEnv(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %s", key, value)
	}
	return parsed, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}
	return parsed, nil
}
