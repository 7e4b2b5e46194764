// Package config loads application configuration from environment variables.
// All variables use the COACH_ prefix.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	AI       AIConfig
	OCR      OCRConfig
	Syllabus SyllabusConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
	Host string
}

// DatabaseConfig holds PostgreSQL connection settings. The database is
// optional: when URL is empty the server runs without event logging.
type DatabaseConfig struct {
	URL      string
	MaxConns int
	MinConns int
}

// CacheConfig holds Redis connection settings for the report cache.
type CacheConfig struct {
	URL       string
	ReportTTL time.Duration
}

// AIConfig holds configuration for AI providers.
type AIConfig struct {
	Google GoogleConfig
}

// GoogleConfig holds Google Gemini provider settings.
type GoogleConfig struct {
	APIKey string
	Model  string
}

// OCRConfig holds settings for the OCR sidecar service.
type OCRConfig struct {
	URL string
}

// SyllabusConfig holds settings for exam weightage overlays.
type SyllabusConfig struct {
	OverlayDir string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with COACH_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("COACH_SERVER_PORT", 8080),
			Host: envStr("COACH_SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL:      envStr("COACH_DATABASE_URL", ""),
			MaxConns: envInt("COACH_DATABASE_MAX_CONNS", 10),
			MinConns: envInt("COACH_DATABASE_MIN_CONNS", 2),
		},
		Cache: CacheConfig{
			URL:       envStr("COACH_CACHE_URL", ""),
			ReportTTL: time.Duration(envInt("COACH_CACHE_REPORT_TTL_MINUTES", 60)) * time.Minute,
		},
		AI: AIConfig{
			Google: GoogleConfig{
				APIKey: envStr("COACH_AI_GOOGLE_API_KEY", ""),
				Model:  envStr("COACH_AI_GOOGLE_MODEL", "gemini-2.0-flash"),
			},
		},
		OCR: OCRConfig{
			URL: envStr("COACH_OCR_URL", ""),
		},
		Syllabus: SyllabusConfig{
			OverlayDir: envStr("COACH_SYLLABUS_DIR", ""),
		},
		Log: LogConfig{
			Level:  envStr("COACH_LOG_LEVEL", "info"),
			Format: envStr("COACH_LOG_FORMAT", "json"),
		},
	}

	if cfg.Cache.ReportTTL < 0 {
		return nil, fmt.Errorf("COACH_CACHE_REPORT_TTL_MINUTES must be non-negative")
	}

	return cfg, nil
}

// HasAIProvider returns true if at least one AI provider is configured.
// The analysis pipeline works without one; plan generation and chat
// fall back to static content.
func (c *Config) HasAIProvider() bool {
	return c.AI.Google.APIKey != ""
}

// HasDatabase returns true if a database URL is configured.
func (c *Config) HasDatabase() bool {
	return c.Database.URL != ""
}

// HasCache returns true if a cache URL is configured.
func (c *Config) HasCache() bool {
	return c.Cache.URL != ""
}

// HasOCR returns true if an OCR sidecar is configured.
func (c *Config) HasOCR() bool {
	return c.OCR.URL != ""
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
