package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string `envconfig:"ENV" default:"development"` // "development", "production", etc.

	// Server
	ServerAddr string `envconfig:"SERVER_ADDR" default:":3000"`
	BaseURL    string `envconfig:"BASE_URL" default:"http://localhost:3000"`

	// Text generation. An empty key is a supported mode: every feature
	// answers from its fallback catalog or with a "not configured" error.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash-lite"`

	// Weather lookup. Without a key the lookup serves mock data.
	OpenWeatherAPIKey  string `envconfig:"OPENWEATHER_API_KEY"`
	OpenWeatherBaseURL string `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`

	// Fallback catalog override (YAML). Empty means the embedded catalog.
	CatalogFile string `envconfig:"CATALOG_FILE"`

	// RandomSeed makes fallback picks and cosmetic glitches reproducible.
	// Zero seeds from the clock.
	RandomSeed uint64 `envconfig:"RANDOM_SEED"`

	// Session
	SessionSecret string `envconfig:"SESSION_SECRET" default:"change-me-in-production-min-32-chars"` // Used for signing cookies (min 32 chars)
	RedisURL      string `envconfig:"REDIS_URL"`                                                     // Optional session storage, in-memory when empty
	HistorySize   int    `envconfig:"HISTORY_SIZE" default:"10"`

	// CORS
	CORSOrigins string `envconfig:"CORS_ORIGINS"` // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting for the generation endpoints, per IP per minute.
	RateLimit int `envconfig:"RATE_LIMIT" default:"30"`

	// Site Branding
	SiteTitle   string `envconfig:"SITE_TITLE" default:"CurcunaPanel"`
	SiteTagline string `envconfig:"SITE_TAGLINE" default:"Useless tools, seriously built"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = 10
	}
	return &cfg, nil
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// GenerationEnabled reports whether a text-generation credential is configured.
func (c *Config) GenerationEnabled() bool {
	return strings.TrimSpace(c.GeminiAPIKey) != ""
}

// WeatherEnabled reports whether a weather provider credential is configured.
func (c *Config) WeatherEnabled() bool {
	return strings.TrimSpace(c.OpenWeatherAPIKey) != ""
}

// AllowedOrigins returns the CORS origins, defaulting to BaseURL.
func (c *Config) AllowedOrigins() []string {
	origins := c.BaseURL
	if c.CORSOrigins != "" {
		origins = c.CORSOrigins
	}
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
