package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENWEATHER_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.ServerAddr)
	assert.Equal(t, "gemini-2.0-flash-lite", cfg.GeminiModel)
	assert.Equal(t, 10, cfg.HistorySize)
	assert.False(t, cfg.GenerationEnabled())
	assert.False(t, cfg.WeatherEnabled())
}

func TestLoadCredentials(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "abc")
	t.Setenv("OPENWEATHER_API_KEY", "def")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.GenerationEnabled())
	assert.True(t, cfg.WeatherEnabled())
}

func TestAllowedOrigins(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{"base url default", Config{BaseURL: "http://localhost:3000"}, []string{"http://localhost:3000"}},
		{"explicit list", Config{BaseURL: "x", CORSOrigins: "https://a.example, https://b.example"}, []string{"https://a.example", "https://b.example"}},
		{"skips empty", Config{CORSOrigins: "https://a.example,,"}, []string{"https://a.example"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.AllowedOrigins())
		})
	}
}

func TestIsDev(t *testing.T) {
	assert.True(t, (&Config{Env: "dev"}).IsDev())
	assert.True(t, (&Config{Env: "development"}).IsDev())
	assert.False(t, (&Config{Env: "production"}).IsDev())
}
