package api

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"curcunapanel/internal/metrics"
	"curcunapanel/internal/middleware"
	"curcunapanel/internal/weather"
)

// WeatherHandler serves city weather lookups.
type WeatherHandler struct {
	weather *weather.Service
	prefs   *middleware.Preferences
	log     *zap.Logger
}

// NewWeatherHandler creates a new weather handler.
func NewWeatherHandler(svc *weather.Service, prefs *middleware.Preferences, log *zap.Logger) *WeatherHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WeatherHandler{weather: svc, prefs: prefs, log: log}
}

// Lookup returns the current weather for ?city=, in ?lang= or the
// session language.
func (h *WeatherHandler) Lookup(c fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		return jsonError(c, fiber.StatusBadRequest, "City parameter is required")
	}
	lang := h.prefs.Resolve(c, c.Query("lang"))

	data, src, err := h.weather.Lookup(c.Context(), city, lang)
	if err != nil {
		metrics.ObserveWeatherLookup("error")
		h.log.Warn("weather lookup failed", zap.String("city", city), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "Failed to fetch weather data")
	}
	metrics.ObserveWeatherLookup(string(src))
	return c.JSON(data)
}
