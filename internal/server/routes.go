package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"curcunapanel/internal/catalog"
	"curcunapanel/internal/chaos"
	"curcunapanel/internal/generation"
	"curcunapanel/internal/handlers"
	"curcunapanel/internal/handlers/api"
	"curcunapanel/internal/middleware"
	"curcunapanel/internal/weather"
)

// Deps are the services the routes are served from.
type Deps struct {
	Generation *generation.Service
	Weather    *weather.Service
	Catalog    *catalog.Catalog
	Dice       chaos.Dice
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	prefs := middleware.NewPreferences(s.Cfg.HistorySize)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(s.Cfg, prefs)
	probeHandler := handlers.NewProbeHandler(s.Cfg, deps.Catalog)
	generationHandler := api.NewGenerationHandler(deps.Generation, prefs)
	weatherHandler := api.NewWeatherHandler(deps.Weather, prefs, s.Log)
	chaosHandler := api.NewChaosHandler(deps.Dice, deps.Catalog, prefs, s.Log)
	prefsHandler := api.NewPreferencesHandler(prefs)

	// Operational routes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Frontend routes
	s.App.Get("/", pageHandler.Index)

	// Generation API
	apiGroup := s.App.Group("/api")
	apiGroup.Post("/excuses", generationHandler.Excuse)
	apiGroup.Post("/fortune", generationHandler.Fortune)
	apiGroup.Post("/tweet-generator", generationHandler.Tweet)
	apiGroup.Post("/liar-bot", generationHandler.Liar)
	apiGroup.Post("/gemini-test", generationHandler.FreeForm)
	apiGroup.Post("/weather-comment", generationHandler.WeatherComment)

	// Weather and chaos modules
	apiGroup.Get("/weather", weatherHandler.Lookup)
	apiGroup.Post("/calculator", chaosHandler.Calculator)
	apiGroup.Post("/notepad", chaosHandler.Notepad)

	// Session preferences
	apiGroup.Get("/language", prefsHandler.GetLanguage)
	apiGroup.Put("/language", prefsHandler.SetLanguage)
	apiGroup.Get("/history", prefsHandler.History)
	apiGroup.Delete("/history", prefsHandler.ClearHistory)
}
