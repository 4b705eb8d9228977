package handlers

import (
	"github.com/gofiber/fiber/v3"

	"curcunapanel/internal/catalog"
	"curcunapanel/internal/config"
)

// ProbeHandler handles Kubernetes health probe endpoints. Neither probe
// calls the providers.
type ProbeHandler struct {
	cfg     *config.Config
	catalog *catalog.Catalog
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(cfg *config.Config, cat *catalog.Catalog) *ProbeHandler {
	return &ProbeHandler{cfg: cfg, catalog: cat}
}

// Liveness handles the /healthz endpoint. Returns 200 OK if the
// application is running, with the providers that are configured.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "ok",
		"generation": h.cfg.GenerationEnabled(),
		"weather":    h.cfg.WeatherEnabled(),
	})
}

// Readiness handles the /readyz endpoint. The service can serve traffic
// once every fallback catalog the features rely on is loaded.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	for _, f := range []catalog.Feature{catalog.Excuse, catalog.Fortune, catalog.CalculatorComment, catalog.CalculatorApology} {
		if h.catalog == nil || !h.catalog.Has(f) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "fallback catalog incomplete: " + string(f),
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
