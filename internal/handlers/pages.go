package handlers

import (
	"github.com/gofiber/fiber/v3"

	"curcunapanel/internal/config"
	"curcunapanel/internal/middleware"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	cfg   *config.Config
	prefs *middleware.Preferences
}

// NewPageHandler creates a new page handler.
func NewPageHandler(cfg *config.Config, prefs *middleware.Preferences) *PageHandler {
	return &PageHandler{cfg: cfg, prefs: prefs}
}

// Index lists the modules in the visitor's language. ?lang= overrides the
// session for this page only.
func (h *PageHandler) Index(c fiber.Ctx) error {
	lang := h.prefs.Resolve(c, c.Query("lang"))

	return c.Render("index", MergeBranding(fiber.Map{
		"Title":             h.cfg.SiteTitle,
		"Language":          lang,
		"Modules":           Modules(lang),
		"GenerationEnabled": h.cfg.GenerationEnabled(),
		"WeatherEnabled":    h.cfg.WeatherEnabled(),
		"History":           h.prefs.History(c),
	}, h.cfg))
}
