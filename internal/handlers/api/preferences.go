package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"curcunapanel/internal/middleware"
	"curcunapanel/internal/models"
	"curcunapanel/internal/validation"
)

// PreferencesHandler serves the session language and history.
type PreferencesHandler struct {
	prefs *middleware.Preferences
}

// NewPreferencesHandler creates a new preferences handler.
func NewPreferencesHandler(prefs *middleware.Preferences) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs}
}

// GetLanguage returns the session language.
func (h *PreferencesHandler) GetLanguage(c fiber.Ctx) error {
	return c.JSON(models.LanguageResponse{Language: h.prefs.Language(c)})
}

// SetLanguage stores a supported language in the session.
func (h *PreferencesHandler) SetLanguage(c fiber.Ctx) error {
	var body models.LanguageRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, invalidRequest)
	}
	lang := validation.NormalizeLanguage(body.Language)
	if !validation.IsLanguage(lang) {
		return jsonError(c, fiber.StatusBadRequest, "Unsupported language")
	}

	h.prefs.SetLanguage(c, lang)
	return c.JSON(models.LanguageResponse{Language: lang})
}

// History returns the session's recent results, newest first.
func (h *PreferencesHandler) History(c fiber.Ctx) error {
	entries := h.prefs.History(c)
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return c.JSON(models.HistoryResponse{Entries: entries})
}

// ClearHistory empties the session history.
func (h *PreferencesHandler) ClearHistory(c fiber.Ctx) error {
	h.prefs.ClearHistory(c)
	return c.SendStatus(fiber.StatusNoContent)
}
