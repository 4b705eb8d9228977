package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"curcunapanel/internal/catalog"
	"curcunapanel/internal/chaos"
	"curcunapanel/internal/metrics"
	"curcunapanel/internal/middleware"
	"curcunapanel/internal/models"
)

// ChaosHandler serves the calculator and notepad mischief.
type ChaosHandler struct {
	dice    chaos.Dice
	catalog *catalog.Catalog
	prefs   *middleware.Preferences
	log     *zap.Logger
}

// NewChaosHandler creates a new chaos handler.
func NewChaosHandler(dice chaos.Dice, cat *catalog.Catalog, prefs *middleware.Preferences, log *zap.Logger) *ChaosHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChaosHandler{dice: dice, catalog: cat, prefs: prefs, log: log}
}

// Calculator computes a op b, occasionally wrong.
func (h *ChaosHandler) Calculator(c fiber.Ctx) error {
	var body models.CalculatorRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, invalidRequest)
	}

	calc, err := chaos.Calculate(h.dice, body.A, body.B, body.Op)
	if errors.Is(err, chaos.ErrUnknownOperator) {
		return jsonError(c, fiber.StatusBadRequest, "Unknown operator")
	}
	if errors.Is(err, chaos.ErrOutOfRange) {
		return jsonError(c, fiber.StatusBadRequest, "Result out of range")
	}
	if err != nil {
		return err
	}

	lang := h.prefs.Resolve(c, body.Language)
	resp := models.CalculatorResponse{
		Result:   calc.Value,
		Glitched: calc.Glitched,
		Comment:  h.pick(catalog.CalculatorComment, lang),
	}
	if calc.Glitched {
		metrics.ObserveGlitch("calculator")
		resp.Apology = h.pick(catalog.CalculatorApology, lang)
	}
	return c.JSON(resp)
}

// Notepad returns the text, possibly sabotaged.
func (h *ChaosHandler) Notepad(c fiber.Ctx) error {
	var body models.NotepadRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, invalidRequest)
	}

	lang := h.prefs.Resolve(c, body.Language)
	text, glitched := chaos.Sabotage(h.dice, body.Text, lang)
	if glitched {
		metrics.ObserveGlitch("notepad")
	}
	return c.JSON(models.NotepadResponse{Text: text, Glitched: glitched})
}

func (h *ChaosHandler) pick(f catalog.Feature, lang string) string {
	text, err := h.catalog.Pick(h.dice, f, lang)
	if err != nil {
		h.log.Error("catalog pick failed", zap.String("feature", string(f)), zap.Error(err))
		return ""
	}
	return text
}
