package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"curcunapanel/internal/generation"
	"curcunapanel/internal/middleware"
	"curcunapanel/internal/models"
	"curcunapanel/internal/prompts"
)

const invalidRequest = "Invalid request"

// GenerationHandler serves the generative features.
type GenerationHandler struct {
	gen   *generation.Service
	prefs *middleware.Preferences
}

// NewGenerationHandler creates a new generation handler.
func NewGenerationHandler(gen *generation.Service, prefs *middleware.Preferences) *GenerationHandler {
	return &GenerationHandler{gen: gen, prefs: prefs}
}

// Excuse generates an obviously fake excuse. Never fails: an unreadable
// body or a failed call is answered from the excuse catalog.
func (h *GenerationHandler) Excuse(c fiber.Ctx) error {
	var body models.TopicRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		res := h.gen.Fallback(generation.Excuse, h.prefs.Language(c), err)
		return c.JSON(models.ExcuseResponse{Excuse: res.Text, Source: res.Origin.Source()})
	}

	res := h.run(c, generation.Excuse, body.Topic, body.Language)
	return c.JSON(models.ExcuseResponse{Excuse: res.Text, Source: res.Origin.Source()})
}

// Fortune generates a one-sentence mystical fortune. Never fails.
func (h *GenerationHandler) Fortune(c fiber.Ctx) error {
	var body models.TopicRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		res := h.gen.Fallback(generation.Fortune, h.prefs.Language(c), err)
		return c.JSON(models.FortuneResponse{Fortune: res.Text, Source: res.Origin.Source()})
	}

	res := h.run(c, generation.Fortune, body.Topic, body.Language)
	return c.JSON(models.FortuneResponse{Fortune: res.Text, Source: res.Origin.Source()})
}

// Tweet generates a tweet about a required topic.
func (h *GenerationHandler) Tweet(c fiber.Ctx) error {
	var body models.TopicRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonStatus(c, fiber.StatusBadRequest, models.TweetResponse{Error: models.StringPtr(invalidRequest)})
	}

	res, err := h.generate(c, generation.Tweet, body.Topic, body.Language)
	if err != nil {
		return jsonStatus(c, fiber.StatusBadRequest, models.TweetResponse{Error: models.StringPtr(err.Error())})
	}
	if res.Origin != generation.OriginExternal {
		msg := generation.Tweet.Message(res.Err)
		return jsonStatus(c, failureStatus(res), models.TweetResponse{Error: &msg})
	}
	return c.JSON(models.TweetResponse{Tweet: &res.Text})
}

// Liar answers a required question with a lie.
func (h *GenerationHandler) Liar(c fiber.Ctx) error {
	var body models.MessageRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonStatus(c, fiber.StatusBadRequest, models.LiarResponse{Error: models.StringPtr(invalidRequest)})
	}

	res, err := h.generate(c, generation.Liar, body.Message, body.Language)
	if err != nil {
		return jsonStatus(c, fiber.StatusBadRequest, models.LiarResponse{Error: models.StringPtr(err.Error())})
	}
	if res.Origin != generation.OriginExternal {
		msg := generation.Liar.Message(res.Err)
		return jsonStatus(c, failureStatus(res), models.LiarResponse{Error: &msg})
	}
	return c.JSON(models.LiarResponse{Response: &res.Text})
}

// FreeForm forwards a raw prompt and exposes the provider's errors as is.
func (h *GenerationHandler) FreeForm(c fiber.Ctx) error {
	var body models.PromptRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonStatus(c, fiber.StatusBadRequest, models.FreeFormResponse{
			Error:  models.StringPtr(invalidRequest),
			Source: generation.OriginError.Source(),
		})
	}

	res, err := h.generate(c, generation.FreeForm, body.Prompt, "")
	if err != nil {
		return jsonStatus(c, fiber.StatusBadRequest, models.FreeFormResponse{
			Error:  models.StringPtr(err.Error()),
			Source: generation.OriginError.Source(),
		})
	}
	if res.Origin != generation.OriginExternal {
		msg := generation.FreeForm.Message(res.Err)
		return jsonStatus(c, failureStatus(res), models.FreeFormResponse{
			Error:  &msg,
			Source: generation.OriginError.Source(),
			Status: generation.StatusCode(res.Err),
		})
	}
	return c.JSON(models.FreeFormResponse{Response: &res.Text, Source: res.Origin.Source()})
}

// WeatherComment comments on the weather according to the visitor's mood.
// Any failure answers {comment: null, source: "fallback"}; the page then
// uses its own static lines.
func (h *GenerationHandler) WeatherComment(c fiber.Ctx) error {
	fallback := models.WeatherCommentResponse{Source: generation.OriginFallback.Source()}

	var body models.WeatherCommentRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil || !body.WeatherData.Valid() {
		return c.JSON(fallback)
	}

	lang := h.prefs.Resolve(c, body.Language)
	w := body.WeatherData
	prompt := prompts.WeatherComment(lang, w.Name, w.Main.Temp, w.Condition(), w.Wind.Speed, body.Mood)

	res, err := h.gen.Generate(c.Context(), generation.WeatherComment, generation.Request{Language: lang, Prompt: prompt})
	if err != nil || res.Origin != generation.OriginExternal {
		return c.JSON(fallback)
	}
	h.prefs.Record(c, generation.WeatherComment.Name, res.Text, res.Origin.Source())
	return c.JSON(models.WeatherCommentResponse{Comment: &res.Text, Source: res.Origin.Source()})
}

// run generates for a feature without required input.
func (h *GenerationHandler) run(c fiber.Ctx, f generation.Feature, subject, lang string) generation.Result {
	res, err := h.generate(c, f, subject, lang)
	if err != nil {
		return generation.Result{Origin: generation.OriginError, Err: err}
	}
	return res
}

func (h *GenerationHandler) generate(c fiber.Ctx, f generation.Feature, subject, lang string) (generation.Result, error) {
	req := generation.Request{Subject: subject, Language: h.prefs.Resolve(c, lang)}
	res, err := h.gen.Generate(c.Context(), f, req)
	if err != nil {
		return res, err
	}
	h.prefs.Record(c, f.Name, res.Text, res.Origin.Source())
	return res, nil
}

// failureStatus is 500 when no provider is configured and 200 otherwise:
// upstream failures are reported in the body, not the status line.
func failureStatus(res generation.Result) int {
	if errors.Is(res.Err, generation.ErrNotConfigured) {
		return fiber.StatusInternalServerError
	}
	return fiber.StatusOK
}
