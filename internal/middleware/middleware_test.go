package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/ok", func(c fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/bad", func(c fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "nope") })
	app.Get("/boom", func(c fiber.Ctx) error { return errors.New("boom") })
	app.Get("/healthz", func(c fiber.Ctx) error { return c.SendString("ok") })

	for _, path := range []string{"/ok", "/bad", "/boom", "/healthz"} {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
	}

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.EqualValues(t, 400, entries[1].ContextMap()["status"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.EqualValues(t, 500, entries[2].ContextMap()["status"])
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func newPrefsApp(t *testing.T, prefs *Preferences) *fiber.App {
	t.Helper()
	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore()
	app.Use(sessionMiddleware)

	app.Post("/lang/:tag", func(c fiber.Ctx) error {
		prefs.SetLanguage(c, c.Params("tag"))
		return c.SendString(prefs.Language(c))
	})
	app.Get("/lang", func(c fiber.Ctx) error {
		return c.SendString(prefs.Resolve(c, c.Query("lang")))
	})
	app.Post("/record/:text", func(c fiber.Ctx) error {
		prefs.Record(c, "excuse", c.Params("text"), "fallback")
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/history", func(c fiber.Ctx) error {
		return c.JSON(prefs.History(c))
	})
	app.Delete("/history", func(c fiber.Ctx) error {
		prefs.ClearHistory(c)
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, target string, cookies []*http.Cookie) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestPreferencesLanguage(t *testing.T) {
	app := newPrefsApp(t, NewPreferences(10))

	_, body := send(t, app, http.MethodGet, "/lang", nil)
	assert.Equal(t, "tr", body)

	resp, body := send(t, app, http.MethodPost, "/lang/en", nil)
	assert.Equal(t, "en", body)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	_, body = send(t, app, http.MethodGet, "/lang", cookies)
	assert.Equal(t, "en", body)

	// A supported request tag wins over the session; an unknown one does not.
	_, body = send(t, app, http.MethodGet, "/lang?lang=tr", cookies)
	assert.Equal(t, "tr", body)
	_, body = send(t, app, http.MethodGet, "/lang?lang=fr", cookies)
	assert.Equal(t, "en", body)
}

func TestPreferencesHistory(t *testing.T) {
	prefs := NewPreferences(2)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	prefs.now = func() time.Time { return fixed }
	app := newPrefsApp(t, prefs)

	resp, _ := send(t, app, http.MethodPost, "/lang/tr", nil)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	for _, text := range []string{"a", "b", "c"} {
		send(t, app, http.MethodPost, "/record/"+text, cookies)
	}

	_, body := send(t, app, http.MethodGet, "/history", cookies)
	assert.JSONEq(t, `[
		{"feature":"excuse","text":"c","source":"fallback","at":"2026-01-02T03:04:05Z"},
		{"feature":"excuse","text":"b","source":"fallback","at":"2026-01-02T03:04:05Z"}
	]`, body)

	send(t, app, http.MethodDelete, "/history", cookies)
	_, body = send(t, app, http.MethodGet, "/history", cookies)
	assert.Equal(t, "null", body)
}

func TestPreferencesWithoutSession(t *testing.T) {
	prefs := NewPreferences(0)
	assert.Equal(t, 10, prefs.historySize)

	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		prefs.SetLanguage(c, "en")
		prefs.Record(c, "excuse", "text", "gemini")
		assert.Nil(t, prefs.History(c))
		return c.SendString(prefs.Language(c))
	})

	_, body := send(t, app, http.MethodGet, "/", nil)
	assert.Equal(t, "tr", body)
}
