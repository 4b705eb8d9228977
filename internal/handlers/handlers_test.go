package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/template/html/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curcunapanel/internal/catalog"
	"curcunapanel/internal/config"
	"curcunapanel/internal/middleware"
	"curcunapanel/views"
)

func testConfig() *config.Config {
	return &config.Config{
		GeminiAPIKey: "key",
		SiteTitle:    "CurcunaPanel",
		SiteTagline:  "Useless tools, seriously built",
	}
}

func request(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestModules(t *testing.T) {
	tr, en := Modules("tr"), Modules("en")
	require.Len(t, en, len(tr))
	assert.Equal(t, en, Modules("de"))
	for i := range tr {
		assert.Equal(t, tr[i].Endpoint, en[i].Endpoint)
		assert.Equal(t, tr[i].Generative, en[i].Generative)
	}
}

func TestMergeBranding(t *testing.T) {
	data := MergeBranding(fiber.Map{"Title": "x"}, testConfig())
	assert.Equal(t, "x", data["Title"])
	assert.Equal(t, "CurcunaPanel", data["SiteTitle"])
	assert.Equal(t, "Useless tools, seriously built", data["SiteTagline"])
}

func TestProbes(t *testing.T) {
	app := fiber.New()
	probe := NewProbeHandler(testConfig(), catalog.Default())
	app.Get("/healthz", probe.Liveness)
	app.Get("/readyz", probe.Readiness)

	resp, body := request(t, app, "/healthz")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","generation":true,"weather":false}`, body)

	resp, body = request(t, app, "/readyz")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestReadinessIncompleteCatalog(t *testing.T) {
	cat, err := catalog.Parse([]byte("features:\n  excuse:\n    en: [\"late\"]\n"))
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/readyz", NewProbeHandler(testConfig(), cat).Readiness)

	resp, body := request(t, app, "/readyz")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, body, "fortune")
}

func TestIndexRendersModules(t *testing.T) {
	app := fiber.New(fiber.Config{
		Views:       html.NewFileSystem(http.FS(views.FS), ".html"),
		ViewsLayout: "layouts/main",
	})
	app.Get("/", NewPageHandler(testConfig(), middleware.NewPreferences(10)).Index)

	resp, body := request(t, app, "/?lang=en")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<html lang="en">`)
	for _, m := range Modules("en") {
		assert.Contains(t, body, m.Title)
	}
	assert.Contains(t, body, "Gemini: on")
	assert.NotContains(t, body, ">fallback<")
}
