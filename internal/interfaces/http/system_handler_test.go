package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	llm := &stubLLM{}
	app, _ := buildTestApp(t, llm)

	status, body := doJSON(t, app, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status": "ok"}`, body)
	assert.Zero(t, llm.calls, "health no consulta al proveedor")
}

func TestSentryDebug_PanicSeRecuperaYReporta(t *testing.T) {
	app, reporter := buildTestApp(t, &stubLLM{})

	status, body := doJSON(t, app, http.MethodGet, "/sentry-debug", "")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"detail": "Internal Server Error"}`, body)
	require.Len(t, reporter.panics, 1)
	assert.Contains(t, reporter.panics[0].(error).Error(), "divide by zero")

	// El servidor sigue atendiendo después del panic.
	status, _ = doJSON(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestSentryDebug_QueryNoEvitaElError(t *testing.T) {
	app, reporter := buildTestApp(t, &stubLLM{})

	status, body := doJSON(t, app, http.MethodGet, "/sentry-debug?divisor=1", "")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"detail": "Internal Server Error"}`, body)
	assert.Len(t, reporter.panics, 1)
}

func TestOpenAPI(t *testing.T) {
	app, _ := buildTestApp(t, &stubLLM{})

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/json")

	_, body := doJSON(t, app, http.MethodGet, "/openapi.json", "")
	for _, path := range []string{"/recommendations", "/dishes/ingredients", "/categorize-products", "/health"} {
		assert.Contains(t, body, `"`+path+`"`)
	}
}

func TestRutaInexistente(t *testing.T) {
	app, _ := buildTestApp(t, &stubLLM{})

	status, body := doJSON(t, app, http.MethodGet, "/no-existe", "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"detail": "Not Found"}`, body)
}

func TestMetodoNoPermitido(t *testing.T) {
	llm := &stubLLM{}
	app, _ := buildTestApp(t, llm)

	status, body := doJSON(t, app, http.MethodGet, "/recommendations", "")

	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.JSONEq(t, `{"detail": "Method Not Allowed"}`, body)
	assert.Zero(t, llm.calls)
}

func TestCORS_CualquierOrigen(t *testing.T) {
	app, _ := buildTestApp(t, &stubLLM{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://tote.example.com")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestCORS_Preflight(t *testing.T) {
	app, _ := buildTestApp(t, &stubLLM{})

	req := httptest.NewRequest(http.MethodOptions, "/recommendations", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://tote.example.com")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, http.MethodPost)
	req.Header.Set(fiber.HeaderAccessControlRequestHeaders, "Content-Type")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderAccessControlAllowMethods), http.MethodPost)
}

func TestRequestID_SeGeneraSiNoViene(t *testing.T) {
	app, _ := buildTestApp(t, &stubLLM{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Len(t, resp.Header.Get(fiber.HeaderXRequestID), 36)
}
