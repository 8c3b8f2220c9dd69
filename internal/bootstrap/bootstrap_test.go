package bootstrap

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tote-api/pkg/config"
	"github.com/jhoicas/tote-api/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Name: "tote-api"},
		LLM: config.LLMConfig{Provider: "groq", GroqAPIKey: "test_api_key", MarketLocale: "es-AR"},
	}
}

func TestNew_ModoOfflineRespondeConDatosFijos(t *testing.T) {
	a, err := New(testConfig(), logger.Nop())
	require.NoError(t, err)
	assert.False(t, a.Reporter.Enabled())

	req := httptest.NewRequest(http.MethodPost, "/categorize-products",
		strings.NewReader(`{"categorized_products": {}, "uncategorized_products": ["pan"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.Fiber.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Panaderia")
}

func TestNew_LocaleInvalido(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.MarketLocale = "@@"
	_, err := New(cfg, logger.Nop())
	assert.Error(t, err)
}
