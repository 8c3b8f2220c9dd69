package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "tote-api", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "groq", cfg.LLM.Provider)
	assert.Equal(t, "https://api.groq.com/openai/v1/", cfg.LLM.GroqBaseURL)
	assert.Equal(t, 1, cfg.LLM.MaxRetries)
	assert.Equal(t, time.Duration(0), cfg.LLM.Timeout)
	assert.Equal(t, "es-AR", cfg.LLM.MarketLocale)
	assert.Equal(t, "development", cfg.Sentry.Environment)
	assert.True(t, cfg.Docs.Enabled)
	assert.True(t, cfg.LLM.Offline(), "sin GROQ_API_KEY se usa el modo de respuestas fijas")
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	v.Set("HTTP_PORT", "9090")
	v.Set("GROQ_API_KEY", "gsk_real")
	v.Set("LLM_MAX_RETRIES", "3")
	v.Set("LLM_TIMEOUT", "45s")
	v.Set("DOCS_ENABLED", "false")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3, cfg.LLM.MaxRetries)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "production", cfg.Sentry.Environment)
	assert.False(t, cfg.Docs.Enabled)
	assert.False(t, cfg.LLM.Offline())
}

func TestFromViper_TimeoutEnSegundos(t *testing.T) {
	v := viper.New()
	v.Set("LLM_TIMEOUT", "20")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, cfg.LLM.Timeout)
}

func TestFromViper_Invalidos(t *testing.T) {
	cases := map[string]map[string]string{
		"proveedor desconocido": {"LLM_PROVIDER": "ollama"},
		"reintentos negativos":  {"LLM_MAX_RETRIES": "-1"},
		"timeout malformado":    {"LLM_TIMEOUT": "un rato"},
		"puerto fuera de rango": {"HTTP_PORT": "70000"},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			v := viper.New()
			for k, val := range values {
				v.Set(k, val)
			}
			_, err := fromViper(v)
			assert.Error(t, err)
		})
	}
}

func TestLLMConfig_Offline(t *testing.T) {
	assert.True(t, LLMConfig{Provider: "groq", GroqAPIKey: "test_api_key"}.Offline(),
		"la clave de marcador de posición no habilita el proveedor")
	assert.True(t, LLMConfig{Provider: "groq", GroqAPIKey: "   "}.Offline())
	assert.False(t, LLMConfig{Provider: "groq", GroqAPIKey: "gsk_123"}.Offline())

	anth := LLMConfig{Provider: "anthropic", GroqAPIKey: "gsk_123"}
	assert.True(t, anth.Offline(), "con anthropic se evalúa ANTHROPIC_API_KEY")
	anth.AnthropicAPIKey = "sk-ant"
	assert.False(t, anth.Offline())
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_NAME", "tote-test")
	t.Setenv("LLM_PROVIDER", "Anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tote-test", cfg.App.Name)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-ant-test", cfg.LLM.APIKey())
}
