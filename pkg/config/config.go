package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Valores que desactivan el proveedor real y activan el modo de respuestas fijas.
const placeholderAPIKey = "test_api_key"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	LLM    LLMConfig
	Sentry SentryConfig
	Docs   DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LLMConfig configuración del proveedor de modelos de lenguaje.
type LLMConfig struct {
	Provider        string // groq, anthropic
	GroqAPIKey      string
	GroqBaseURL     string
	AnthropicAPIKey string
	AnthropicModel  string
	MaxRetries      int           // reintentos ante respuestas que no cumplen el esquema
	Timeout         time.Duration // 0 = timeout por defecto del SDK
	MarketLocale    string        // etiqueta BCP-47, ej. es-AR
}

// APIKey devuelve la credencial del proveedor seleccionado.
func (c LLMConfig) APIKey() string {
	if c.Provider == "anthropic" {
		return c.AnthropicAPIKey
	}
	return c.GroqAPIKey
}

// Offline indica que no hay credencial válida: las operaciones responden con datos fijos.
func (c LLMConfig) Offline() bool {
	key := strings.TrimSpace(c.APIKey())
	return key == "" || key == placeholderAPIKey
}

// SentryConfig configuración del reporte de errores. DSN vacío = deshabilitado.
type SentryConfig struct {
	DSN         string
	Environment string
}

// DocsConfig configuración de la documentación Swagger.
type DocsConfig struct {
	Enabled  bool
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, GROQ_API_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	env := getString(v, "APP_ENV", "development")

	timeout, err := getDuration(v, "LLM_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      env,
			Name:     getString(v, "APP_NAME", "tote-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		LLM: LLMConfig{
			Provider:        strings.ToLower(getString(v, "LLM_PROVIDER", "groq")),
			GroqAPIKey:      getString(v, "GROQ_API_KEY", ""),
			GroqBaseURL:     getString(v, "GROQ_BASE_URL", "https://api.groq.com/openai/v1/"),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
			MaxRetries:      getInt(v, "LLM_MAX_RETRIES", 1),
			Timeout:         timeout,
			MarketLocale:    getString(v, "MARKET_LOCALE", "es-AR"),
		},
		Sentry: SentryConfig{
			DSN:         getString(v, "SENTRY_DSN", ""),
			Environment: getString(v, "SENTRY_ENVIRONMENT", env),
		},
		Docs: DocsConfig{
			Enabled:  getBool(v, "DOCS_ENABLED", true),
			FilePath: getString(v, "DOCS_FILE_PATH", "./docs/swagger.json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LLM.Provider {
	case "groq", "anthropic":
	default:
		return fmt.Errorf("LLM_PROVIDER inválido: %q (valores: groq, anthropic)", c.LLM.Provider)
	}
	if c.LLM.MaxRetries < 0 {
		return fmt.Errorf("LLM_MAX_RETRIES no puede ser negativo: %d", c.LLM.MaxRetries)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

// getDuration acepta "30s", "2m" o un entero en segundos.
func getDuration(v *viper.Viper, key string, def time.Duration) (time.Duration, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return def, nil
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %w", key, err)
	}
	return d, nil
}
