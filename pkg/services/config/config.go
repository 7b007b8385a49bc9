package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	defaultModel   = "mistralai/mixtral-8x7b-instruct"
	defaultHost    = "0.0.0.0"
	defaultPort    = 8000
	defaultTimeout = 60
	defaultRetries = 2
)

// Config holds everything the web service needs at startup. All values come
// from the environment (optionally seeded from a .env file by the caller).
// An empty OpenRouter key is not an error: the service falls back to the
// built-in demo analyst.
type Config struct {
	Provider         string  `mapstructure:"llm_provider" validate:"oneof=openrouter gemini"`
	OpenRouterAPIKey string  `mapstructure:"openrouter_api_key"`
	OpenRouterModel  string  `mapstructure:"openrouter_model" validate:"required"`
	GeminiAPIKey     string  `mapstructure:"gemini_api_key"`
	GeminiModel      string  `mapstructure:"gemini_model"`
	ServerHost       string  `mapstructure:"server_host" validate:"required"`
	ServerPort       int     `mapstructure:"server_port" validate:"gte=1,lte=65535"`
	LLMTimeoutSecs   int     `mapstructure:"llm_timeout_seconds" validate:"gte=1,lte=600"`
	LLMMaxRetries    int     `mapstructure:"llm_max_retries" validate:"gte=0,lte=10"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("llm_provider", "openrouter")
	v.SetDefault("openrouter_api_key", "")
	v.SetDefault("openrouter_model", defaultModel)
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model", "gemini-2.0-flash")
	v.SetDefault("server_host", defaultHost)
	v.SetDefault("server_port", defaultPort)
	v.SetDefault("llm_timeout_seconds", defaultTimeout)
	v.SetDefault("llm_max_retries", defaultRetries)

	for _, key := range []string{
		"llm_provider",
		"openrouter_api_key",
		"openrouter_model",
		"gemini_api_key",
		"gemini_model",
		"server_host",
		"server_port",
		"llm_timeout_seconds",
		"llm_max_retries",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env var %q: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerHost, strconv.Itoa(c.ServerPort))
}

func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSecs) * time.Second
}

// DemoMode reports whether the service should answer from the built-in
// analyst instead of calling a provider. Placeholder keys left over from
// .env templates count as unset.
func (c *Config) DemoMode() bool {
	switch c.Provider {
	case "gemini":
		return c.GeminiAPIKey == "" || c.GeminiAPIKey == "your_key_here"
	default:
		return c.OpenRouterAPIKey == "" || c.OpenRouterAPIKey == "your_key_here"
	}
}
