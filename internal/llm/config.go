package llm

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrNoCredentials means no API key was found for any provider. It is not a
// failure: the lesson then runs entirely on the local keyword rules.
var ErrNoCredentials = errors.New("no LLM credentials configured")

// Config holds all provider configuration.
type Config struct {
	// Provider selects the backend: "openai", "anthropic", "gemini",
	// "openrouter" or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single judge call including retries.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string
	Model   string // Default: "claude-haiku"
	BaseURL string // Optional; used by tests.
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-3.5-turbo"
	BaseURL string // Optional, for compatible gateways.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with defaults. Retries are kept short: a
// student is waiting behind a spinner, and the local rule is always there.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-3.5-turbo",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "openai/gpt-4o-mini",
		},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     2 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 20 * time.Second,
	}
}

// ConfigFromEnv builds a Config from DAEPYO_* variables, falling back to
// defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("DAEPYO_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if d := os.Getenv("DAEPYO_LLM_TIMEOUT"); d != "" {
		if v, err := time.ParseDuration(d); err == nil && v > 0 {
			cfg.Timeout = v
		}
	}

	cfg.Anthropic.APIKey = envOr("DAEPYO_ANTHROPIC_API_KEY", cfg.Anthropic.APIKey)
	cfg.Anthropic.Model = envOr("DAEPYO_ANTHROPIC_MODEL", cfg.Anthropic.Model)

	cfg.OpenAI.APIKey = envOr("DAEPYO_OPENAI_API_KEY", cfg.OpenAI.APIKey)
	cfg.OpenAI.Model = envOr("DAEPYO_OPENAI_MODEL", cfg.OpenAI.Model)
	cfg.OpenAI.BaseURL = envOr("DAEPYO_OPENAI_BASE_URL", cfg.OpenAI.BaseURL)

	cfg.Gemini.APIKey = envOr("DAEPYO_GEMINI_API_KEY", cfg.Gemini.APIKey)
	cfg.Gemini.Model = envOr("DAEPYO_GEMINI_MODEL", cfg.Gemini.Model)

	cfg.OpenRouter.APIKey = envOr("DAEPYO_OPENROUTER_API_KEY", cfg.OpenRouter.APIKey)
	cfg.OpenRouter.Model = envOr("DAEPYO_OPENROUTER_MODEL", cfg.OpenRouter.Model)

	return cfg
}

// DiscoverConfig checks the vendors' standard API key variables in priority
// order (OpenAI → Gemini → Anthropic → OpenRouter) and returns a Config for
// the first one found. Returns (Config{}, false) if none is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// ResolveConfig picks the configuration used at startup: an explicit
// DAEPYO_LLM_PROVIDER wins, otherwise the vendor variables are checked.
func ResolveConfig() (Config, error) {
	if os.Getenv("DAEPYO_LLM_PROVIDER") != "" {
		cfg := ConfigFromEnv()
		return cfg, cfg.Validate()
	}
	if cfg, ok := DiscoverConfig(); ok {
		return cfg, nil
	}
	return Config{}, ErrNoCredentials
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("DAEPYO_ANTHROPIC_API_KEY is required for the anthropic provider: %w", ErrNoCredentials)
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("DAEPYO_OPENAI_API_KEY is required for the openai provider: %w", ErrNoCredentials)
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("DAEPYO_GEMINI_API_KEY is required for the gemini provider: %w", ErrNoCredentials)
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("DAEPYO_OPENROUTER_API_KEY is required for the openrouter provider: %w", ErrNoCredentials)
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
