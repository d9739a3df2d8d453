package llm

import (
	"fmt"
	"os"
	"time"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// Config holds provider selection and per-vendor settings.
type Config struct {
	// Provider selects the backend: "anthropic", "openai", "gemini",
	// "openrouter", or "mock". OpenRouter rides the OpenAI-compatible
	// client with a different base URL.
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single generation call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint for OpenRouter or other
	// OpenAI-compatible services.
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig controls backoff on transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the defaults used when env vars are unset.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from STUDYLOOP_* environment variables,
// falling back to defaults for anything unset.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("STUDYLOOP_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("STUDYLOOP_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("STUDYLOOP_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("STUDYLOOP_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("STUDYLOOP_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("STUDYLOOP_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("STUDYLOOP_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("STUDYLOOP_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

// DiscoverConfig probes the standard vendor API key env vars in priority
// order (Gemini, OpenAI, Anthropic, OpenRouter) and returns a Config for
// the first key found. Returns false when no key is present.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenAI.APIKey = k
		cfg.OpenAI.Model = "google/gemini-2.0-flash-exp"
		cfg.OpenAI.BaseURL = openRouterBaseURL
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("STUDYLOOP_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai", "openrouter":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("STUDYLOOP_OPENAI_API_KEY is required for the %s provider", c.Provider)
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("STUDYLOOP_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
