package llm

import (
	"context"
	"fmt"

	"github.com/anirudh/studyloop/internal/store"
)

// NewProvider builds the configured Provider wrapped with retry and
// event-logging middleware (caller → retry → logging → base).
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		oc := cfg.OpenAI
		if oc.BaseURL == "" {
			oc.BaseURL = openRouterBaseURL
		}
		base, err = NewOpenAIProvider(oc)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, eventRepo), cfg.Retry), nil
}

// NewProviderFromEnv resolves configuration from STUDYLOOP_* variables,
// falling back to probing the standard vendor key variables, and builds
// the provider. Fails when no usable key is found either way.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
