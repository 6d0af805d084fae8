package llm

import (
	"context"
	"fmt"
)

// NewProvider builds a Provider from config and wraps it with the
// standard decorator chain: caller -> retry -> logging -> base.
// recorder may be nil, in which case no request log is kept.
func NewProvider(ctx context.Context, cfg Config, recorder RequestRecorder) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s provider: %w", cfg.Provider, err)
	}

	p := base
	if recorder != nil {
		p = WithLogging(p, cfg.Provider, recorder)
	}
	p = WithRetry(p, cfg.Retry)

	return p, nil
}

// NewProviderFromEnv builds a Provider from environment configuration.
// LEARNCHECK_LLM_PROVIDER takes precedence; otherwise the standard API
// key variables are probed. Returns (nil, nil) when no provider is
// configured, which callers treat as "AI hints disabled".
func NewProviderFromEnv(ctx context.Context, recorder RequestRecorder) (Provider, error) {
	cfg := ConfigFromEnv()

	if cfg.Provider == "" || cfg.Validate() != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, nil
		}
		cfg = discovered
	}

	return NewProvider(ctx, cfg, recorder)
}
