package vision

import (
	"context"
	"fmt"
)

// NewBackend builds exactly one backend. Credentials are checked before any
// network call is made.
func NewBackend(ctx context.Context, cfg Config) (Backend, error) {
	switch cfg.Kind() {
	case BackendOpenRouter:
		if cfg.OpenRouterAPIKey == "" {
			return nil, fmt.Errorf("openrouter: %w: OPENROUTER_API_KEY", ErrMissingCredential)
		}
		return NewOpenRouterClient(cfg), nil
	default:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("gemini: %w: GEMINI_API_KEY", ErrMissingCredential)
		}
		return NewGeminiClient(ctx, cfg)
	}
}
