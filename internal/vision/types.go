package vision

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultGeminiModel   = "gemini-2.5-pro"
	DefaultOpenRouterURL = "https://openrouter.ai/api/v1/chat/completions"
	DefaultTimeout       = 60 * time.Second
)

var ErrMissingCredential = errors.New("missing caption backend credential")

type BackendKind string

const (
	BackendGemini     BackendKind = "gemini"
	BackendOpenRouter BackendKind = "openrouter"
)

// Backend turns a prompt and a JPEG image into a caption.
type Backend interface {
	Kind() BackendKind
	Generate(ctx context.Context, prompt string, image []byte) (string, error)
}

// Config selects the caption backend. A non-empty OpenRouterModel picks
// OpenRouter, otherwise Gemini is used.
type Config struct {
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	OpenRouterAPIKey string
	OpenRouterModel  string
	OpenRouterURL    string

	Timeout time.Duration
}

func (c Config) Kind() BackendKind {
	if c.OpenRouterModel != "" {
		return BackendOpenRouter
	}
	return BackendGemini
}

type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("caption backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("caption backend returned status %d: %s", e.StatusCode, e.Body)
}
