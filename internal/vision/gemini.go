package vision

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

// geminiClientConfig leaves the HTTP client to the SDK unless a timeout is
// set explicitly.
func geminiClientConfig(cfg Config) *genai.ClientConfig {
	cc := &genai.ClientConfig{
		APIKey:      cfg.GeminiAPIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.GeminiBaseURL},
	}
	if cfg.Timeout > 0 {
		cc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return cc
}

func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	model := cfg.GeminiModel
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, geminiClientConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Kind() BackendKind { return BackendGemini }

func (c *GeminiClient) Generate(ctx context.Context, prompt string, image []byte) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("no image data provided")
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image, "image/jpeg"),
		}, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return resp.Text(), nil
}
