package vision

import (
	"context"
	"log/slog"

	"github.com/eleven-am/streetscene/internal/environment"
)

type Captioner struct {
	backend Backend
	logger  *slog.Logger
}

func NewCaptioner(backend Backend, logger *slog.Logger) *Captioner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Captioner{
		backend: backend,
		logger:  logger.With("component", "captioner", "backend", string(backend.Kind())),
	}
}

func (c *Captioner) Kind() BackendKind {
	return c.backend.Kind()
}

// Caption returns the backend's text unmodified.
func (c *Captioner) Caption(ctx context.Context, image []byte, env environment.Context) (string, error) {
	prompt := BuildPrompt(env.Summary(), env.TimeOfDay)
	text, err := c.backend.Generate(ctx, prompt, image)
	if err != nil {
		return "", err
	}
	c.logger.Debug("caption generated", "image_bytes", len(image), "caption_len", len(text))
	return text, nil
}
