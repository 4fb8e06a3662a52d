package bootstrap

import (
	"context"
	"log/slog"

	"github.com/eleven-am/streetscene/internal/scene"
	"github.com/eleven-am/streetscene/internal/streetview"
	"github.com/eleven-am/streetscene/internal/vision"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

func ProvideImageFetcher(cfg *Config, redisClient *redis.Client, logger *slog.Logger) (streetview.Fetcher, error) {
	client, err := streetview.NewClient(streetview.Config{
		APIKey:            cfg.GoogleMapsAPIKey,
		BaseURL:           cfg.StreetViewURL,
		RequestsPerSecond: cfg.StreetViewRPS,
	})
	if err != nil {
		return nil, err
	}
	if redisClient == nil {
		return client, nil
	}
	return streetview.NewCache(redisClient, client, cfg.ImageCacheTTL, logger), nil
}

func ProvideCaptionBackend(cfg *Config) (vision.Backend, error) {
	return vision.NewBackend(context.Background(), vision.Config{
		GeminiAPIKey:     cfg.GeminiAPIKey,
		GeminiModel:      cfg.GeminiModel,
		OpenRouterAPIKey: cfg.OpenRouterAPIKey,
		OpenRouterModel:  cfg.OpenRouterModel,
		OpenRouterURL:    cfg.OpenRouterURL,
		Timeout:          cfg.CaptionTimeout,
	})
}

func ProvideCaptioner(backend vision.Backend, logger *slog.Logger) *vision.Captioner {
	return vision.NewCaptioner(backend, logger)
}

func ProvideSceneService(fetcher streetview.Fetcher, captioner *vision.Captioner, logger *slog.Logger) *scene.Service {
	return scene.NewService(fetcher, captioner, logger)
}

var ServicesModule = fx.Options(
	fx.Provide(
		ProvideImageFetcher,
		ProvideCaptionBackend,
		ProvideCaptioner,
		ProvideSceneService,
	),
)
