package bootstrap

import (
	"log/slog"
	"os"

	"github.com/eleven-am/streetscene/internal/auth"
	"github.com/eleven-am/streetscene/internal/scene"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/fx"
)

type HandlerParams struct {
	fx.In

	AuthMiddleware *auth.Middleware
	SceneHandler   *scene.Handler
}

func RegisterRoutes(e *echo.Echo, params HandlerParams) {
	api := e.Group("/v1")

	scenesGroup := api.Group("/scenes")
	scenesGroup.Use(params.AuthMiddleware.Authenticate)
	params.SceneHandler.RegisterRoutes(scenesGroup)

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler())
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ProvideLogger(cfg *Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

func ProvideAuthMiddleware(cfg *Config) *auth.Middleware {
	return auth.NewMiddleware(splitList(cfg.APIKeys))
}

func ProvideSceneHandler(service *scene.Service, store *scene.Store, cfg *Config, logger *slog.Logger) *scene.Handler {
	return scene.NewHandler(service, store, cfg.DataRoot, cfg.OutputRoot, logger.With("handler", "scene"))
}

var HandlersModule = fx.Options(
	fx.Provide(
		ProvideLogger,
		ProvideAuthMiddleware,
		ProvideSceneHandler,
	),
	fx.Invoke(RegisterRoutes),
)
