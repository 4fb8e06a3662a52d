package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/eleven-am/streetscene/internal/camera"
	"github.com/eleven-am/streetscene/internal/scene"
	"github.com/eleven-am/streetscene/internal/streetview"
	"github.com/eleven-am/streetscene/internal/vision"
	"github.com/joho/godotenv"
)

func main() {
	output := flag.String("output", "", "directory for images, prompts and scene.yaml")
	fcdPath := flag.String("fcd", "", "SUMO FCD trajectory file")
	mapPath := flag.String("map", "", "SUMO network file")
	timeStart := flag.Float64("time-start", 0, "target simulation time in seconds")
	timeEnd := flag.Float64("time-end", 0, "end of the time window in seconds")
	vehicleID := flag.String("vehicle", "", "ego vehicle id")
	cameraSetting := flag.String("camera-setting", camera.DefaultPreset, "camera preset: default|waymo")
	agentClip := flag.Float64("agent-clip-distance", 160, "radius in metres for nearby vehicles")
	mapClip := flag.Float64("map-clip-distance", 200, "radius in metres for the map crop")
	googleModel := flag.String("google-model", "", "Gemini model (overrides GEMINI_MODEL_NAME)")
	openRouterModel := flag.String("openrouter-model", "", "OpenRouter model; selects the OpenRouter backend")
	retrieve := flag.Bool("streetview", true, "fetch and caption street view imagery")
	logLevel := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(*logLevel)}))
	slog.SetDefault(logger)

	if *output == "" || *fcdPath == "" || *mapPath == "" || *vehicleID == "" {
		fmt.Fprintln(os.Stderr, "-output, -fcd, -map and -vehicle are required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		fetcher   streetview.Fetcher
		captioner scene.Captioner
	)
	if *retrieve {
		client, err := streetview.NewClient(streetview.Config{
			APIKey:            os.Getenv("GOOGLE_MAPS_API_KEY"),
			BaseURL:           os.Getenv("STREETVIEW_URL"),
			RequestsPerSecond: envFloat("STREETVIEW_RPS"),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create street view client: %v\n", err)
			os.Exit(1)
		}
		fetcher = client

		backend, err := vision.NewBackend(ctx, visionConfig(*googleModel, *openRouterModel))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create caption backend: %v\n", err)
			os.Exit(1)
		}
		logger.Info("caption backend selected", "backend", backend.Kind())
		captioner = vision.NewCaptioner(backend, logger)
	}

	svc := scene.NewService(fetcher, captioner, logger)
	report, err := svc.Describe(ctx, scene.Request{
		OutputDir:         *output,
		FCDPath:           *fcdPath,
		NetPath:           *mapPath,
		VehicleID:         *vehicleID,
		TimeStart:         *timeStart,
		TimeEnd:           *timeEnd,
		CameraSetting:     *cameraSetting,
		AgentClipDistance: *agentClip,
		MapClipDistance:   *mapClip,
		Retrieve:          *retrieve,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to describe scene: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(report.Combined)
}

func visionConfig(googleModel, openRouterModel string) vision.Config {
	cfg := vision.Config{
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      os.Getenv("GEMINI_MODEL_NAME"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:  os.Getenv("OPENROUTER_MODEL"),
		OpenRouterURL:    os.Getenv("OPENROUTER_URL"),
	}
	if googleModel != "" {
		cfg.GeminiModel = googleModel
	}
	if openRouterModel != "" {
		cfg.OpenRouterModel = openRouterModel
	}
	return cfg
}

func envFloat(key string) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
