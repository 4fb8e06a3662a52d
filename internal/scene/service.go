package scene

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/eleven-am/streetscene/internal/camera"
	"github.com/eleven-am/streetscene/internal/environment"
	"github.com/eleven-am/streetscene/internal/shared"
	"github.com/eleven-am/streetscene/internal/streetview"
	"github.com/eleven-am/streetscene/internal/sumonet"
	"github.com/eleven-am/streetscene/internal/trajectory"
	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"
)

var (
	ErrRetrievalDisabled = errors.New("image retrieval is not configured")
	// ErrOutput marks failures writing the scene directory or manifest.
	ErrOutput = errors.New("write scene output")
)

type Service struct {
	fetcher   streetview.Fetcher
	captioner Captioner
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewService wires the orchestrator. fetcher and captioner may be nil when
// every request has Retrieve set to false.
func NewService(fetcher streetview.Fetcher, captioner Captioner, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		fetcher:   fetcher,
		captioner: captioner,
		validate:  validator.New(),
		logger:    logger.With("component", "scene"),
	}
}

func (s *Service) Validate(req Request) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidInput, err)
	}
	return nil
}

// Describe resolves the vehicle pose, samples every camera of the preset and
// captions each image. A vehicle missing at the target time is reported
// through Report.Found, not as an error. Per-camera failures become
// placeholders.
func (s *Service) Describe(ctx context.Context, req Request) (*Report, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	presetName := req.CameraSetting
	if presetName == "" {
		presetName = camera.DefaultPreset
	}
	preset, err := camera.Lookup(presetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	if req.Retrieve && (s.fetcher == nil || s.captioner == nil) {
		return nil, ErrRetrievalDisabled
	}

	net, err := sumonet.Load(req.NetPath)
	if err != nil {
		return nil, fmt.Errorf("load map: %w", err)
	}
	fcd, err := trajectory.Load(req.FCDPath)
	if err != nil {
		return nil, fmt.Errorf("load trajectory: %w", err)
	}

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create output dir: %w", ErrOutput, err)
	}

	report := &Report{Request: req}
	logger := s.logger.With("vehicle_id", req.VehicleID, "time", req.TimeStart)

	if start, end, ok := fcd.Span(); ok && (req.TimeStart < start || req.TimeStart > end) {
		logger.Warn("target time outside trajectory span", "start", start, "end", end)
	}

	pose, ok := fcd.PoseAt(req.VehicleID, req.TimeStart)
	if !ok {
		logger.Warn("vehicle not found at target time")
		report.Combined = NotFoundMessage
		if err := writeManifest(req.OutputDir, report); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOutput, err)
		}
		return report, nil
	}

	loc, err := net.ToLonLat(pose.X, pose.Y)
	if err != nil {
		return nil, fmt.Errorf("project position: %w", err)
	}

	report.Found = true
	report.Pose = pose
	report.Lon = loc.Lon()
	report.Lat = loc.Lat()
	report.InBounds = net.InBounds(loc)
	if !report.InBounds {
		logger.Warn("projected position outside network boundary", "lon", report.Lon, "lat", report.Lat)
	}
	if req.AgentClipDistance > 0 {
		report.Neighbors = fcd.Neighbors(req.VehicleID, req.TimeStart, req.AgentClipDistance)
	}
	report.Context = environment.Load(req.FCDPath)
	if report.Context.IsZero() {
		logger.Debug("no accident report beside trajectory")
	}

	logger.Info("processing location",
		"lon", report.Lon,
		"lat", report.Lat,
		"angle", pose.Angle,
		"preset", preset.Name,
		"neighbors", len(report.Neighbors))

	if req.Retrieve {
		for _, view := range preset.Views {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			report.Views = append(report.Views, s.describeView(ctx, req.OutputDir, view, loc, pose.Angle, report.Context))
		}
	}

	report.Combined = Combine(report.Views)
	if err := writeManifest(req.OutputDir, report); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return report, nil
}

func (s *Service) describeView(ctx context.Context, dir string, view camera.Viewpoint, loc orb.Point, angle float64, env environment.Context) ViewResult {
	result := ViewResult{
		Name:    view.Name,
		Heading: view.Heading(angle),
		FOV:     view.FOV,
	}
	logger := s.logger.With("camera", view.Name)

	image, err := s.fetcher.Fetch(ctx, streetview.Request{
		Lat:     loc.Lat(),
		Lon:     loc.Lon(),
		Heading: result.Heading,
		FOV:     view.FOV,
	})
	if err != nil {
		return failed(logger, result, fmt.Errorf("fetch image: %w", err))
	}

	imagePath := filepath.Join(dir, "streetview_image_"+view.Name+".jpg")
	if err := os.WriteFile(imagePath, image, 0o644); err != nil {
		return failed(logger, result, fmt.Errorf("write image: %w", err))
	}
	result.ImagePath = imagePath

	caption, err := s.captioner.Caption(ctx, image, env)
	if err != nil {
		return failed(logger, result, fmt.Errorf("caption: %w", err))
	}

	text := view.Prefix + timePrefix(env.TimeOfDay) + caption
	promptPath := filepath.Join(dir, "prompt_"+view.Name+".txt")
	if err := os.WriteFile(promptPath, []byte(text), 0o644); err != nil {
		return failed(logger, result, fmt.Errorf("write prompt: %w", err))
	}
	result.PromptPath = promptPath
	result.Text = text

	logger.Debug("view described", "image", imagePath, "prompt", promptPath)
	return result
}

func failed(logger *slog.Logger, result ViewResult, err error) ViewResult {
	logger.Warn("failed to retrieve street view", "error", err)
	result.Err = err
	return result
}

func timePrefix(timeOfDay string) string {
	if timeOfDay == "" {
		return ""
	}
	return "The scene occurs during the " + timeOfDay + ". "
}
