// Package frames samples still images from a rendered video with ffmpeg.
package frames

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultInterval = 0.1
	framePattern    = "frame_%06d.png"
)

var ErrInvalidInterval = errors.New("interval must be positive")

// Runner executes an external program and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

type Config struct {
	FFmpegPath  string
	FFprobePath string
	Runner      Runner
}

type Extractor struct {
	ffmpeg  string
	ffprobe string
	runner  Runner
	logger  *slog.Logger
}

type Result struct {
	FPS    float64
	Step   int
	Frames int
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Extractor{
		ffmpeg:  cfg.FFmpegPath,
		ffprobe: cfg.FFprobePath,
		runner:  cfg.Runner,
		logger:  logger.With("component", "frames"),
	}
	if e.ffmpeg == "" {
		e.ffmpeg = "ffmpeg"
	}
	if e.ffprobe == "" {
		e.ffprobe = "ffprobe"
	}
	if e.runner == nil {
		e.runner = execRunner{}
	}
	return e
}

// Step is the number of source frames between two kept frames.
func Step(fps, interval float64) int {
	step := int(fps * interval)
	if step < 1 {
		return 1
	}
	return step
}

// Extract keeps every Step-th frame of the video, starting with the first,
// and writes them to outDir as frame_000000.png, frame_000001.png, ...
func (e *Extractor) Extract(ctx context.Context, videoPath, outDir string, interval float64) (*Result, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	fps, err := e.probeFPS(ctx, videoPath)
	if err != nil {
		return nil, err
	}
	step := Step(fps, interval)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if err := clearFrames(outDir); err != nil {
		return nil, err
	}

	_, err = e.runner.Run(ctx, e.ffmpeg,
		"-hide_banner", "-loglevel", "error", "-y",
		"-i", videoPath,
		"-vf", fmt.Sprintf("select=not(mod(n\\,%d))", step),
		"-vsync", "vfr",
		"-start_number", "0",
		filepath.Join(outDir, framePattern),
	)
	if err != nil {
		return nil, fmt.Errorf("extract frames: %w", err)
	}

	written, err := filepath.Glob(filepath.Join(outDir, "frame_*.png"))
	if err != nil {
		return nil, fmt.Errorf("list frames: %w", err)
	}

	result := &Result{FPS: fps, Step: step, Frames: len(written)}
	e.logger.Info("frames extracted", "video", videoPath, "fps", fps, "step", step, "frames", result.Frames)
	return result, nil
}

// clearFrames removes frames left by an earlier run so the count reflects
// this extraction only.
func clearFrames(outDir string) error {
	stale, err := filepath.Glob(filepath.Join(outDir, "frame_*.png"))
	if err != nil {
		return fmt.Errorf("list stale frames: %w", err)
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove stale frame: %w", err)
		}
	}
	return nil
}

func (e *Extractor) probeFPS(ctx context.Context, videoPath string) (float64, error) {
	out, err := e.runner.Run(ctx, e.ffprobe,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=r_frame_rate",
		"-of", "default=noprint_wrappers=1:nokey=1",
		videoPath,
	)
	if err != nil {
		return 0, fmt.Errorf("probe video: %w", err)
	}
	fps, err := ParseRate(string(out))
	if err != nil {
		return 0, fmt.Errorf("probe video: %w", err)
	}
	return fps, nil
}

// ParseRate reads an ffprobe frame rate such as "30000/1001" or "25".
func ParseRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if line, _, ok := strings.Cut(s, "\n"); ok {
		s = strings.TrimSpace(line)
	}

	num, den, isFraction := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frame rate %q", s)
	}
	if !isFraction {
		if n <= 0 {
			return 0, fmt.Errorf("invalid frame rate %q", s)
		}
		return n, nil
	}

	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 || n <= 0 {
		return 0, fmt.Errorf("invalid frame rate %q", s)
	}
	return n / d, nil
}
