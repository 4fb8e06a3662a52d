package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/eleven-am/streetscene/internal/frames"
)

func main() {
	video := flag.String("video", "", "input video file")
	output := flag.String("output", "", "directory for extracted frames")
	interval := flag.Float64("interval", frames.DefaultInterval, "seconds between kept frames")
	ffmpeg := flag.String("ffmpeg", "ffmpeg", "ffmpeg binary")
	ffprobe := flag.String("ffprobe", "ffprobe", "ffprobe binary")
	flag.Parse()

	if *video == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "-video and -output are required")
		flag.Usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	extractor := frames.NewExtractor(frames.Config{FFmpegPath: *ffmpeg, FFprobePath: *ffprobe}, logger)
	result, err := extractor.Extract(ctx, *video, *output, *interval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to extract frames: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Extracted %d frames (fps %.3f, every %d frames) to %s\n", result.Frames, result.FPS, result.Step, *output)
}
