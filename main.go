package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	stdmath "math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/raywerk/whitted/pkg/config"
	"github.com/raywerk/whitted/pkg/logger"
	"github.com/raywerk/whitted/pkg/renderer"
	"github.com/raywerk/whitted/pkg/scene"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	sceneName := flag.String("scene", "", "Scene to render (overrides config): "+strings.Join(scene.Names(), ", "))
	output := flag.String("output", "", "Output PNG path (overrides config)")
	width := flag.Int("width", 0, "Canvas width in pixels (overrides config)")
	height := flag.Int("height", 0, "Canvas height in pixels (overrides config)")
	workers := flag.Int("workers", 0, "Render goroutines, 0 for one per CPU (overrides config)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: whitted [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	if err := run(*configPath, *sceneName, *output, *width, *height, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, sceneName, output string, width, height, workers int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if sceneName != "" {
		cfg.Render.Scene = sceneName
	}
	if output != "" {
		cfg.Output.Path = output
	}
	if width > 0 {
		cfg.Render.Width = width
	}
	if height > 0 {
		cfg.Render.Height = height
	}
	if workers > 0 {
		cfg.Render.Workers = workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	defer log.Sync()

	fov := cfg.Render.FOVDegrees * stdmath.Pi / 180
	s, err := scene.Build(cfg.Render.Scene, cfg.Render.Width, cfg.Render.Height, fov)
	if err != nil {
		return err
	}
	if cfg.Render.MaxDepth > 0 {
		s.World.Config.MaxDepth = cfg.Render.MaxDepth
	}
	log.Info("scene built", zap.String("scene", cfg.Render.Scene))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	canvas, err := renderer.NewRenderer(cfg.Render.Workers, log).Render(ctx, s.Camera, s.World)
	if err != nil {
		return err
	}

	if err := writePNG(cfg.Output.Path, canvas); err != nil {
		return err
	}
	log.Info("render saved", zap.String("path", cfg.Output.Path))
	return nil
}

func writePNG(path string, canvas *renderer.Canvas) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, canvas.ToImage()); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
