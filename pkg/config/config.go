// Package config handles render configuration loading.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all render settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds canvas and tracing settings.
type RenderConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// FOVDegrees is the horizontal field of view. Degrees in the file,
	// converted to radians at the camera boundary.
	FOVDegrees float64 `yaml:"fov_degrees"`
	// MaxDepth caps reflection/refraction recursion. Zero keeps the
	// built-in default.
	MaxDepth int `yaml:"max_depth"`
	// Workers is the number of render goroutines. Zero means one per CPU.
	Workers int    `yaml:"workers"`
	Scene   string `yaml:"scene"`
}

// OutputConfig holds image output settings.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:      800,
			Height:     400,
			FOVDegrees: 60,
			MaxDepth:   0,
			Workers:    0,
			Scene:      "default",
		},
		Output: OutputConfig{
			Path: "render.png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Load returns the defaults merged with the YAML file at path. An empty
// path skips the file and returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings no render could satisfy.
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d is not positive", c.Render.Width, c.Render.Height)
	}
	if c.Render.FOVDegrees <= 0 || c.Render.FOVDegrees >= 180 {
		return fmt.Errorf("field of view %g degrees outside (0, 180)", c.Render.FOVDegrees)
	}
	if c.Render.MaxDepth < 0 {
		return fmt.Errorf("max depth %d is negative", c.Render.MaxDepth)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output path is empty")
	}
	return nil
}
