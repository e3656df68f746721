package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if cfg.Render.Scene != "default" {
		t.Errorf("Scene = %q, want %q", cfg.Render.Scene, "default")
	}
}

func TestLoad(t *testing.T) {
	t.Run("EmptyPathKeepsDefaults", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if *cfg != *Default() {
			t.Errorf("got %+v, want defaults", cfg)
		}
	})

	t.Run("FileOverridesDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "render:\n  width: 320\n  height: 240\n  scene: glass\nlogging:\n  level: debug\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Render.Width != 320 || cfg.Render.Height != 240 {
			t.Errorf("size = %dx%d, want 320x240", cfg.Render.Width, cfg.Render.Height)
		}
		if cfg.Render.Scene != "glass" {
			t.Errorf("Scene = %q, want %q", cfg.Render.Scene, "glass")
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("Level = %q, want %q", cfg.Logging.Level, "debug")
		}
		// Untouched keys keep their defaults.
		if cfg.Render.FOVDegrees != 60 {
			t.Errorf("FOVDegrees = %v, want 60", cfg.Render.FOVDegrees)
		}
		if cfg.Output.Path != "render.png" {
			t.Errorf("Output.Path = %q, want render.png", cfg.Output.Path)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("InvalidSettings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("render:\n  width: -1\n"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatal("expected validation error")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"ZeroWidth", func(c *Config) { c.Render.Width = 0 }},
		{"NegativeHeight", func(c *Config) { c.Render.Height = -10 }},
		{"ZeroFOV", func(c *Config) { c.Render.FOVDegrees = 0 }},
		{"ReflexFOV", func(c *Config) { c.Render.FOVDegrees = 200 }},
		{"NegativeMaxDepth", func(c *Config) { c.Render.MaxDepth = -1 }},
		{"EmptyOutput", func(c *Config) { c.Output.Path = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
