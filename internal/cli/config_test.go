package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/meshslice/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Layers != 10 {
		t.Errorf("Layers = %d, want 10", cfg.Layers)
	}
	if cfg.Direction != "bottom_to_top" {
		t.Errorf("Direction = %q, want %q", cfg.Direction, "bottom_to_top")
	}
	if cfg.Outline != "none" {
		t.Errorf("Outline = %q, want %q", cfg.Outline, "none")
	}
	if cfg.OutlineOffset != 0.5 {
		t.Errorf("OutlineOffset = %v, want 0.5", cfg.OutlineOffset)
	}
	if cfg.Format != "dxf" {
		t.Errorf("Format = %q, want %q", cfg.Format, "dxf")
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.Scale != 1.0 {
		t.Errorf("Scale = %v, want 1.0", cfg.Scale)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
layers = 25
direction = "top_to_bottom"
outline = "contour"
outline_offset = 1.5
format = "svg"
workers = 8
scale = 25.4
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Layers != 25 || cfg.Direction != "top_to_bottom" || cfg.Outline != "contour" {
		t.Errorf("loadConfig() = %+v, want file values", cfg)
	}
	if cfg.OutlineOffset != 1.5 || cfg.Format != "svg" || cfg.Workers != 8 || cfg.Scale != 25.4 {
		t.Errorf("loadConfig() = %+v, want file values", cfg)
	}
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `layers = 3`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Layers != 3 {
		t.Errorf("Layers = %d, want 3", cfg.Layers)
	}
	if cfg.Format != "dxf" || cfg.Direction != "bottom_to_top" || cfg.Scale != 1.0 {
		t.Errorf("unset keys changed: %+v, want defaults", cfg)
	}
}

func TestLoadConfig_ExplicitMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	cfg, err := loadConfig(path)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("loadConfig() error = %v, want FILE_NOT_FOUND", err)
	}
	if cfg.Layers != 10 {
		t.Errorf("Layers = %d, want defaults even on error", cfg.Layers)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := writeConfig(t, `layers = "ten"`)
	if _, err := loadConfig(path); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("loadConfig() error = %v, want INVALID_CONFIG", err)
	}
}
