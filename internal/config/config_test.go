package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("window dimensions should be positive")
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.Period <= 0 {
		t.Error("pulse period should be positive")
	}
	if cfg.Depth <= 0 || cfg.Depth >= 1 {
		t.Errorf("pulse depth should be a small fraction, got %f", cfg.Depth)
	}
	if !cfg.Glow {
		t.Error("glow should default on")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("racing")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Period != 0.6 {
		t.Errorf("expected period 0.6, got %f", cfg.Period)
	}

	// Mutating a returned preset must not change the catalog
	cfg.Period = 99
	if Presets["racing"].Period != 0.6 {
		t.Error("preset catalog was mutated through a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected at least one preset")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.yaml")

	cfg := DefaultConfig()
	cfg.Period = 0.9
	cfg.Theme = "mono"
	cfg.Glow = false

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Period != 0.9 {
		t.Errorf("expected period 0.9, got %f", loaded.Period)
	}
	if loaded.Theme != "mono" {
		t.Errorf("expected theme mono, got %s", loaded.Theme)
	}
	if loaded.Glow {
		t.Error("expected glow disabled after round trip")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		fps      int
		expected float64
	}{
		{60, 1.0 / 60},
		{30, 1.0 / 30},
		{0, 1.0 / 60}, // falls back to default
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.FPS = tt.fps
		if got := cfg.TickInterval(); got != tt.expected {
			t.Errorf("fps %d: expected %f, got %f", tt.fps, tt.expected, got)
		}
	}
}
