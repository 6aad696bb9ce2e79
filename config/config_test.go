package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Screen.Width != 1024 || cfg.Screen.Height != 800 {
		t.Errorf("expected 1024x800 screen, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.TargetFPS != 60 {
		t.Errorf("expected 60 fps, got %d", cfg.Screen.TargetFPS)
	}
	if cfg.Screen.Title != "Fractal Dreamscape" {
		t.Errorf("unexpected title %q", cfg.Screen.Title)
	}
	if cfg.Field.Scale != 0.05 {
		t.Errorf("expected scale 0.05, got %g", cfg.Field.Scale)
	}
	if cfg.Derived.ChannelWeights != [3]float32{1.0, 0.8, 0.6} {
		t.Errorf("unexpected channel weights %v", cfg.Derived.ChannelWeights)
	}
	if cfg.Derived.RotatorInterval != 5*time.Second {
		t.Errorf("expected 5s rotator interval, got %s", cfg.Derived.RotatorInterval)
	}
	if cfg.Rotator.ThresholdMin != 10 || cfg.Rotator.ThresholdMax != 40 {
		t.Errorf("expected threshold [10, 40), got [%d, %d)", cfg.Rotator.ThresholdMin, cfg.Rotator.ThresholdMax)
	}
	if cfg.Params.OctavesMin != 2 || cfg.Params.OctavesMax != 8 {
		t.Errorf("expected octaves 2-8, got %d-%d", cfg.Params.OctavesMin, cfg.Params.OctavesMax)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "field:\n  backend: simplex\nrotator:\n  interval_sec: 2.5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Field.Backend != "simplex" {
		t.Errorf("expected overlay backend simplex, got %q", cfg.Field.Backend)
	}
	if cfg.Derived.RotatorInterval != 2500*time.Millisecond {
		t.Errorf("expected 2.5s interval, got %s", cfg.Derived.RotatorInterval)
	}
	// Untouched fields keep their defaults
	if cfg.Field.Scale != 0.05 {
		t.Errorf("expected default scale to survive overlay, got %g", cfg.Field.Scale)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zoom bounds", "animation:\n  zoom_min: 2.0\n  zoom_max: 1.0\n", "zoom bounds"},
		{"threshold", "rotator:\n  threshold_min: 40\n  threshold_max: 40\n", "threshold"},
		{"weights", "field:\n  channel_weights: [1.0, 0.5]\n", "channel_weights"},
		{"octaves", "params:\n  octaves_min: 0\n", "octaves"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading snapshot failed: %v", err)
	}
	if reloaded.Screen != cfg.Screen {
		t.Errorf("screen changed across roundtrip: %+v vs %+v", reloaded.Screen, cfg.Screen)
	}
}
