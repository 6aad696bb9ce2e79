package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/dreamscape/config"
	"github.com/pthm-cable/dreamscape/fractal"
)

func TestNewOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatal(err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// Nil manager methods are no-ops
	if err := om.WritePerf(PerfStats{}, 1); err != nil {
		t.Errorf("WritePerf on nil manager: %v", err)
	}
	if err := om.WriteSwitch(SwitchEvent{}); err != nil {
		t.Errorf("WriteSwitch on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("expected empty dir, got %q", om.Dir())
	}
}

func TestOutputManager_WritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}

	stats := PerfStats{AvgFrame: time.Millisecond, PhasePct: map[string]float64{PhaseGenerate: 80}}
	for frame := int64(1); frame <= 3; frame++ {
		if err := om.WritePerf(stats, frame*60); err != nil {
			t.Fatalf("WritePerf failed: %v", err)
		}
	}

	p := fractal.Params{Frequency: 1.5, Octaves: 4, Seed: 9, BaseColor: [3]float32{1, 0.5, 0}}
	if err := om.WriteSwitch(NewSwitchEvent(10, TriggerKey, 3.2, 17, p)); err != nil {
		t.Fatalf("WriteSwitch failed: %v", err)
	}
	if err := om.WriteSwitch(NewSwitchEvent(900, TriggerScheduled, 17.01, 17, p)); err != nil {
		t.Fatalf("WriteSwitch failed: %v", err)
	}

	if err := om.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	perf := readLines(t, filepath.Join(dir, "perf.csv"))
	if len(perf) != 4 {
		t.Fatalf("expected header + 3 perf rows, got %d lines", len(perf))
	}
	if !strings.HasPrefix(perf[0], "frame,avg_frame_us") {
		t.Errorf("unexpected perf header %q", perf[0])
	}
	if strings.Count(strings.Join(perf, "\n"), "frame,avg_frame_us") != 1 {
		t.Error("perf header written more than once")
	}

	switches := readLines(t, filepath.Join(dir, "switches.csv"))
	if len(switches) != 3 {
		t.Fatalf("expected header + 2 switch rows, got %d lines", len(switches))
	}
	if !strings.Contains(switches[1], "key") || !strings.Contains(switches[2], "scheduled") {
		t.Errorf("unexpected switch rows: %q", switches[1:])
	}
}

func TestOutputManager_WriteConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}
	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("written config does not load back: %v", err)
	}
}

func TestNewSwitchEvent(t *testing.T) {
	p := fractal.Params{Frequency: 2, Octaves: 6, Amplitude: 1, Lacunarity: 3, Persistence: 0.4, Seed: 5, BaseColor: [3]float32{0.1, 0.2, 0.3}}
	e := NewSwitchEvent(42, TriggerScheduled, 25.5, 25, p)

	if e.Frame != 42 || e.Trigger != TriggerScheduled || e.Clock != 25.5 || e.Threshold != 25 {
		t.Errorf("unexpected event header: %+v", e)
	}
	if e.Octaves != 6 || e.Seed != 5 || e.BaseG != 0.2 {
		t.Errorf("params not copied: %+v", e)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}
