package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/dreamscape/config"
	"github.com/pthm-cable/dreamscape/telemetry"
)

// recordSwitch logs a parameter switch and appends it to the output.
func (g *Game) recordSwitch(ev telemetry.SwitchEvent) {
	if g.logStats {
		slog.Info("parameters switched", "event", ev)
	}
	if g.outputManager != nil {
		if err := g.outputManager.WriteSwitch(ev); err != nil {
			g.disableOutput(err)
		}
	}
}

// flushTelemetry logs and writes perf stats once per log interval.
func (g *Game) flushTelemetry() {
	interval := config.Cfg().Derived.PerfLogInterval
	if interval <= 0 || time.Since(g.lastPerfLog) < interval {
		return
	}
	g.lastPerfLog = time.Now()

	stats := g.perfCollector.Stats()

	if g.logStats {
		slog.Info("perf",
			"frame", g.scene.Frame(),
			"stats", stats,
			"published", g.mailbox.Pushes(),
			"overwritten", g.mailbox.Overwrites(),
		)
	}

	if g.outputManager != nil {
		if err := g.outputManager.WritePerf(stats, g.scene.Frame()); err != nil {
			g.disableOutput(err)
		}
	}
}

// disableOutput logs a write failure and stops further output. Rendering
// continues.
func (g *Game) disableOutput(err error) {
	slog.Error("output failed, disabling", "dir", g.outputManager.Dir(), "error", err)
	if cerr := g.outputManager.Close(); cerr != nil {
		slog.Error("failed to close output", "error", cerr)
	}
	g.outputManager = nil
}
