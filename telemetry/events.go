package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/dreamscape/fractal"
)

// Trigger identifies what caused a parameter switch.
type Trigger string

const (
	TriggerKey       Trigger = "key"
	TriggerScheduled Trigger = "scheduled"
)

// SwitchEvent records one adoption of a new parameter set.
type SwitchEvent struct {
	Frame       int64   `csv:"frame" json:"frame"`
	Trigger     Trigger `csv:"trigger" json:"trigger"`
	Clock       float64 `csv:"clock" json:"clock"` // clock value just before it was zeroed
	Threshold   float64 `csv:"threshold" json:"threshold"`
	Frequency   float64 `csv:"frequency" json:"frequency"`
	Octaves     int     `csv:"octaves" json:"octaves"`
	Amplitude   float64 `csv:"amplitude" json:"amplitude"`
	Lacunarity  float64 `csv:"lacunarity" json:"lacunarity"`
	Persistence float64 `csv:"persistence" json:"persistence"`
	Seed        int32   `csv:"seed" json:"seed"`
	BaseR       float32 `csv:"base_r" json:"base_r"`
	BaseG       float32 `csv:"base_g" json:"base_g"`
	BaseB       float32 `csv:"base_b" json:"base_b"`
}

// NewSwitchEvent creates a switch event for the adopted params.
// threshold is the scheduled threshold in force at the time of the switch.
func NewSwitchEvent(frame int64, trigger Trigger, clock, threshold float64, p fractal.Params) SwitchEvent {
	return SwitchEvent{
		Frame:       frame,
		Trigger:     trigger,
		Clock:       clock,
		Threshold:   threshold,
		Frequency:   p.Frequency,
		Octaves:     p.Octaves,
		Amplitude:   p.Amplitude,
		Lacunarity:  p.Lacunarity,
		Persistence: p.Persistence,
		Seed:        p.Seed,
		BaseR:       p.BaseColor[0],
		BaseG:       p.BaseColor[1],
		BaseB:       p.BaseColor[2],
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (e SwitchEvent) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("frame", e.Frame),
		slog.String("trigger", string(e.Trigger)),
		slog.Float64("clock", e.Clock),
		slog.Float64("threshold", e.Threshold),
		slog.Int("octaves", e.Octaves),
		slog.Float64("frequency", e.Frequency),
		slog.Int("seed", int(e.Seed)),
	)
}
