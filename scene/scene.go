// Package scene advances the visualizer one frame at a time: clock, camera,
// parameter switches and rasterization. It has no window dependency so the
// same loop runs graphical and headless.
package scene

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/dreamscape/camera"
	"github.com/pthm-cable/dreamscape/config"
	"github.com/pthm-cable/dreamscape/fractal"
	"github.com/pthm-cable/dreamscape/rotator"
	"github.com/pthm-cable/dreamscape/telemetry"
)

// Options configures a Scene.
type Options struct {
	Width, Height int
	DT            float64 // clock advance per frame
	Motion        camera.Motion
	Generator     fractal.Options

	// Scheduled switch threshold bounds, [ThresholdMin, ThresholdMax)
	ThresholdMin int
	ThresholdMax int
}

// DefaultOptions returns the stock 1024x800 scene.
func DefaultOptions() Options {
	return Options{
		Width:        1024,
		Height:       800,
		DT:           0.016,
		Motion:       camera.DefaultMotion(),
		Generator:    fractal.DefaultOptions(),
		ThresholdMin: 10,
		ThresholdMax: 40,
	}
}

// OptionsFromConfig builds scene options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Width:  cfg.Screen.Width,
		Height: cfg.Screen.Height,
		DT:     cfg.Animation.DT,
		Motion: camera.Motion{
			RotationRate: cfg.Animation.RotationRate,
			RotationFreq: cfg.Animation.RotationFreq,
			ZoomSpeed:    cfg.Animation.ZoomSpeed,
			ZoomFreq:     cfg.Animation.ZoomFreq,
			MinZoom:      cfg.Derived.ZoomMin32,
			MaxZoom:      cfg.Derived.ZoomMax32,
		},
		Generator: fractal.Options{
			Backend: cfg.Field.Backend,
			Scale:   cfg.Field.Scale,
			Shading: fractal.Shading{
				BreathingFreq: cfg.Field.BreathingFreq,
				Weights:       cfg.Derived.ChannelWeights,
			},
			Ranges:  fractal.RangesFromConfig(cfg.Params),
			Workers: cfg.Field.Workers,
		},
		ThresholdMin: cfg.Rotator.ThresholdMin,
		ThresholdMax: cfg.Rotator.ThresholdMax,
	}
}

// Input is the per-frame user input the scene reacts to.
type Input struct {
	Regenerate bool
}

// Scene owns the animation state, the active parameters and the pixel buffer.
// It is driven from a single goroutine.
type Scene struct {
	opts     Options
	gen      *fractal.Generator
	cam      *camera.Camera
	schedule *rotator.Schedule
	mailbox  *rotator.Mailbox[fractal.Params]
	buf      *fractal.PixelBuffer
	perf     *telemetry.PerfCollector

	clock float64
	frame int64
}

// New creates a scene reading pending parameters from mailbox. rng seeds the
// generator and the schedule; it must not be shared with the rotator.
func New(opts Options, mailbox *rotator.Mailbox[fractal.Params], rng *rand.Rand) (*Scene, error) {
	gen, err := fractal.NewGenerator(opts.Generator, rng)
	if err != nil {
		return nil, err
	}
	return &Scene{
		opts:     opts,
		gen:      gen,
		cam:      camera.New(opts.Motion),
		schedule: rotator.NewSchedule(opts.ThresholdMin, opts.ThresholdMax, rng),
		mailbox:  mailbox,
		buf:      fractal.NewPixelBuffer(opts.Width, opts.Height),
	}, nil
}

// SetPerf attaches a collector; Step then times its phases.
func (s *Scene) SetPerf(p *telemetry.PerfCollector) {
	s.perf = p
}

func (s *Scene) phase(name string) {
	if s.perf != nil {
		s.perf.StartPhase(name)
	}
}

// Step runs one frame: input, animation, scheduled switch, rasterization.
// It returns the switch event if the active parameters changed this frame.
func (s *Scene) Step(in Input) (telemetry.SwitchEvent, bool) {
	s.frame++

	var (
		ev       telemetry.SwitchEvent
		switched bool
	)

	s.phase(telemetry.PhaseInput)
	if in.Regenerate {
		ev, switched = s.regenerate(), true
	}

	s.phase(telemetry.PhaseAnimate)
	s.clock += s.opts.DT
	s.cam.Animate(s.clock)

	s.phase(telemetry.PhaseSwitch)
	threshold := s.schedule.Threshold()
	if p, ok := s.schedule.Poll(s.clock, s.mailbox); ok {
		s.gen.SetParams(p)
		ev = telemetry.NewSwitchEvent(s.frame, telemetry.TriggerScheduled, s.clock, threshold, p)
		switched = true
		s.clock = 0
		slog.Debug("scheduled switch", "event", ev, "next_threshold", s.schedule.Threshold())
	}

	s.phase(telemetry.PhaseGenerate)
	s.gen.Generate(s.buf, s.clock, s.cam.Rotation, s.cam.Zoom)

	return ev, switched
}

// regenerate applies a fresh parameter set immediately. The threshold is
// left as it was.
func (s *Scene) regenerate() telemetry.SwitchEvent {
	p := s.gen.ResetParams()
	ev := telemetry.NewSwitchEvent(s.frame, telemetry.TriggerKey, s.clock, s.schedule.Threshold(), p)
	s.clock = 0
	slog.Debug("parameters regenerated", "event", ev)
	return ev
}

// Buffer returns the frame most recently rasterized by Step.
func (s *Scene) Buffer() *fractal.PixelBuffer {
	return s.buf
}

// Params returns the active parameter set.
func (s *Scene) Params() fractal.Params {
	return s.gen.Params()
}

// Clock returns the virtual clock, seconds since the last switch.
func (s *Scene) Clock() float64 {
	return s.clock
}

// Frame returns the number of steps taken.
func (s *Scene) Frame() int64 {
	return s.frame
}

// Threshold returns the clock value the next scheduled switch waits for.
func (s *Scene) Threshold() float64 {
	return s.schedule.Threshold()
}

// Camera returns the animated camera.
func (s *Scene) Camera() *camera.Camera {
	return s.cam
}

// Close stops the rasterization workers.
func (s *Scene) Close() {
	s.gen.Close()
}
