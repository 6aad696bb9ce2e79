// Package game drives the visualizer window: input, frame stepping, texture
// upload, HUD and shutdown.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dreamscape/config"
	"github.com/pthm-cable/dreamscape/fractal"
	"github.com/pthm-cable/dreamscape/renderer"
	"github.com/pthm-cable/dreamscape/rotator"
	"github.com/pthm-cable/dreamscape/scene"
	"github.com/pthm-cable/dreamscape/telemetry"
	"github.com/pthm-cable/dreamscape/ui"
)

// Options configures game initialization.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	Headless  bool
}

// Game holds the complete visualizer state.
type Game struct {
	scene   *scene.Scene
	mailbox *rotator.Mailbox[fractal.Params]
	rotator *rotator.Rotator

	// Rendering (nil when headless)
	field *renderer.FieldTexture
	hud   *ui.HUD

	// Telemetry
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	lastPerfLog   time.Time

	keys     keyBindings
	controls string
	showHUD  bool
	headless bool
	title    string
}

// NewGameWithOptions creates a game and starts the parameter rotator.
// Raylib must already be initialized unless opts.Headless is set.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	keys, err := parseBindings(cfg.Controls)
	if err != nil {
		return nil, err
	}

	mailbox := &rotator.Mailbox[fractal.Params]{}
	sc, err := scene.New(scene.OptionsFromConfig(cfg), mailbox, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	g := &Game{
		scene:         sc,
		mailbox:       mailbox,
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:      opts.LogStats,
		lastPerfLog:   time.Now(),
		keys:          keys,
		controls:      controlsLegend(cfg.Controls),
		showHUD:       cfg.Telemetry.ShowHUD,
		headless:      opts.Headless,
		title:         cfg.Screen.Title,
	}
	sc.SetPerf(g.perfCollector)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		sc.Close()
		return nil, fmt.Errorf("creating output: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		g.disableOutput(err)
	}

	if !opts.Headless {
		g.field = renderer.NewFieldTexture(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
		g.field.Init()
		g.hud = ui.NewHUD()
	}

	// Separate source: the rotator goroutine owns its rng
	g.rotator = rotator.New(mailbox, fractal.RangesFromConfig(cfg.Params),
		cfg.Derived.RotatorInterval, rand.New(rand.NewSource(opts.Seed+1)))
	g.rotator.Start(context.Background())

	slog.Info("visualizer started",
		"seed", opts.Seed,
		"backend", cfg.Field.Backend,
		"params", sc.Params(),
		"threshold", sc.Threshold(),
		"headless", opts.Headless,
	)

	return g, nil
}

// Update handles input and advances one frame. Pair with Draw.
func (g *Game) Update() {
	g.perfCollector.StartFrame()
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	in := g.handleInput()
	g.step(in)
}

// UpdateHeadless advances one frame without input or drawing.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartFrame()
	g.step(scene.Input{})
	g.perfCollector.EndFrame()
	g.flushTelemetry()
}

func (g *Game) step(in scene.Input) {
	if ev, ok := g.scene.Step(in); ok {
		g.recordSwitch(ev)
	}
}

// Draw uploads the frame and renders it with the HUD.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseUpload)
	g.field.Update(g.scene.Buffer())

	g.perfCollector.StartPhase(telemetry.PhaseDraw)
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.field.Draw(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	g.drawUI()

	rl.EndDrawing()

	g.perfCollector.EndFrame()
	g.flushTelemetry()
}

func (g *Game) drawUI() {
	sh := int32(rl.GetScreenHeight())
	if !g.showHUD {
		ui.DrawHint(g.controls, sh)
		return
	}
	cam := g.scene.Camera()
	g.hud.Draw(ui.HUDData{
		Title:        g.title,
		FPS:          rl.GetFPS(),
		Frame:        g.scene.Frame(),
		Clock:        g.scene.Clock(),
		Threshold:    g.scene.Threshold(),
		Pending:      g.mailbox.Ready(),
		Zoom:         cam.Zoom,
		Rotation:     cam.Rotation,
		Params:       g.scene.Params(),
		Controls:     g.controls,
		ScreenWidth:  int32(rl.GetScreenWidth()),
		ScreenHeight: sh,
	})
}

// Unload stops the rotator and releases resources, in that order.
func (g *Game) Unload() {
	g.rotator.Stop()
	g.scene.Close()
	if g.field != nil {
		g.field.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	slog.Info("visualizer stopped",
		"frames", g.scene.Frame(),
		"published", g.mailbox.Pushes(),
		"overwritten", g.mailbox.Overwrites(),
	)
}

// Frame returns the number of frames stepped.
func (g *Game) Frame() int64 {
	return g.scene.Frame()
}
