package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dreamscape/fractal"
)

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Title     string
	FPS       int32
	Frame     int64
	Clock     float64
	Threshold float64
	Pending   bool // a parameter set is waiting in the mailbox
	Zoom      float32
	Rotation  float32
	Params    fractal.Params
	Controls  string

	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the parameter panel and status bar.
type HUD struct {
	renderer *Renderer
	width    int32
	height   int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		width:    260,
		height:   252,
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	pad := r.Theme.Padding
	x, y := pad, pad

	r.DrawPanel(x, y, h.width, h.height)
	gui.Panel(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(h.width), Height: 24}, data.Title)

	cx := x + pad
	cy := y + 30
	cy = r.DrawLabelValue(cx, cy, "FPS", fmt.Sprintf("%d", data.FPS))
	cy = r.DrawLabelValue(cx, cy, "Frame", fmt.Sprintf("%d", data.Frame))
	cy = r.DrawLabelValue(cx, cy, "Zoom", fmt.Sprintf("%.3f", data.Zoom))
	cy = r.DrawLabelValue(cx, cy, "Rotation", fmt.Sprintf("%.3f rad", data.Rotation))

	// Progress toward the next scheduled switch
	progress := float32(0)
	if data.Threshold > 0 {
		progress = float32(data.Clock / data.Threshold)
	}
	cy = r.DrawBar(cx, cy, "Next switch", progress, h.width-2*pad)

	cy += 4
	cy = r.DrawSectionHeader(cx, cy, "Parameters")
	p := data.Params
	cy = r.DrawLabelValue(cx, cy, "Frequency", fmt.Sprintf("%.3f", p.Frequency))
	cy = r.DrawLabelValue(cx, cy, "Octaves", fmt.Sprintf("%d", p.Octaves))
	cy = r.DrawLabelValue(cx, cy, "Amplitude", fmt.Sprintf("%.3f", p.Amplitude))
	cy = r.DrawLabelValue(cx, cy, "Lacunarity", fmt.Sprintf("%.3f", p.Lacunarity))
	cy = r.DrawLabelValue(cx, cy, "Persistence", fmt.Sprintf("%.3f", p.Persistence))
	cy = r.DrawLabelValue(cx, cy, "Seed", fmt.Sprintf("%d", p.Seed))
	r.DrawColorSwatch(cx, cy, "Base color", p.BaseColor)

	h.drawStatus(data)
}

// drawStatus renders the bottom status bar with the controls legend.
func (h *HUD) drawStatus(data HUDData) {
	status := fmt.Sprintf("clock %.1f / %.0f", data.Clock, data.Threshold)
	if data.Pending {
		status += " | next set ready"
	}
	bounds := rl.Rectangle{
		X:      0,
		Y:      float32(data.ScreenHeight - 24),
		Width:  float32(data.ScreenWidth),
		Height: 24,
	}
	gui.StatusBar(bounds, data.Controls+"    "+status)
}

// DrawHint renders a one-line hint when the HUD is hidden.
func DrawHint(text string, screenHeight int32) {
	rl.DrawText(text, 10, screenHeight-20, 12, rl.Fade(rl.LightGray, 0.6))
}
