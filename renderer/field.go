// Package renderer moves rasterized frames onto the GPU and draws them.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dreamscape/fractal"
)

// FieldTexture is a streaming texture the fractal field is uploaded into
// every frame.
type FieldTexture struct {
	texture     rl.Texture2D
	width       int32
	height      int32
	initialized bool
}

// NewFieldTexture creates a field texture of the given pixel size.
func NewFieldTexture(width, height int32) *FieldTexture {
	return &FieldTexture{
		width:  width,
		height: height,
	}
}

// Init creates the GPU texture (must be called after raylib window is created).
func (f *FieldTexture) Init() {
	if f.initialized {
		return
	}

	img := rl.GenImageColor(int(f.width), int(f.height), rl.Black)
	f.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(f.texture, rl.FilterBilinear)

	f.initialized = true
}

// Update uploads buf into the texture. buf must match the texture size.
func (f *FieldTexture) Update(buf *fractal.PixelBuffer) {
	if !f.initialized {
		f.Init()
	}
	rl.UpdateTexture(f.texture, buf.Pix)
}

// Draw stretches the texture over a screen of the given size.
func (f *FieldTexture) Draw(screenW, screenH float32) {
	if !f.initialized {
		return
	}
	rl.DrawTexturePro(
		f.texture,
		rl.Rectangle{X: 0, Y: 0, Width: float32(f.width), Height: float32(f.height)},
		rl.Rectangle{X: 0, Y: 0, Width: screenW, Height: screenH},
		rl.Vector2{X: 0, Y: 0},
		0,
		rl.White,
	)
}

// Unload frees resources.
func (f *FieldTexture) Unload() {
	if f.initialized {
		rl.UnloadTexture(f.texture)
		f.initialized = false
	}
}
