package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dreamscape/scene"
)

// handleInput processes keyboard input and returns what the scene needs.
func (g *Game) handleInput() scene.Input {
	if rl.IsKeyPressed(g.keys.fullscreen) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(g.keys.toggleHUD) {
		g.showHUD = !g.showHUD
	}

	return scene.Input{
		Regenerate: rl.IsKeyPressed(g.keys.regenerate),
	}
}
