package game

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dreamscape/config"
)

// keyBindings holds resolved raylib key codes.
type keyBindings struct {
	regenerate int32
	toggleHUD  int32
	fullscreen int32
}

var namedKeys = map[string]int32{
	"SPACE":     rl.KeySpace,
	"ENTER":     rl.KeyEnter,
	"TAB":       rl.KeyTab,
	"BACKSPACE": rl.KeyBackspace,
	"HOME":      rl.KeyHome,
	"END":       rl.KeyEnd,
}

// keyCode resolves a key name: a letter, a digit, F1-F12, or one of namedKeys.
func keyCode(name string) (int32, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if len(n) == 1 {
		c := n[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			// Letter and digit codes are ASCII
			return int32(c), nil
		}
	}
	if strings.HasPrefix(n, "F") {
		if f, err := strconv.Atoi(n[1:]); err == nil && f >= 1 && f <= 12 {
			return rl.KeyF1 + int32(f-1), nil
		}
	}
	if k, ok := namedKeys[n]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

func parseBindings(c config.ControlsConfig) (keyBindings, error) {
	var kb keyBindings
	for _, b := range []struct {
		field string
		name  string
		dst   *int32
	}{
		{"regenerate", c.Regenerate, &kb.regenerate},
		{"toggle_hud", c.ToggleHUD, &kb.toggleHUD},
		{"fullscreen", c.Fullscreen, &kb.fullscreen},
	} {
		k, err := keyCode(b.name)
		if err != nil {
			return kb, fmt.Errorf("controls.%s: %w", b.field, err)
		}
		*b.dst = k
	}
	return kb, nil
}

// controlsLegend renders the key bindings for the status bar.
func controlsLegend(c config.ControlsConfig) string {
	return fmt.Sprintf("[%s] New fractal  [%s] HUD  [%s] Fullscreen", c.Regenerate, c.ToggleHUD, c.Fullscreen)
}
