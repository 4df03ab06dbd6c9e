package statusbar

import "github.com/openf3l/soartimer/internal/core"

// GetHints returns the keybinding hints for the given window phase
func GetHints(window core.WindowPhase) string {
	switch window {
	case core.WindowRunning:
		return "↑/↓ f d: elevator  l: landing  t: time?  Space×2: reset flight  Bksp×2: reset all  q: quit"
	case core.WindowExpired:
		return "t: time?  Bksp×2: reset all  q: quit"
	default:
		return "Space: start working time  t: time?  m: mute  q: quit"
	}
}
