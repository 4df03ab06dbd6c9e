// Package statusbar renders the phase badge and key hints at the bottom of
// the TUI.
package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/openf3l/soartimer/internal/core"
	"github.com/openf3l/soartimer/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	window core.WindowPhase
	flight core.FlightPhase
	muted  bool
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar for the given phases, width, and styles
func New(window core.WindowPhase, flight core.FlightPhase, muted bool, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		window: window,
		flight: flight,
		muted:  muted,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	phase := sb.window.String()
	if sb.window == core.WindowRunning {
		phase = sb.flight.String()
	}
	badge := sb.styles.StatusPhase.Render(" " + phase + " ")

	hints := GetHints(sb.window)
	if sb.muted {
		hints += "  [muted]"
	}
	hintsRendered := sb.styles.StatusHint.Render(hints)

	separator := sb.styles.StatusHint.Render(" │ ")
	content := lipgloss.JoinHorizontal(lipgloss.Left, badge, separator, hintsRendered)

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
