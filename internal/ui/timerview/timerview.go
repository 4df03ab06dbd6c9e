// Package timerview renders the main countdown panel: working time, flight
// time, the working-window progress bar, the last completed flight, and the
// reset-confirmation hint. It consumes only read-only core snapshots.
package timerview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/openf3l/soartimer/internal/core"
	"github.com/openf3l/soartimer/internal/ui/styles"
)

// View renders the timer panel.
type View struct {
	styles *styles.Styles
}

// New creates a timer view with the given styles
func New(styles *styles.Styles) *View {
	return &View{styles: styles}
}

// Render draws the panel for one snapshot. progressBar is the pre-rendered
// working-window progress bar; empty hides it.
func (v *View) Render(snap core.Snapshot, progressBar string, width int) string {
	working := lipgloss.JoinVertical(lipgloss.Center,
		v.styles.PanelLabel.Render("WORKING TIME"),
		v.clockStyle(snap.Window).Render(core.FormatTenths(snap.WorkingRem)),
	)

	flight := lipgloss.JoinVertical(lipgloss.Center,
		v.styles.PanelLabel.Render("FLIGHT TIME"),
		v.flightClockStyle(snap).Render(core.FormatTenths(snap.FlightRem)),
	)

	clocks := lipgloss.JoinHorizontal(lipgloss.Top,
		v.styles.Panel.Render(working),
		v.styles.Panel.Render(flight),
	)

	rows := []string{clocks}
	if progressBar != "" {
		rows = append(rows, progressBar)
	}
	rows = append(rows, v.statusLine(snap))
	if snap.BackHint {
		rows = append(rows, v.styles.HintBanner.Render("press back again to reset everything"))
	}

	panel := lipgloss.JoinVertical(lipgloss.Center, rows...)
	if width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, panel)
	}
	return panel
}

// statusLine is the single line under the clocks: last flight and arm state.
func (v *View) statusLine(snap core.Snapshot) string {
	last := "last flight: --"
	if snap.LastFlight != nil {
		last = fmt.Sprintf("last flight: %s (%s)",
			core.FormatTenths(snap.LastFlight.Duration),
			core.SpeakDuration(snap.LastFlight.Seconds))
	}
	line := v.styles.LastFlight.Render(last)

	if snap.ArmLaunch && snap.Flight != core.FlightInProgress {
		line = lipgloss.JoinHorizontal(lipgloss.Left,
			line, "  ", v.styles.ArmedBadge.Render("LAUNCH ARMED"))
	}
	return line
}

func (v *View) clockStyle(phase core.WindowPhase) lipgloss.Style {
	switch phase {
	case core.WindowRunning:
		return v.styles.ClockActive
	case core.WindowExpired:
		return v.styles.ClockDone
	default:
		return v.styles.ClockIdle
	}
}

func (v *View) flightClockStyle(snap core.Snapshot) lipgloss.Style {
	switch snap.Flight {
	case core.FlightInProgress:
		return v.styles.ClockActive
	case core.FlightEnded:
		return v.styles.ClockDone
	default:
		return v.styles.ClockIdle
	}
}
