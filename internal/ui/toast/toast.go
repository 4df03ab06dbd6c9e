// Package toast renders transient notifications for cues and gesture
// feedback.
package toast

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/openf3l/soartimer/internal/ui/styles"
)

// Level classifies a toast for styling.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

// Toast is one transient notification; it disappears once Expires passes.
type Toast struct {
	Level   Level
	Message string
	Expires time.Time
}

// Renderer handles rendering of toast notifications
type Renderer struct {
	styles *styles.Styles
}

// New creates a new Renderer with the given styles
func New(styles *styles.Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render renders a stack of toasts, right-aligned.
// Returns empty string if no toasts to display
func (r *Renderer) Render(toasts []Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	var rendered []string
	toastWidth := width / 3
	if toastWidth > 40 {
		toastWidth = 40
	}

	for _, t := range toasts {
		style := r.styleForLevel(t.Level)
		rendered = append(rendered, style.Width(toastWidth).Render(t.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// Expire drops toasts whose deadline has passed.
func Expire(toasts []Toast, now time.Time) []Toast {
	kept := make([]Toast, 0, len(toasts))
	for _, t := range toasts {
		if t.Expires.After(now) {
			kept = append(kept, t)
		}
	}
	return kept
}

func (r *Renderer) styleForLevel(level Level) lipgloss.Style {
	switch level {
	case Success:
		return r.styles.ToastSuccess
	case Warning:
		return r.styles.ToastWarning
	case Error:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
