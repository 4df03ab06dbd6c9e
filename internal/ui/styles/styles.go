package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all the UI styles
type Styles struct {
	// Timer panel
	Panel       lipgloss.Style
	PanelLabel  lipgloss.Style
	ClockIdle   lipgloss.Style
	ClockActive lipgloss.Style
	ClockDone   lipgloss.Style
	LastFlight  lipgloss.Style
	ArmedBadge  lipgloss.Style
	HintBanner  lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusPhase lipgloss.Style
	StatusHint  lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(1, 3),

		PanelLabel: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true),

		ClockIdle: lipgloss.NewStyle().
			Foreground(Overlay0).
			Bold(true),

		ClockActive: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		ClockDone: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		LastFlight: lipgloss.NewStyle().
			Foreground(Teal),

		ArmedBadge: lipgloss.NewStyle().
			Foreground(Base).
			Background(Peach).
			Padding(0, 1).
			Bold(true),

		HintBanner: lipgloss.NewStyle().
			Foreground(Base).
			Background(Yellow).
			Padding(0, 1).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusPhase: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}
