// Package app hosts the terminal UI. The model owns one Session and a
// simulated transmitter: elevator percentage, landing switch, and query
// button driven from the keyboard. Every tick samples those controls,
// advances the session, and fans the resulting cues out to the audio sink
// and to transient toasts.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openf3l/soartimer/internal/audio"
	"github.com/openf3l/soartimer/internal/config"
	"github.com/openf3l/soartimer/internal/core"
	"github.com/openf3l/soartimer/internal/input"
	"github.com/openf3l/soartimer/internal/ui/statusbar"
	"github.com/openf3l/soartimer/internal/ui/styles"
	"github.com/openf3l/soartimer/internal/ui/timerview"
	"github.com/openf3l/soartimer/internal/ui/toast"
)

// tickMsg is sent on every clock tick
type tickMsg time.Time

const toastTTL = 4 * time.Second

// Model is the main bubbletea model for the timer UI.
type Model struct {
	cfg     *config.Config
	clock   core.Clock
	session *core.Session
	sink    audio.Sink
	profile *audio.Profile
	logger  *slog.Logger

	// simulated transmitter state
	elevator    float64
	landingDown bool
	queryHeld   bool

	muted bool

	keys          keyMap
	progress      progress.Model
	timer         *timerview.View
	styles        *styles.Styles
	toastRenderer *toast.Renderer
	toasts        []toast.Toast

	width  int
	height int
}

// New creates the UI model. A nil sink mutes audio from the start.
func New(cfg *config.Config, sink audio.Sink, profile *audio.Profile, logger *slog.Logger) Model {
	st := styles.New()

	muted := false
	if sink == nil {
		sink = audio.NullSink{}
		muted = true
	}
	if profile == nil {
		profile = audio.DefaultProfile()
	}
	if logger == nil {
		logger = slog.Default()
	}

	pb := progress.New(progress.WithDefaultGradient())
	pb.ShowPercentage = false

	return Model{
		cfg:           cfg,
		clock:         core.NewClock(),
		session:       core.NewSession(),
		sink:          sink,
		profile:       profile,
		logger:        logger,
		muted:         muted,
		keys:          defaultKeyMap(),
		progress:      pb,
		timer:         timerview.New(st),
		styles:        st,
		toastRenderer: toast.New(st),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.tickEvery()
}

func (m Model) tickEvery() tea.Cmd {
	return tea.Tick(time.Duration(m.cfg.TickMs)*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleTick samples the simulated controls, advances the session one step,
// and dispatches any cues that became due.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	now := m.clock.Now()

	frame := input.Frame{
		Elevator:    &m.elevator,
		LandingDown: m.landingDown,
		Query:       m.queryHeld,
	}
	cues := m.session.Advance(now, core.Inputs{
		Elevator:    input.NormalizeElevator(frame.Elevator),
		LandingDown: frame.LandingDown,
		Query:       frame.Query,
	})
	// The query key is a momentary press; releasing it here gives the next
	// tick its falling edge.
	m.queryHeld = false

	m.dispatch(cues, at)
	m.toasts = toast.Expire(m.toasts, at)

	return m, m.tickEvery()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.clock.Now()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Lap):
		m.dispatch(m.session.PressLap(now), time.Now())

	case key.Matches(msg, m.keys.Back):
		m.dispatch(m.session.PressBack(now), time.Now())

	case key.Matches(msg, m.keys.ElevUp):
		m.elevator = clampPercent(m.elevator + m.cfg.Input.ElevatorStep)

	case key.Matches(msg, m.keys.ElevDown):
		m.elevator = clampPercent(m.elevator - m.cfg.Input.ElevatorStep)

	case key.Matches(msg, m.keys.FullUp):
		m.elevator = 100

	case key.Matches(msg, m.keys.FullDown):
		m.elevator = 0

	case key.Matches(msg, m.keys.Landing):
		m.landingDown = !m.landingDown

	case key.Matches(msg, m.keys.Query):
		m.queryHeld = true

	case key.Matches(msg, m.keys.Mute):
		m.muted = !m.muted
	}

	return m, nil
}

// dispatch plays cues through the audio sink and surfaces the notable ones
// as toasts. Voice and beep cues stay off the toast stack.
func (m *Model) dispatch(cues []core.Cue, at time.Time) {
	for _, c := range cues {
		m.logger.Debug("cue", "kind", c.Kind.String(), "seconds", c.Seconds)
		if !m.muted {
			audio.Play(m.sink, m.profile, c)
		}
		if t, ok := toastFor(c); ok {
			t.Expires = at.Add(toastTTL)
			m.toasts = append(m.toasts, t)
		}
	}
}

func toastFor(c core.Cue) (toast.Toast, bool) {
	switch c.Kind {
	case core.CueLaunch:
		return toast.Toast{Level: toast.Info, Message: "launch"}, true
	case core.CueLanding:
		return toast.Toast{Level: toast.Success,
			Message: fmt.Sprintf("landing %s", core.SpeakDuration(c.Seconds))}, true
	case core.CueWindowEnd:
		return toast.Toast{Level: toast.Warning, Message: "working time expired"}, true
	case core.CueFlightEnd:
		return toast.Toast{Level: toast.Warning,
			Message: fmt.Sprintf("flight time expired at %s", core.SpeakDuration(c.Seconds))}, true
	case core.CueHardReset:
		return toast.Toast{Level: toast.Error, Message: "session reset"}, true
	case core.CueFlightReset:
		return toast.Toast{Level: toast.Info, Message: "flight reset"}, true
	}
	return toast.Toast{}, false
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	snap := m.session.Snapshot(m.clock.Now())

	bar := ""
	if snap.Window == core.WindowRunning {
		bar = m.progress.ViewAs(snap.WindowFrac)
	}

	sections := []string{
		m.timer.Render(snap, bar, m.width),
		m.elevatorLine(),
	}
	if t := m.toastRenderer.Render(m.toasts, m.width); t != "" {
		sections = append(sections, t)
	}
	sections = append(sections,
		statusbar.New(snap.Window, snap.Flight, m.muted, m.width, m.styles).Render())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// elevatorLine shows the simulated transmitter state under the clocks.
func (m Model) elevatorLine() string {
	landing := "up"
	if m.landingDown {
		landing = "down"
	}
	line := fmt.Sprintf("elevator %3.0f%%  landing switch %s", m.elevator, landing)
	return m.styles.StatusHint.Render(line)
}
