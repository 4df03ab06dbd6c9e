package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openf3l/soartimer/internal/config"
	"github.com/openf3l/soartimer/internal/core"
)

type stubClock struct {
	now core.Millis
}

func (c *stubClock) Now() core.Millis { return c.now }

// spokenSink records spoken cues so tests can observe audio dispatch.
type spokenSink struct {
	durations []int
	numbers   []int
	tones     int
}

func (s *spokenSink) Tone(int, time.Duration, time.Duration) { s.tones++ }
func (s *spokenSink) SayDuration(seconds int)                { s.durations = append(s.durations, seconds) }
func (s *spokenSink) SayNumber(n int)                        { s.numbers = append(s.numbers, n) }

func newTestModel(sink *spokenSink) (Model, *stubClock) {
	clock := &stubClock{}
	var m Model
	if sink != nil {
		m = New(config.DefaultConfig(), sink, nil, nil)
	} else {
		m = New(config.DefaultConfig(), nil, nil, nil)
	}
	m.clock = clock
	return m, clock
}

func press(m Model, msg tea.KeyMsg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func pressRune(m Model, r rune) Model {
	return press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func tickOnce(m Model, clock *stubClock, sec float64) Model {
	clock.now = core.FromSeconds(sec)
	updated, _ := m.Update(tickMsg(time.Now()))
	return updated.(Model)
}

func TestModel_StartAndQuit(t *testing.T) {
	m, clock := newTestModel(nil)

	t.Run("space starts the working window", func(t *testing.T) {
		m = press(m, tea.KeyMsg{Type: tea.KeySpace})
		snap := m.session.Snapshot(clock.now)
		assert.Equal(t, core.WindowRunning, snap.Window)
	})

	t.Run("quit key issues tea.Quit", func(t *testing.T) {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})
}

func TestModel_SimulatedFlight(t *testing.T) {
	m, clock := newTestModel(nil)

	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	m = tickOnce(m, clock, 0.1)

	// Full-up elevator launches on the next tick.
	m = pressRune(m, 'f')
	assert.Equal(t, 100.0, m.elevator)
	m = tickOnce(m, clock, 0.2)

	snap := m.session.Snapshot(clock.now)
	assert.Equal(t, core.FlightInProgress, snap.Flight)
	require.NotEmpty(t, m.toasts)
	assert.Equal(t, "launch", m.toasts[0].Message)

	// Landing switch ends the flight and records the result.
	m = pressRune(m, 'd')
	m = tickOnce(m, clock, 12.2)
	m = pressRune(m, 'l')
	assert.True(t, m.landingDown)
	m = tickOnce(m, clock, 12.3)

	snap = m.session.Snapshot(clock.now)
	assert.Equal(t, core.FlightEnded, snap.Flight)
	require.NotNil(t, snap.LastFlight)
	assert.Equal(t, 12, snap.LastFlight.Seconds)
}

func TestModel_ElevatorNudge(t *testing.T) {
	m, _ := newTestModel(nil)

	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 20.0, m.elevator)

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 10.0, m.elevator)

	// Nudges clamp at the travel limits.
	for i := 0; i < 12; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 100.0, m.elevator)
}

func TestModel_QueryIsSpoken(t *testing.T) {
	sink := &spokenSink{}
	m, clock := newTestModel(sink)

	m = tickOnce(m, clock, 0.1)
	m = pressRune(m, 't')
	m = tickOnce(m, clock, 0.2)

	// Idle query announces the full working window.
	require.NotEmpty(t, sink.durations)
	assert.Equal(t, 540, sink.durations[0])

	// The press is momentary; a later tick must not repeat it.
	m = tickOnce(m, clock, 0.3)
	_ = m
	assert.Len(t, sink.durations, 1)
}

func TestModel_MuteSuppressesAudio(t *testing.T) {
	sink := &spokenSink{}
	m, clock := newTestModel(sink)

	m = pressRune(m, 'm')
	assert.True(t, m.muted)

	m = pressRune(m, 't')
	m = tickOnce(m, clock, 0.1)
	assert.Empty(t, sink.durations)

	m = pressRune(m, 'm')
	assert.False(t, m.muted)
}

func TestModel_View(t *testing.T) {
	m, clock := newTestModel(nil)

	t.Run("loading before the first resize", func(t *testing.T) {
		assert.Equal(t, "Loading...", m.View())
	})

	t.Run("renders clocks and status bar", func(t *testing.T) {
		updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
		m = updated.(Model)

		out := m.View()
		assert.Contains(t, out, "WORKING TIME")
		assert.Contains(t, out, "FLIGHT TIME")
		assert.Contains(t, out, "elevator")
		assert.Contains(t, out, "start working time")
	})

	t.Run("progress bar appears while the window runs", func(t *testing.T) {
		m = press(m, tea.KeyMsg{Type: tea.KeySpace})
		m = tickOnce(m, clock, 1.0)
		assert.NotEqual(t, -1, len(m.View()))
	})
}

func TestModel_ToastExpiry(t *testing.T) {
	m, clock := newTestModel(nil)

	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	m = pressRune(m, 'f')
	m = tickOnce(m, clock, 0.1)
	require.NotEmpty(t, m.toasts)

	// Ticks carry wall-clock time; expiry is checked against it.
	clock.now = core.FromSeconds(0.2)
	updated, _ := m.Update(tickMsg(time.Now().Add(toastTTL + time.Second)))
	m = updated.(Model)
	assert.Empty(t, m.toasts)
}
