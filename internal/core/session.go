// Package core implements the timing state machine and voice scheduler for
// F3L-style duration training: a fixed working-time window, a per-flight
// countdown, launch/landing detection, debounced reset gestures, and timed
// audio cues. The whole package is single-threaded; a Session is advanced by
// exactly one periodic tick handler and never shared.
package core

// Competition constants. Fixed by the discipline, not runtime-configurable.
const (
	WorkingLimit   = 540 * Second // outer working-time window
	FlightLimit    = 360 * Second // per-attempt flight countdown
	FlightLimitSec = 360

	LaunchThreshold  = 80.0 // elevator percentage that triggers a launch
	LaunchHysteresis = 10.0 // dip below threshold-hysteresis re-arms

	VoiceMinGap     = 700 * Millisecond // minimum spacing between voice cues
	BeepSuppression = 900 * Millisecond // tone-beep grace after a voice cue

	BackArmWindow = 2000 * Millisecond // confirm window for hard reset
	LapArmWindow  = 1000 * Millisecond // confirm window for flight-only reset
)

// WindowPhase is the working-time window lifecycle. Expired is terminal;
// only a hard reset returns to Idle.
type WindowPhase int

const (
	WindowIdle WindowPhase = iota
	WindowRunning
	WindowExpired
)

// String returns the display string
func (p WindowPhase) String() string {
	switch p {
	case WindowRunning:
		return "running"
	case WindowExpired:
		return "expired"
	default:
		return "idle"
	}
}

// FlightPhase is the per-attempt lifecycle. Ended is terminal for the
// attempt; a new launch or a flight-only reset starts over.
type FlightPhase int

const (
	NoFlight FlightPhase = iota
	FlightInProgress
	FlightEnded
)

// String returns the display string
func (p FlightPhase) String() string {
	switch p {
	case FlightInProgress:
		return "flying"
	case FlightEnded:
		return "landed"
	default:
		return "ready"
	}
}

// FlightResult records a completed attempt. Written exactly once, when the
// flight is finalized.
type FlightResult struct {
	Duration float64 // seconds, from the real-valued clock
	Seconds  int     // Duration rounded half-up to whole seconds
}

// voiceMemory holds the scheduler's anti-spam state: the global voice gap,
// the post-voice beep suppression window, and once-per-value cue memory.
type voiceMemory struct {
	spoken             bool   // a voice cue has fired at least once
	lastVoiceAt        Millis // timestamp of the most recent voice cue
	suppressBeepsUntil Millis

	// working-window memory, cleared on window start
	workSpoke60    bool
	workSpoke30    bool
	lastWorkRemSec int // last final-ten second beeped, 0 = none

	// flight memory, cleared on launch and flight reset
	lastMinuteSpoken    int // last remaining-minute announced, 0 = none
	lastFlightRemSpoken int // last remaining value spoken by the 30/20 cue
	lastCountdownSpoken int // last countdown value spoken, 0 = none
}

func (v *voiceMemory) gapOK(now Millis) bool {
	return !v.spoken || now-v.lastVoiceAt >= VoiceMinGap
}

func (v *voiceMemory) spoke(now Millis) {
	v.spoken = true
	v.lastVoiceAt = now
	v.suppressBeepsUntil = now + BeepSuppression
}

func (v *voiceMemory) beepsOK(now Millis) bool {
	return now >= v.suppressBeepsUntil
}

func (v *voiceMemory) resetWorking() {
	v.workSpoke60 = false
	v.workSpoke30 = false
	v.lastWorkRemSec = 0
}

func (v *voiceMemory) resetFlight() {
	v.lastMinuteSpoken = 0
	v.lastFlightRemSpoken = 0
	v.lastCountdownSpoken = 0
}

// Session is the single mutable aggregate. It is owned exclusively by the
// tick handler; Advance, PressBack and PressLap must never be called
// concurrently.
type Session struct {
	windowPhase WindowPhase
	windowStart Millis // valid only once the window has started

	flightPhase    FlightPhase
	flightStart    Millis
	flightStartSec int // truncated start, drives the integer flight clock
	flightEnd      Millis

	// armLaunch gates the rising-edge launch trigger: set while the
	// elevator has dipped below threshold-hysteresis since the last
	// launch or reset.
	armLaunch bool

	lastFlight *FlightResult

	voice voiceMemory

	// gesture arming deadlines; armed only while now is before the value
	backArmedUntil    Millis
	showBackHintUntil Millis
	lapArmedUntil     Millis

	// switch-edge memory, one sample per tick
	landingPrev bool
	queryPrev   bool
}

// NewSession returns a Session in its factory state: window idle, no flight.
func NewSession() *Session {
	return &Session{}
}

// hardReset wipes the session back to factory defaults. Switch-edge memory
// is preserved so a held switch does not produce a phantom edge on the next
// tick.
func (s *Session) hardReset() {
	landing, query := s.landingPrev, s.queryPrev
	*s = Session{}
	s.landingPrev, s.queryPrev = landing, query
}

// resetFlight clears the flight fields and flight-voice memory without
// touching the working window. The record of the last completed flight is
// kept; it belongs to that flight, not the one being discarded.
func (s *Session) resetFlight() {
	s.flightPhase = NoFlight
	s.flightStart = 0
	s.flightStartSec = 0
	s.flightEnd = 0
	s.armLaunch = false
	s.voice.resetFlight()
}

// startWindow opens the working-time window. Callers must ensure the window
// is Idle; a window can only ever be started once per hard reset.
func (s *Session) startWindow(now Millis) {
	s.windowPhase = WindowRunning
	s.windowStart = now
	s.armLaunch = true
	s.voice.resetWorking()
	s.voice.resetFlight()
}

// startFlight records a launch and begins the flight countdown.
func (s *Session) startFlight(now Millis) {
	s.flightPhase = FlightInProgress
	s.flightStart = now
	s.flightStartSec = now.WholeSeconds()
	s.flightEnd = 0
	s.armLaunch = false
	s.voice.resetFlight()
}

// finalizeFlight ends the flight at the given time and records the result.
// Idempotent: only the first call for a flight has effect.
func (s *Session) finalizeFlight(end Millis) {
	if s.flightPhase != FlightInProgress {
		return
	}
	s.flightPhase = FlightEnded
	s.flightEnd = end
	dur := end - s.flightStart
	if dur < 0 {
		dur = 0
	}
	s.lastFlight = &FlightResult{
		Duration: dur.Seconds(),
		Seconds:  dur.RoundSeconds(),
	}
}

// workingRemaining returns the un-clamped working time left at now.
func (s *Session) workingRemaining(now Millis) Millis {
	return WorkingLimit - (now - s.windowStart)
}

// workingRemainingRounded is the spoken value for the on-demand query: the
// full limit before the window starts, the live remaining value while it
// runs, zero after expiry.
func (s *Session) workingRemainingRounded(now Millis) int {
	switch s.windowPhase {
	case WindowRunning:
		return s.workingRemaining(now).RoundSeconds()
	case WindowExpired:
		return 0
	default:
		return WorkingLimit.RoundSeconds()
	}
}

// flightRemainingSec is the integer-clock flight countdown, used for limits
// and voice cues so spoken values agree with whole-second boundaries.
func (s *Session) flightRemainingSec(now Millis) int {
	return FlightLimitSec - (now.WholeSeconds() - s.flightStartSec)
}

// Snapshot is the read-only view consumed by the presentation layer.
type Snapshot struct {
	Window      WindowPhase
	Flight      FlightPhase
	ArmLaunch   bool
	WorkingRem  float64 // seconds, clamped at zero; full limit while idle
	FlightRem   float64 // seconds, clamped at zero; frozen once ended
	LastFlight  *FlightResult
	BackHint    bool // back-gesture hint is being shown
	LapArmed    bool
	WindowFrac  float64 // elapsed fraction of the working window, 0..1
}

// Snapshot derives the display state at now. The Session is not modified.
func (s *Session) Snapshot(now Millis) Snapshot {
	snap := Snapshot{
		Window:    s.windowPhase,
		Flight:    s.flightPhase,
		ArmLaunch: s.armLaunch,
		BackHint:  now < s.showBackHintUntil,
		LapArmed:  now < s.lapArmedUntil,
	}

	switch s.windowPhase {
	case WindowRunning:
		rem := s.workingRemaining(now)
		if rem < 0 {
			rem = 0
		}
		snap.WorkingRem = rem.Seconds()
		snap.WindowFrac = 1 - rem.Seconds()/WorkingLimit.Seconds()
	case WindowExpired:
		snap.WorkingRem = 0
		snap.WindowFrac = 1
	default:
		snap.WorkingRem = WorkingLimit.Seconds()
	}

	switch s.flightPhase {
	case FlightInProgress:
		rem := FlightLimit - (now - s.flightStart)
		if rem < 0 {
			rem = 0
		}
		snap.FlightRem = rem.Seconds()
	case FlightEnded:
		rem := FlightLimit - (s.flightEnd - s.flightStart)
		if rem < 0 {
			rem = 0
		}
		snap.FlightRem = rem.Seconds()
	default:
		snap.FlightRem = FlightLimit.Seconds()
	}

	if s.lastFlight != nil {
		result := *s.lastFlight
		snap.LastFlight = &result
	}
	return snap
}
