package core

// CueKind identifies an audio/visual cue emitted by the state machine.
// The core never performs I/O; cues are returned from Advance and the
// gesture handlers for the host to render.
type CueKind int

const (
	CueAck         CueKind = iota // short acknowledgement tone
	CueLaunch                     // flight started
	CueLanding                    // landing switch ended the flight
	CueWindowEnd                  // working window expired, triple pulse
	CueFlightEnd                  // flight finalized; Seconds carries the result
	CueHardReset                  // session wiped, distinct low tone
	CueFlightReset                // flight-only reset, two pulses
	CueFinalBeep                  // one high beep per final-ten second
	CueSayWorking                 // speak remaining working time; Seconds
	CueSayFlight                  // speak remaining flight time; Seconds
	CueCountdown                  // speak the literal integer in Seconds
)

// String returns the display string
func (k CueKind) String() string {
	switch k {
	case CueAck:
		return "ack"
	case CueLaunch:
		return "launch"
	case CueLanding:
		return "landing"
	case CueWindowEnd:
		return "window-end"
	case CueFlightEnd:
		return "flight-end"
	case CueHardReset:
		return "hard-reset"
	case CueFlightReset:
		return "flight-reset"
	case CueFinalBeep:
		return "final-beep"
	case CueSayWorking:
		return "say-working"
	case CueSayFlight:
		return "say-flight"
	case CueCountdown:
		return "countdown"
	default:
		return "unknown"
	}
}

// Cue is a single due cue. Seconds is the spoken payload for the voice
// kinds and the recorded duration for CueLanding and CueFlightEnd; zero
// otherwise.
type Cue struct {
	Kind    CueKind
	Seconds int
}
