package core

// Inputs is one tick's worth of sampled sensor state, already normalized.
// Elevator is a 0..100 percentage; LandingDown is true while the landing
// switch sits in its active position; Query is true while the query button
// is held.
type Inputs struct {
	Elevator    float64
	LandingDown bool
	Query       bool
}

// Advance evaluates one tick at now: edge detection, launch arming, launch
// and landing transitions, window and flight expiry, then the voice
// scheduler. It returns the cues that became due this tick, in order.
func (s *Session) Advance(now Millis, in Inputs) []Cue {
	var cues []Cue

	landingEdge := DetectEdge(s.landingPrev, in.LandingDown)
	queryEdge := DetectEdge(s.queryPrev, in.Query)
	s.landingPrev = in.LandingDown
	s.queryPrev = in.Query

	if s.windowPhase == WindowRunning {
		// Re-arm once the elevator has dipped well below the launch
		// threshold. The hysteresis band keeps a noisy high hold from
		// re-triggering.
		if in.Elevator < LaunchThreshold-LaunchHysteresis {
			s.armLaunch = true
		}

		if s.armLaunch && s.flightPhase != FlightInProgress && in.Elevator >= LaunchThreshold {
			s.startFlight(now)
			cues = append(cues, Cue{Kind: CueLaunch})
		}
	}

	// The landing switch ends the flight when it moves into its active
	// position. armLaunch is cleared so a still-high elevator at touchdown
	// cannot immediately start a new flight.
	if landingEdge == EdgeRising && s.flightPhase == FlightInProgress {
		s.finalizeFlight(now)
		s.armLaunch = false
		cues = append(cues, Cue{Kind: CueLanding, Seconds: s.lastFlight.Seconds})
	}

	if s.windowPhase == WindowRunning && now-s.windowStart >= WorkingLimit {
		s.windowPhase = WindowExpired
		cues = append(cues, Cue{Kind: CueWindowEnd})
		if s.flightPhase == FlightInProgress {
			// The attempt is scored up to the end of the window, not
			// up to whenever this tick happened to run.
			s.finalizeFlight(s.windowStart + WorkingLimit)
			cues = append(cues, Cue{Kind: CueFlightEnd, Seconds: s.lastFlight.Seconds})
		}
	}

	if s.flightPhase == FlightInProgress && s.flightRemainingSec(now) <= 0 {
		s.finalizeFlight(s.flightStart + FlightLimit)
		cues = append(cues, Cue{Kind: CueFlightEnd, Seconds: s.lastFlight.Seconds})
	}

	cues = append(cues, s.scheduleVoice(now, queryEdge == EdgeRising)...)
	return cues
}

// PressBack handles one physical press of the confirm/back gesture.
// First press arms a hard reset and shows the hint; a second press before
// the arming deadline wipes the session.
func (s *Session) PressBack(now Millis) []Cue {
	if now < s.backArmedUntil {
		s.hardReset()
		return []Cue{{Kind: CueHardReset}}
	}
	s.backArmedUntil = now + BackArmWindow
	s.showBackHintUntil = now + BackArmWindow
	return []Cue{{Kind: CueAck}}
}

// PressLap handles one physical press of the start/lap gesture. Before any
// window has started it starts the window; while the window runs it arms,
// then on a confirming press performs, a flight-only reset.
func (s *Session) PressLap(now Millis) []Cue {
	switch s.windowPhase {
	case WindowIdle:
		s.startWindow(now)
		return []Cue{{Kind: CueAck}}

	case WindowRunning:
		if now < s.lapArmedUntil {
			s.lapArmedUntil = 0
			s.resetFlight()
			return []Cue{{Kind: CueFlightReset}}
		}
		s.lapArmedUntil = now + LapArmWindow
		return []Cue{{Kind: CueAck}}

	default:
		// Expired window: nothing to start and nothing worth arming.
		return nil
	}
}
