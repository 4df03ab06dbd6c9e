package core

// scheduleVoice decides which voice and beep cues are due this tick.
//
// Global rules: a voice cue may fire only when at least VoiceMinGap has
// passed since the previous one, and every voice cue suppresses tone beeps
// for BeepSuppression afterwards. The 15..1 flight countdown is exempt from
// the gap: countdown fidelity matters more than spacing.
func (s *Session) scheduleVoice(now Millis, queryPressed bool) []Cue {
	var cues []Cue

	// On-demand query: speak the remaining working time.
	if queryPressed && s.voice.gapOK(now) {
		cues = append(cues, Cue{Kind: CueSayWorking, Seconds: s.workingRemainingRounded(now)})
		s.voice.spoke(now)
	}

	if s.windowPhase == WindowRunning {
		rem := s.workingRemaining(now).RoundSeconds()

		if rem == 60 && !s.voice.workSpoke60 && s.voice.gapOK(now) {
			cues = append(cues, Cue{Kind: CueSayWorking, Seconds: rem})
			s.voice.workSpoke60 = true
			s.voice.spoke(now)
		}
		if rem == 30 && !s.voice.workSpoke30 && s.voice.gapOK(now) {
			cues = append(cues, Cue{Kind: CueSayWorking, Seconds: rem})
			s.voice.workSpoke30 = true
			s.voice.spoke(now)
		}

		// One high beep per distinct second in the final ten, unless a
		// fresh voice cue is still playing over it.
		if rem >= 1 && rem <= 10 && rem != s.voice.lastWorkRemSec && s.voice.beepsOK(now) {
			cues = append(cues, Cue{Kind: CueFinalBeep})
			s.voice.lastWorkRemSec = rem
		}
	}

	if s.flightPhase == FlightInProgress {
		rem := s.flightRemainingSec(now)

		// Spoken countdown for the last fifteen seconds. Always fires,
		// once per distinct value; the memory clears whenever remaining
		// is back above 15 so a fresh flight counts down again.
		switch {
		case rem >= 1 && rem <= 15:
			if rem != s.voice.lastCountdownSpoken {
				cues = append(cues, Cue{Kind: CueCountdown, Seconds: rem})
				s.voice.lastCountdownSpoken = rem
				s.voice.spoke(now)
			}
		case rem > 15:
			s.voice.lastCountdownSpoken = 0
		}

		// Whole-minute announcements for remaining minutes 1..5.
		if rem > 0 && rem%60 == 0 {
			min := rem / 60
			if min >= 1 && min <= 5 && min != s.voice.lastMinuteSpoken && s.voice.gapOK(now) {
				cues = append(cues, Cue{Kind: CueSayFlight, Seconds: rem})
				s.voice.lastMinuteSpoken = min
				s.voice.spoke(now)
			}
		}

		// Exact-equality cues at 30 and 20 seconds remaining. The
		// lastFlightRemSpoken comparison makes these fire on the
		// transition into the value rather than on every tick of that
		// second; a tick cadence that jumps the boundary skips the cue.
		if (rem == 30 || rem == 20) && rem != s.voice.lastFlightRemSpoken && s.voice.gapOK(now) {
			cues = append(cues, Cue{Kind: CueSayFlight, Seconds: rem})
			s.voice.lastFlightRemSpoken = rem
			s.voice.spoke(now)
		}
	}

	return cues
}
