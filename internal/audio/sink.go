// Package audio renders the core's cues. The Sink interface is the audio
// contract: three fire-and-forget primitives with no queue state visible to
// the caller. The shipped sinks log or drop cues; hardware backends
// implement the same interface.
package audio

import (
	"log/slog"
	"time"

	"github.com/openf3l/soartimer/internal/core"
)

// Sink plays audio primitives. Calls must not block; a sink that cannot
// play a cue drops it silently.
type Sink interface {
	// Tone plays a short tone at freq Hz for dur, starting after delay.
	Tone(freq int, dur, delay time.Duration)
	// SayDuration speaks a whole-second duration as minutes and seconds.
	SayDuration(seconds int)
	// SayNumber speaks a literal integer.
	SayNumber(n int)
}

// NullSink drops every cue. Used when audio is muted.
type NullSink struct{}

func (NullSink) Tone(int, time.Duration, time.Duration) {}
func (NullSink) SayDuration(int)                        {}
func (NullSink) SayNumber(int)                          {}

// SlogSink logs every primitive through a structured logger.
type SlogSink struct {
	log *slog.Logger
}

// NewSlogSink creates a SlogSink writing to the given logger.
func NewSlogSink(log *slog.Logger) *SlogSink {
	return &SlogSink{log: log}
}

func (s *SlogSink) Tone(freq int, dur, delay time.Duration) {
	s.log.Info("tone", "freq", freq, "dur", dur, "delay", delay)
}

func (s *SlogSink) SayDuration(seconds int) {
	s.log.Info("say", "phrase", core.SpeakDuration(seconds))
}

func (s *SlogSink) SayNumber(n int) {
	s.log.Info("say", "number", n)
}

// Play renders one cue through the sink using the tone profile. Spoken
// cues go to the speech primitives; tone cues expand to their pulse train.
func Play(s Sink, p *Profile, c core.Cue) {
	switch c.Kind {
	case core.CueSayWorking, core.CueSayFlight:
		s.SayDuration(c.Seconds)
	case core.CueCountdown:
		s.SayNumber(c.Seconds)
	case core.CueLanding, core.CueFlightEnd:
		playTone(s, p.For(c.Kind))
		s.SayDuration(c.Seconds)
	default:
		playTone(s, p.For(c.Kind))
	}
}

func playTone(s Sink, spec ToneSpec) {
	dur := time.Duration(spec.DurMs) * time.Millisecond
	gap := time.Duration(spec.GapMs) * time.Millisecond
	pulses := spec.Pulses
	if pulses < 1 {
		pulses = 1
	}
	for i := 0; i < pulses; i++ {
		s.Tone(spec.Freq, dur, time.Duration(i)*(dur+gap))
	}
}
