package audio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openf3l/soartimer/internal/core"
)

// ToneSpec describes one tone cue: frequency, pulse length, pulse count and
// the gap between pulses.
type ToneSpec struct {
	Freq   int `yaml:"freq"`
	DurMs  int `yaml:"durMs"`
	Pulses int `yaml:"pulses"`
	GapMs  int `yaml:"gapMs"`
}

// Profile maps tone cue kinds to their tone parameters. Loaded from a YAML
// file; missing entries fall back to the defaults.
type Profile struct {
	Ack         ToneSpec `yaml:"ack"`
	Launch      ToneSpec `yaml:"launch"`
	Landing     ToneSpec `yaml:"landing"`
	WindowEnd   ToneSpec `yaml:"windowEnd"`
	FlightEnd   ToneSpec `yaml:"flightEnd"`
	HardReset   ToneSpec `yaml:"hardReset"`
	FlightReset ToneSpec `yaml:"flightReset"`
	FinalBeep   ToneSpec `yaml:"finalBeep"`
}

// DefaultProfile returns the built-in tone set.
func DefaultProfile() *Profile {
	return &Profile{
		Ack:         ToneSpec{Freq: 880, DurMs: 80, Pulses: 1},
		Launch:      ToneSpec{Freq: 1047, DurMs: 150, Pulses: 1},
		Landing:     ToneSpec{Freq: 523, DurMs: 200, Pulses: 1},
		WindowEnd:   ToneSpec{Freq: 660, DurMs: 180, Pulses: 3, GapMs: 120},
		FlightEnd:   ToneSpec{Freq: 587, DurMs: 250, Pulses: 1},
		HardReset:   ToneSpec{Freq: 220, DurMs: 400, Pulses: 1},
		FlightReset: ToneSpec{Freq: 740, DurMs: 120, Pulses: 2, GapMs: 100},
		FinalBeep:   ToneSpec{Freq: 1568, DurMs: 60, Pulses: 1},
	}
}

// LoadProfile reads a tone profile from a YAML file and merges it over the
// defaults. An empty path returns the defaults unchanged.
func LoadProfile(path string) (*Profile, error) {
	p := DefaultProfile()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tone profile: %w", err)
	}

	var loaded Profile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse tone profile %s: %w", path, err)
	}

	mergeSpec(&p.Ack, loaded.Ack)
	mergeSpec(&p.Launch, loaded.Launch)
	mergeSpec(&p.Landing, loaded.Landing)
	mergeSpec(&p.WindowEnd, loaded.WindowEnd)
	mergeSpec(&p.FlightEnd, loaded.FlightEnd)
	mergeSpec(&p.HardReset, loaded.HardReset)
	mergeSpec(&p.FlightReset, loaded.FlightReset)
	mergeSpec(&p.FinalBeep, loaded.FinalBeep)
	return p, nil
}

// mergeSpec overwrites dst with src when src carries a real tone.
func mergeSpec(dst *ToneSpec, src ToneSpec) {
	if src.Freq > 0 && src.DurMs > 0 {
		*dst = src
	}
}

// For returns the tone parameters for a cue kind. Spoken kinds have no
// tone and map to the acknowledgement spec.
func (p *Profile) For(k core.CueKind) ToneSpec {
	switch k {
	case core.CueLaunch:
		return p.Launch
	case core.CueLanding:
		return p.Landing
	case core.CueWindowEnd:
		return p.WindowEnd
	case core.CueFlightEnd:
		return p.FlightEnd
	case core.CueHardReset:
		return p.HardReset
	case core.CueFlightReset:
		return p.FlightReset
	case core.CueFinalBeep:
		return p.FinalBeep
	default:
		return p.Ack
	}
}
