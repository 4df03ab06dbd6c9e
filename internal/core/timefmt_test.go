package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTenths(t *testing.T) {
	tests := []struct {
		name string
		sec  float64
		want string
	}{
		{"zero", 0, "0:00.0"},
		{"sub-second", 0.44, "0:00.4"},
		{"rounds half up", 0.45, "0:00.5"},
		{"tenth boundary", 59.95, "1:00.0"},
		{"minute", 60, "1:00.0"},
		{"working limit", 540, "9:00.0"},
		{"typical flight", 347.26, "5:47.3"},
		{"negative clamps", -3.2, "0:00.0"},
		{"nan clamps", math.NaN(), "0:00.0"},
		{"inf clamps", math.Inf(1), "0:00.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTenths(tt.sec))
		})
	}
}

func TestFormatTenths_TenthsDigit(t *testing.T) {
	// The rendered tenths digit must equal floor(t*10+0.5) mod 10 for any
	// non-negative input.
	for _, sec := range []float64{0, 0.04, 0.05, 1.949, 1.951, 29.99, 59.95, 123.456, 539.99} {
		got := FormatTenths(sec)
		want := byte('0' + int(math.Floor(sec*10+0.5))%10)
		assert.Equal(t, want, got[len(got)-1], "tenths digit for %v (formatted %q)", sec, got)
	}
}

func TestParseTenths_RoundTrip(t *testing.T) {
	for _, sec := range []float64{0, 0.3, 1.949, 29.99, 59.94, 180, 347.26, 539.99, -2} {
		formatted := FormatTenths(sec)
		parsed, err := ParseTenths(formatted)
		require.NoError(t, err, "parsing %q", formatted)

		clamped := math.Max(0, sec)
		assert.InDelta(t, clamped, parsed, 0.05, "round-trip of %v via %q", sec, formatted)
	}
}

func TestParseTenths_Malformed(t *testing.T) {
	for _, s := range []string{"", "1:00", "100.0", "1:xx.0", "1:00.x", "1:73.0", "1:00.12"} {
		_, err := ParseTenths(s)
		assert.Error(t, err, "input %q should not parse", s)
	}
}

func TestSpeakDuration(t *testing.T) {
	tests := []struct {
		sec  int
		want string
	}{
		{0, "0 seconds"},
		{1, "1 second"},
		{30, "30 seconds"},
		{60, "1 minute"},
		{90, "1 minute 30 seconds"},
		{300, "5 minutes"},
		{540, "9 minutes"},
		{321, "5 minutes 21 seconds"},
		{-5, "0 seconds"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SpeakDuration(tt.sec), "SpeakDuration(%d)", tt.sec)
	}
}
