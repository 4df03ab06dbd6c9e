package core

import "time"

// Millis is the internal time representation: integer milliseconds since an
// arbitrary monotonic origin. All threshold comparisons happen on this type;
// conversion to float seconds is reserved for the presentation boundary.
type Millis int64

const (
	Millisecond Millis = 1
	Second      Millis = 1000 * Millisecond
	Minute      Millis = 60 * Second
)

// FromSeconds converts a real-valued second count to Millis, rounding half up.
func FromSeconds(s float64) Millis {
	return Millis(s*1000 + 0.5)
}

// Seconds returns the value as real-valued seconds.
func (m Millis) Seconds() float64 {
	return float64(m) / 1000
}

// WholeSeconds returns the value truncated to whole seconds.
func (m Millis) WholeSeconds() int {
	return int(m / Second)
}

// RoundSeconds returns the value rounded to the nearest whole second,
// clamped at zero.
func (m Millis) RoundSeconds() int {
	if m < 0 {
		return 0
	}
	return int((m + Second/2) / Second)
}

// Clock supplies monotonic elapsed time for the tick handler.
type Clock interface {
	Now() Millis
}

type monotonicClock struct {
	start time.Time
}

// NewClock returns a Clock measuring elapsed time since its creation.
func NewClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Now() Millis {
	return Millis(time.Since(c.start) / time.Millisecond)
}
