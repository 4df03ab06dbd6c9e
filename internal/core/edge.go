package core

// Edge classifies the transition between two samples of a discrete input.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
)

// String returns the display string
func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	default:
		return "none"
	}
}

// DetectEdge compares the previous and current sample of a discrete input.
func DetectEdge(prev, cur bool) Edge {
	switch {
	case !prev && cur:
		return EdgeRising
	case prev && !cur:
		return EdgeFalling
	default:
		return EdgeNone
	}
}
