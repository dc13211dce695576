package p5

import "math"

// AngleMode selects the unit angle-consuming calls interpret their
// arguments in.
type AngleMode int

const (
	// Radians is the default angle unit.
	Radians AngleMode = iota
	// Degrees interprets angles as degrees.
	Degrees
)

// String returns the mode name.
func (m AngleMode) String() string {
	switch m {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	default:
		return "unknown"
	}
}

func (m AngleMode) valid() bool {
	return m == Radians || m == Degrees
}

// ArcMode determines how an arc is closed when stroked and how it is
// triangulated when filled.
type ArcMode int

const (
	// Open leaves the arc unclosed.
	Open ArcMode = iota
	// Chord closes the arc with a straight segment between its ends.
	Chord
	// Pie closes the arc with two radii through its center.
	Pie
)

// String returns the mode name.
func (m ArcMode) String() string {
	switch m {
	case Open:
		return "open"
	case Chord:
		return "chord"
	case Pie:
		return "pie"
	default:
		return "unknown"
	}
}

// DrawState is the current styling applied by drawing calls.
type DrawState struct {
	FillEnabled   bool
	FillColor     Color
	StrokeEnabled bool
	StrokeColor   Color
	StrokeWeight  int
	AngleMode     AngleMode
}

// DefaultDrawState returns the state a new canvas starts with: white fill,
// black stroke of weight 1, angles in radians.
func DefaultDrawState() DrawState {
	return DrawState{
		FillEnabled:   true,
		FillColor:     White,
		StrokeEnabled: true,
		StrokeColor:   Black,
		StrokeWeight:  1,
		AngleMode:     Radians,
	}
}

// radians converts an angle given in the current angle mode.
func (s DrawState) radians(angle float64) float64 {
	if s.AngleMode == Degrees {
		return angle * math.Pi / 180
	}
	return angle
}
