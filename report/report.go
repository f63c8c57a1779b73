// Package report models a single GameCube controller poll response.
//
// A Report is a plain value: the state captured for one poll cycle. Modifiers
// receive a pointer to a working copy and transform it in place before it is
// forwarded to the console.
package report

// Neutral values for a controller at rest.
const (
	AxisCenter   uint8 = 128
	TriggerEmpty uint8 = 0
)

// Report is the state of every controller input for one poll cycle.
type Report struct {
	A, B, X, Y, Z bool
	L, R          bool
	Start         bool

	// Directional pad. Used only to select modifiers, never forwarded.
	DLeft, DRight, DUp, DDown bool

	XAxis, YAxis   uint8
	CXAxis, CYAxis uint8

	LAnalog, RAnalog uint8
}

// Neutral returns a report with both sticks centered and nothing pressed.
func Neutral() Report {
	return Report{
		XAxis:   AxisCenter,
		YAxis:   AxisCenter,
		CXAxis:  AxisCenter,
		CYAxis:  AxisCenter,
		LAnalog: TriggerEmpty,
		RAnalog: TriggerEmpty,
	}
}

// ClearDPad releases all four directional-pad buttons.
func (r *Report) ClearDPad() {
	r.DLeft = false
	r.DRight = false
	r.DUp = false
	r.DDown = false
}

// DPadPressed reports whether any directional-pad button is held.
func (r Report) DPadPressed() bool {
	return r.DLeft || r.DRight || r.DUp || r.DDown
}

// Get returns the value of f. Digital fields read as 0 or 1.
func (r Report) Get(f Field) uint8 {
	switch f {
	case FieldA:
		return bit(r.A)
	case FieldB:
		return bit(r.B)
	case FieldX:
		return bit(r.X)
	case FieldY:
		return bit(r.Y)
	case FieldZ:
		return bit(r.Z)
	case FieldL:
		return bit(r.L)
	case FieldLAnalog:
		return r.LAnalog
	case FieldR:
		return bit(r.R)
	case FieldRAnalog:
		return r.RAnalog
	case FieldXAxis:
		return r.XAxis
	case FieldYAxis:
		return r.YAxis
	case FieldCXAxis:
		return r.CXAxis
	case FieldCYAxis:
		return r.CYAxis
	}
	return 0
}

// Set stores v into f. Digital fields keep only the lowest bit of v, which is
// the storage width of a button on the wire.
func (r *Report) Set(f Field, v uint8) {
	switch f {
	case FieldA:
		r.A = v&1 == 1
	case FieldB:
		r.B = v&1 == 1
	case FieldX:
		r.X = v&1 == 1
	case FieldY:
		r.Y = v&1 == 1
	case FieldZ:
		r.Z = v&1 == 1
	case FieldL:
		r.L = v&1 == 1
	case FieldLAnalog:
		r.LAnalog = v
	case FieldR:
		r.R = v&1 == 1
	case FieldRAnalog:
		r.RAnalog = v
	case FieldXAxis:
		r.XAxis = v
	case FieldYAxis:
		r.YAxis = v
	case FieldCXAxis:
		r.CXAxis = v
	case FieldCYAxis:
		r.CYAxis = v
	}
}

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
