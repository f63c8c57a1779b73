package report

// Field identifies one input tracked by the diff engine.
type Field uint8

// Fields in diff order. Start and the directional pad are not tracked.
const (
	FieldA Field = iota
	FieldB
	FieldX
	FieldY
	FieldZ
	FieldL
	FieldLAnalog
	FieldR
	FieldRAnalog
	FieldXAxis
	FieldYAxis
	FieldCXAxis
	FieldCYAxis

	NumFields = 13
)

var fieldNames = [NumFields]string{
	"a", "b", "x", "y", "z", "l", "l-analog", "r", "r-analog",
	"x-axis", "y-axis", "cx-axis", "cy-axis",
}

// Fields returns every tracked field in diff order.
func Fields() [NumFields]Field {
	var fs [NumFields]Field
	for i := range fs {
		fs[i] = Field(i)
	}
	return fs
}

// Analog reports whether f is an 8-bit analog magnitude rather than a button.
func (f Field) Analog() bool {
	switch f {
	case FieldLAnalog, FieldRAnalog, FieldXAxis, FieldYAxis, FieldCXAxis, FieldCYAxis:
		return true
	}
	return false
}

// Valid reports whether f names a tracked field.
func (f Field) Valid() bool {
	return int(f) < NumFields
}

func (f Field) String() string {
	if !f.Valid() {
		return "invalid"
	}
	return fieldNames[f]
}
