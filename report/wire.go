package report

import "io"

// Size is the length of a GameCube poll response on the wire.
const Size = 8

// Button bits in byte 0 and byte 1 of the poll response.
const (
	bitA     = 1 << 0
	bitB     = 1 << 1
	bitX     = 1 << 2
	bitY     = 1 << 3
	bitStart = 1 << 4

	bitDLeft  = 1 << 0
	bitDRight = 1 << 1
	bitDDown  = 1 << 2
	bitDUp    = 1 << 3
	bitZ      = 1 << 4
	bitR      = 1 << 5
	bitL      = 1 << 6
	bitHigh1  = 1 << 7
)

// MarshalBinary encodes the report to the 8-byte wire format.
// Layout:
//
//	0: A B X Y Start (bits 0-4)
//	1: DLeft DRight DDown DUp Z R L (bits 0-6), bit 7 always set
//	2: XAxis
//	3: YAxis
//	4: CXAxis
//	5: CYAxis
//	6: LAnalog
//	7: RAnalog
func (r Report) MarshalBinary() ([]byte, error) {
	b := make([]byte, Size)
	r.put(b)
	return b, nil
}

// AppendBinary appends the wire encoding of r to b.
func (r Report) AppendBinary(b []byte) ([]byte, error) {
	n := len(b)
	b = append(b, make([]byte, Size)...)
	r.put(b[n:])
	return b, nil
}

func (r Report) put(b []byte) {
	var b0, b1 byte
	b0 |= flag(r.A, bitA)
	b0 |= flag(r.B, bitB)
	b0 |= flag(r.X, bitX)
	b0 |= flag(r.Y, bitY)
	b0 |= flag(r.Start, bitStart)

	b1 |= flag(r.DLeft, bitDLeft)
	b1 |= flag(r.DRight, bitDRight)
	b1 |= flag(r.DDown, bitDDown)
	b1 |= flag(r.DUp, bitDUp)
	b1 |= flag(r.Z, bitZ)
	b1 |= flag(r.R, bitR)
	b1 |= flag(r.L, bitL)
	b1 |= bitHigh1

	b[0] = b0
	b[1] = b1
	b[2] = r.XAxis
	b[3] = r.YAxis
	b[4] = r.CXAxis
	b[5] = r.CYAxis
	b[6] = r.LAnalog
	b[7] = r.RAnalog
}

// UnmarshalBinary decodes the 8-byte wire format into r.
func (r *Report) UnmarshalBinary(data []byte) error {
	if len(data) < Size {
		return io.ErrUnexpectedEOF
	}
	b0, b1 := data[0], data[1]
	r.A = b0&bitA != 0
	r.B = b0&bitB != 0
	r.X = b0&bitX != 0
	r.Y = b0&bitY != 0
	r.Start = b0&bitStart != 0

	r.DLeft = b1&bitDLeft != 0
	r.DRight = b1&bitDRight != 0
	r.DDown = b1&bitDDown != 0
	r.DUp = b1&bitDUp != 0
	r.Z = b1&bitZ != 0
	r.R = b1&bitR != 0
	r.L = b1&bitL != 0

	r.XAxis = data[2]
	r.YAxis = data[3]
	r.CXAxis = data[4]
	r.CYAxis = data[5]
	r.LAnalog = data[6]
	r.RAnalog = data[7]
	return nil
}

func flag(set bool, mask byte) byte {
	if set {
		return mask
	}
	return 0
}
