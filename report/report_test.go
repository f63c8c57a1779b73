package report_test

import (
	"io"
	"testing"

	"github.com/sasc/gctrain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireEncoding(t *testing.T) {
	type testCase struct {
		name     string
		report   report.Report
		expected []byte
	}

	neutral := report.Neutral()
	withAB := report.Neutral()
	withAB.A, withAB.B = true, true
	withDPad := report.Neutral()
	withDPad.DUp, withDPad.DLeft = true, true
	shoulders := report.Neutral()
	shoulders.L, shoulders.R, shoulders.Z = true, true, true
	shoulders.LAnalog, shoulders.RAnalog = 0x40, 0xff
	sticks := report.Report{XAxis: 0x00, YAxis: 0xff, CXAxis: 0x12, CYAxis: 0x34, Start: true}

	cases := []testCase{
		{
			name:     "neutral",
			report:   neutral,
			expected: []byte{0x00, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00, 0x00},
		},
		{
			name:     "a+b",
			report:   withAB,
			expected: []byte{0x03, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00, 0x00},
		},
		{
			name:     "dpad up+left",
			report:   withDPad,
			expected: []byte{0x00, 0x89, 0x80, 0x80, 0x80, 0x80, 0x00, 0x00},
		},
		{
			name:     "shoulders",
			report:   shoulders,
			expected: []byte{0x00, 0xf0, 0x80, 0x80, 0x80, 0x80, 0x40, 0xff},
		},
		{
			name:     "sticks and start",
			report:   sticks,
			expected: []byte{0x10, 0x80, 0x00, 0xff, 0x12, 0x34, 0x00, 0x00},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.report.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)

			var decoded report.Report
			require.NoError(t, decoded.UnmarshalBinary(got))
			assert.Equal(t, tc.report, decoded)
		})
	}
}

func TestUnmarshalShort(t *testing.T) {
	var r report.Report
	assert.ErrorIs(t, r.UnmarshalBinary([]byte{0x00, 0x80}), io.ErrUnexpectedEOF)
}

func TestAppendBinary(t *testing.T) {
	b, err := report.Neutral().AppendBinary([]byte{0xaa})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0x00, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00, 0x00}, b)
}

func TestGetSet(t *testing.T) {
	r := report.Neutral()
	for _, f := range report.Fields() {
		if f.Analog() {
			r.Set(f, 200)
			assert.Equal(t, uint8(200), r.Get(f), f.String())
			continue
		}
		assert.Equal(t, uint8(0), r.Get(f), f.String())
		r.Set(f, 1)
		assert.Equal(t, uint8(1), r.Get(f), f.String())
		r.Set(f, 2)
		assert.Equal(t, uint8(0), r.Get(f), "%s keeps only the low bit", f)
	}
}

func TestClearDPad(t *testing.T) {
	r := report.Report{DLeft: true, DRight: true, DUp: true, DDown: true, A: true}
	assert.True(t, r.DPadPressed())
	r.ClearDPad()
	assert.False(t, r.DPadPressed())
	assert.True(t, r.A)
}

func TestFieldKinds(t *testing.T) {
	analog := 0
	for _, f := range report.Fields() {
		assert.True(t, f.Valid())
		if f.Analog() {
			analog++
		}
	}
	assert.Equal(t, 6, analog)
	assert.False(t, report.Field(report.NumFields).Valid())
	assert.Equal(t, "x-axis", report.FieldXAxis.String())
}
