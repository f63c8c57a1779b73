package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sasc/gctrain/internal/log"
	"github.com/sasc/gctrain/internal/serial"
	"github.com/sasc/gctrain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunValidate(t *testing.T) {
	assert.NoError(t, (&Run{Input: "-", Output: "-"}).Validate())
	assert.Error(t, (&Run{Input: "-", Output: "out.bin", Monitor: true}).Validate())
	assert.NoError(t, (&Run{Input: "in.bin", Output: "out.bin", Monitor: true}).Validate())
}

func TestRunFileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bin")
	out := filepath.Join(dir, "out.bin")

	pressed := report.Neutral()
	pressed.B = true
	pressed.DDown = true
	var wire []byte
	for _, r := range []report.Report{report.Neutral(), pressed} {
		var err error
		wire, err = r.AppendBinary(wire)
		require.NoError(t, err)
	}
	require.NoError(t, os.WriteFile(in, wire, 0o644))

	c := &Run{Input: in, Output: out, Baud: serial.DefaultBaud}
	require.NoError(t, c.Run(discardLogger(), log.NewRaw(nil), defaultTraining()))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Len(t, got, 2*report.Size)

	var second report.Report
	require.NoError(t, second.UnmarshalBinary(got[report.Size:]))
	assert.True(t, second.B)
	assert.False(t, second.DDown)
}

func TestRunMissingInput(t *testing.T) {
	c := &Run{Input: filepath.Join(t.TempDir(), "missing.bin"), Output: "-"}
	err := c.Run(discardLogger(), log.NewRaw(nil), defaultTraining())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
