//go:build linux

package serial

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenRejectsBaudRate(t *testing.T) {
	_, err := Open("/dev/null", 1234)
	assert.ErrorIs(t, err, ErrBaudRate)
}

func TestOpenMissingDevice(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "ttyACM9"), DefaultBaud)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsDevice(t *testing.T) {
	assert.True(t, IsDevice("/dev/null"))

	file := filepath.Join(t.TempDir(), "plain")
	assert.NoError(t, os.WriteFile(file, nil, 0o644))
	assert.False(t, IsDevice(file))
	assert.False(t, IsDevice(filepath.Join(t.TempDir(), "missing")))
}
