//go:build !linux

package serial

import "os"

// Open is not available on this platform.
func Open(path string, baud int) (*os.File, error) {
	return nil, ErrUnsupported
}

// IsDevice always reports false on this platform.
func IsDevice(path string) bool { return false }
