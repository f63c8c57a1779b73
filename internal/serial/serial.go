// Package serial opens the USB serial link to the controller adapter.
package serial

import "errors"

var (
	// ErrBaudRate is returned for rates the port cannot be configured to.
	ErrBaudRate = errors.New("unsupported baud rate")
	// ErrUnsupported is returned on platforms without serial support.
	ErrUnsupported = errors.New("serial ports are not supported on this platform")
)

// DefaultBaud matches the adapter firmware.
const DefaultBaud = 115200
