package log

import (
	"encoding/hex"
	"fmt"
	"io"
	"sync"
)

// RawLogger dumps raw report bytes. A RawLogger built with a nil writer
// discards everything.
type RawLogger interface {
	Log(dir string, data []byte)
}

type rawLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewRaw returns a RawLogger writing one hex line per report to w.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

func (l *rawLogger) Log(dir string, data []byte) {
	if l.w == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.w, "%s %s\n", dir, hex.EncodeToString(data))
}
