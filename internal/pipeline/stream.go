package pipeline

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sasc/gctrain/internal/log"
	"github.com/sasc/gctrain/report"
)

// StreamSource reads fixed-size wire reports from r.
type StreamSource struct {
	r   io.Reader
	raw log.RawLogger
	buf [report.Size]byte
}

// NewStreamSource wraps r. raw may be nil.
func NewStreamSource(r io.Reader, raw log.RawLogger) *StreamSource {
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &StreamSource{r: r, raw: raw}
}

func (s *StreamSource) ReadReport() (report.Report, error) {
	var rep report.Report
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return rep, fmt.Errorf("truncated report: %w", err)
		}
		return rep, err
	}
	s.raw.Log("in", s.buf[:])
	if err := rep.UnmarshalBinary(s.buf[:]); err != nil {
		return rep, err
	}
	return rep, nil
}

// StreamSink writes fixed-size wire reports to w.
type StreamSink struct {
	w   io.Writer
	raw log.RawLogger
	buf []byte
}

// NewStreamSink wraps w. raw may be nil.
func NewStreamSink(w io.Writer, raw log.RawLogger) *StreamSink {
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &StreamSink{w: w, raw: raw, buf: make([]byte, 0, report.Size)}
}

func (s *StreamSink) WriteReport(rep report.Report) error {
	b, err := rep.AppendBinary(s.buf[:0])
	if err != nil {
		return err
	}
	s.raw.Log("out", b)
	_, err = s.w.Write(b)
	return err
}

// WallClock measures elapsed time with the runtime's monotonic clock.
type WallClock struct {
	last time.Time
}

// NewWallClock starts measuring from now.
func NewWallClock() *WallClock {
	return &WallClock{last: time.Now()}
}

func (c *WallClock) Elapsed() time.Duration {
	now := time.Now()
	d := now.Sub(c.last)
	c.last = now
	return d
}

// FixedClock reports the same interval on every call, as a fixed-rate poll
// loop would.
type FixedClock time.Duration

func (c FixedClock) Elapsed() time.Duration { return time.Duration(c) }
