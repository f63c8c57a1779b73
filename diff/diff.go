// Package diff captures how one controller report deviates from another and
// re-applies that deviation to later reports.
//
// A Frame holds one signed delta per tracked field plus the time that passed
// since the previous capture. Deltas are int16 so the difference of two 8-bit
// values never overflows; applying them wraps at the width of the target
// field, exactly like adding to the field on the wire.
package diff

import (
	"fmt"
	"strings"
	"time"

	"github.com/sasc/gctrain/report"
)

// DefaultDriftTolerance is the largest analog change treated as stick noise.
const DefaultDriftTolerance int16 = 2

// SingleDiff is the change of one field. A zero Delta means no change.
type SingleDiff struct {
	Field report.Field
	Delta int16
}

// Frame is the change between two consecutive reports.
type Frame struct {
	Diffs   [report.NumFields]SingleDiff
	Elapsed time.Duration
}

// Capture compares current against prior using DefaultDriftTolerance.
func Capture(prior, current report.Report, elapsed time.Duration) Frame {
	return CaptureWithTolerance(DefaultDriftTolerance, prior, current, elapsed)
}

// CaptureWithTolerance compares current against prior. Buttons are recorded
// only when they became pressed; analog fields only when they moved by more
// than tolerance in either direction.
func CaptureWithTolerance(tolerance int16, prior, current report.Report, elapsed time.Duration) Frame {
	fr := Frame{Elapsed: elapsed}
	for _, f := range report.Fields() {
		fr.Diffs[f].Field = f
		delta := int16(current.Get(f)) - int16(prior.Get(f))
		if differs(f, delta, tolerance) {
			fr.Diffs[f].Delta = delta
		}
	}
	return fr
}

func differs(f report.Field, delta, tolerance int16) bool {
	if f.Analog() {
		if delta < 0 {
			delta = -delta
		}
		return delta > tolerance
	}
	return delta > 0
}

// ApplyTo adds every stored delta to target. All deltas are computed from the
// values target held on entry, so the result does not depend on field order.
func (fr Frame) ApplyTo(target *report.Report) {
	base := *target
	for _, d := range fr.Diffs {
		if d.Delta == 0 || !d.Field.Valid() {
			continue
		}
		// uint8 conversion wraps modulo 256; Set truncates buttons to one bit.
		target.Set(d.Field, base.Get(d.Field)+uint8(d.Delta))
	}
}

// Delta returns the stored delta for f.
func (fr Frame) Delta(f report.Field) int16 {
	if !f.Valid() {
		return 0
	}
	return fr.Diffs[f].Delta
}

// Changed reports whether any field carries a nonzero delta.
func (fr Frame) Changed() bool {
	for _, d := range fr.Diffs {
		if d.Delta != 0 {
			return true
		}
	}
	return false
}

func (fr Frame) String() string {
	var sb strings.Builder
	sb.WriteString(fr.Elapsed.String())
	for _, d := range fr.Diffs {
		if d.Delta == 0 {
			continue
		}
		fmt.Fprintf(&sb, " %s=%+d", d.Field, d.Delta)
	}
	return sb.String()
}
