package selector

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/sasc/gctrain/modifier"
)

// Slot capacity per direction. Up and Down hold single-purpose modifiers.
const (
	LeftSlots  = 2
	UpSlots    = 1
	RightSlots = 2
	DownSlots  = 1
)

var (
	// ErrSlotCapacity is returned when a direction is given more modifiers
	// than it can hold.
	ErrSlotCapacity = errors.New("too many modifiers for direction")
	// ErrInvalidModifier is returned for nil or non-comparable modifiers.
	ErrInvalidModifier = errors.New("invalid modifier")
)

// Capacity returns how many modifiers can be bound to d.
func Capacity(d Direction) int {
	switch d {
	case Left:
		return LeftSlots
	case Up:
		return UpSlots
	case Right:
		return RightSlots
	case Down:
		return DownSlots
	}
	return 0
}

// Slots binds an ordered list of modifiers to each direction.
type Slots struct {
	lists [numDirections][]modifier.Modifier
}

// NewSlots validates and binds the per-direction lists. Lists may be shorter
// than their capacity, or empty.
func NewSlots(left, up, right, down []modifier.Modifier) (Slots, error) {
	var s Slots
	for _, b := range []struct {
		d    Direction
		mods []modifier.Modifier
	}{{Left, left}, {Up, up}, {Right, right}, {Down, down}} {
		if err := s.bind(b.d, b.mods); err != nil {
			return Slots{}, err
		}
	}
	return s, nil
}

func (s *Slots) bind(d Direction, mods []modifier.Modifier) error {
	if len(mods) > Capacity(d) {
		return fmt.Errorf("%w: %s holds %d, got %d", ErrSlotCapacity, d, Capacity(d), len(mods))
	}
	for i, m := range mods {
		// The handler compares modifiers to detect deactivation.
		if m == nil || !reflect.TypeOf(m).Comparable() {
			return fmt.Errorf("%w: %s slot %d", ErrInvalidModifier, d, i)
		}
	}
	s.lists[d] = append([]modifier.Modifier(nil), mods...)
	return nil
}

// At returns the modifier at index i of d's list.
func (s Slots) At(d Direction, i int) (modifier.Modifier, bool) {
	if !d.valid() || i < 0 || i >= len(s.lists[d]) {
		return nil, false
	}
	return s.lists[d][i], true
}

// Len returns the number of modifiers bound to d.
func (s Slots) Len(d Direction) int {
	if !d.valid() {
		return 0
	}
	return len(s.lists[d])
}
