package diff

import (
	"errors"
	"fmt"
	"time"
)

// ErrCapacity is returned when a store is created without room for a frame.
var ErrCapacity = errors.New("diff: store capacity must be at least 1")

// Store is a bounded, ordered sequence of frames. The backing array is
// allocated once and reused across recording sessions.
type Store struct {
	frames []Frame
}

// NewStore allocates a store holding at most capacity frames.
func NewStore(capacity int) (*Store, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrCapacity, capacity)
	}
	return &Store{frames: make([]Frame, 0, capacity)}, nil
}

// Append adds fr to the end of the store. It returns false and drops the
// frame when the store is full.
func (s *Store) Append(fr Frame) bool {
	if s.Full() {
		return false
	}
	s.frames = append(s.frames, fr)
	return true
}

// At returns the i-th frame. ok is false when i is out of range.
func (s *Store) At(i int) (fr Frame, ok bool) {
	if i < 0 || i >= len(s.frames) {
		return Frame{}, false
	}
	return s.frames[i], true
}

func (s *Store) Len() int   { return len(s.frames) }
func (s *Store) Cap() int   { return cap(s.frames) }
func (s *Store) Full() bool { return len(s.frames) == cap(s.frames) }

// Duration is the sum of the elapsed time of every stored frame.
func (s *Store) Duration() time.Duration {
	var d time.Duration
	for _, fr := range s.frames {
		d += fr.Elapsed
	}
	return d
}

// Reset empties the store without releasing its memory.
func (s *Store) Reset() {
	s.frames = s.frames[:0]
}
