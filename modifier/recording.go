package modifier

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sasc/gctrain/diff"
	"github.com/sasc/gctrain/report"
)

// DefaultStoreCapacity holds ten seconds of input at 60 polls per second.
const DefaultStoreCapacity = 600

// Recorder captures how the live input changes from one cycle to the next.
// Input passes through unchanged while recording.
//
// A session starts on the first cycle after construction or CleanUp and
// overwrites whatever the store held before.
type Recorder struct {
	store     *diff.Store
	tolerance int16
	logger    *slog.Logger

	recording bool
	full      bool
	session   uuid.UUID
	prior     report.Report
}

// NewRecorder records into store, ignoring analog changes up to tolerance.
func NewRecorder(store *diff.Store, tolerance int16, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{store: store, tolerance: tolerance, logger: logger}
}

func (m *Recorder) ModifyInput(r *report.Report, elapsed time.Duration) {
	if !m.recording {
		m.store.Reset()
		m.recording = true
		m.full = false
		m.session = uuid.New()
		m.prior = *r
		m.logger.Info("recording started", "session", m.session, "capacity", m.store.Cap())
		return
	}

	fr := diff.CaptureWithTolerance(m.tolerance, m.prior, *r, elapsed)
	m.prior = *r
	if m.full {
		return
	}
	if !m.store.Append(fr) {
		m.full = true
		m.logger.Info("recording store full", "session", m.session, "frames", m.store.Len())
	}
}

func (m *Recorder) CleanUp() {
	if !m.recording {
		return
	}
	m.logger.Info("recording stopped", "session", m.session, "frames", m.store.Len(), "duration", m.store.Duration())
	m.recording = false
}

// Recording reports whether a session is in progress.
func (m *Recorder) Recording() bool { return m.recording }

// Session returns the id of the current or most recent session.
func (m *Recorder) Session() uuid.UUID { return m.session }

func (m *Recorder) String() string { return NameRecorder }

// Player re-applies a recording to the live input. Each frame is applied once,
// on the cycle where the accumulated elapsed time reaches the time the frame
// was recorded at. The player finishes after its last frame.
type Player struct {
	store  *diff.Store
	logger *slog.Logger

	playing bool
	pos     int
	pending time.Duration
}

// NewPlayer plays back frames from store. The player never modifies store.
func NewPlayer(store *diff.Store, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{store: store, logger: logger}
}

func (m *Player) ModifyInput(r *report.Report, elapsed time.Duration) {
	if !m.playing {
		m.playing = true
		m.logger.Info("playback started", "frames", m.store.Len(), "duration", m.store.Duration())
	}
	m.pending += elapsed
	for {
		fr, ok := m.store.At(m.pos)
		if !ok || m.pending < fr.Elapsed {
			break
		}
		m.pending -= fr.Elapsed
		fr.ApplyTo(r)
		m.pos++
	}
}

// Finished reports whether every stored frame has been applied.
func (m *Player) Finished() bool {
	return m.pos >= m.store.Len()
}

// Position returns the number of frames applied and the number stored.
func (m *Player) Position() (int, int) {
	return m.pos, m.store.Len()
}

func (m *Player) CleanUp() {
	if m.playing {
		m.logger.Info("playback stopped", "applied", m.pos, "frames", m.store.Len())
	}
	m.playing = false
	m.pos = 0
	m.pending = 0
}

func (m *Player) String() string { return NamePlayer }

func init() {
	Register(NameRecorder, func(d Deps) Modifier {
		return NewRecorder(d.Store, d.DriftTolerance, d.logger())
	})
	Register(NamePlayer, func(d Deps) Modifier {
		return NewPlayer(d.Store, d.logger())
	})
}
