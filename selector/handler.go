// Package selector picks the active training modifier from directional-pad
// taps.
//
// Each direction owns a short list of modifiers. Releasing a direction
// activates the first modifier in its list; releasing it again advances to
// the next one. Releasing past the end of the list returns to pass-through.
// Selecting a different direction always starts at the beginning of that
// direction's list. The directional pad itself is never forwarded to the console.
package selector

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sasc/gctrain/modifier"
	"github.com/sasc/gctrain/report"
)

// Handler is the selection state machine. It is not safe for concurrent use;
// it is driven from the single poll loop.
type Handler struct {
	slots  Slots
	logger *slog.Logger

	pressed   [numDirections]bool
	direction Direction
	index     int
	active    modifier.Modifier
}

// New returns a handler in its initial state: no direction, pass-through.
func New(slots Slots, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		slots:  slots,
		logger: logger,
		active: modifier.PassThrough,
	}
}

// Process runs one poll cycle on the working report r: selection is updated
// from the directional pad, the pad is cleared, and the active modifier
// transforms r.
func (h *Handler) Process(r *report.Report, elapsed time.Duration) {
	h.updateCurrentState(*r)
	r.ClearDPad()
	h.active.ModifyInput(r, elapsed)

	if f, ok := h.active.(modifier.Finisher); ok && f.Finished() {
		h.logger.Debug("modifier finished", "modifier", h.ActiveName())
		h.reset()
	}
}

func (h *Handler) updateCurrentState(r report.Report) {
	for _, d := range Directions {
		if h.released(d, d.pressedIn(r)) {
			h.advance(d)
		}
	}
}

// released tracks the button state of d and reports a release edge.
func (h *Handler) released(d Direction, pressed bool) bool {
	was := h.pressed[d]
	h.pressed[d] = pressed
	return was && !pressed
}

func (h *Handler) advance(d Direction) {
	if d != h.direction {
		h.direction = d
		h.index = 0
	} else {
		h.index++
	}

	m, ok := h.slots.At(d, h.index)
	if !ok {
		h.reset()
		return
	}
	h.activate(m)
}

func (h *Handler) reset() {
	h.direction = None
	h.index = 0
	h.activate(modifier.PassThrough)
}

func (h *Handler) activate(m modifier.Modifier) {
	if m == h.active {
		return
	}
	prev := h.active
	prev.CleanUp()
	h.active = m
	h.logger.Debug("active modifier changed",
		"from", fmt.Sprint(prev),
		"to", fmt.Sprint(m),
		"direction", h.direction,
		"index", h.index)
}

// Active returns the modifier applied on the next cycle.
func (h *Handler) Active() modifier.Modifier { return h.active }

// ActiveName is the display name of the active modifier.
func (h *Handler) ActiveName() string { return fmt.Sprint(h.active) }

// Direction returns the direction whose list is being cycled.
func (h *Handler) Direction() Direction { return h.direction }

// Index returns the position within the current direction's list.
func (h *Handler) Index() int { return h.index }
