// Package modifier implements the training modifiers that transform a
// controller report before it is forwarded to the console.
//
// Exactly one modifier is active at a time. The selector calls ModifyInput
// once per poll cycle while a modifier is active and CleanUp once when it is
// deactivated. Implementations must return within a single poll cycle.
package modifier

import (
	"time"

	"github.com/sasc/gctrain/report"
)

// Modifier transforms the outgoing report of one poll cycle.
type Modifier interface {
	// ModifyInput transforms r in place. elapsed is the time since the
	// previous poll cycle.
	ModifyInput(r *report.Report, elapsed time.Duration)
	// CleanUp discards session state when the modifier is deactivated.
	CleanUp()
}

// Finisher is implemented by modifiers that end on their own. Once Finished
// reports true the selector returns to pass-through.
type Finisher interface {
	Finished() bool
}

// NoModifier forwards the report unchanged.
type NoModifier struct{}

func (NoModifier) ModifyInput(*report.Report, time.Duration) {}
func (NoModifier) CleanUp()                                  {}
func (NoModifier) String() string                            { return NamePassthrough }

// PassThrough is the modifier active when nothing is selected.
var PassThrough Modifier = NoModifier{}

func init() {
	Register(NamePassthrough, func(Deps) Modifier { return NoModifier{} })
}
