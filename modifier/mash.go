package modifier

import (
	"time"

	"github.com/sasc/gctrain/report"
)

// MashJump presses X on one cycle and releases it on the next.
type MashJump struct {
	pressed bool
}

func (m *MashJump) ModifyInput(r *report.Report, _ time.Duration) {
	m.pressed = !m.pressed
	r.X = m.pressed
}

func (m *MashJump) CleanUp()       { m.pressed = false }
func (m *MashJump) String() string { return NameMashJump }

// MashAirdodge fully presses R on one cycle and releases it on the next.
type MashAirdodge struct {
	pressed bool
}

func (m *MashAirdodge) ModifyInput(r *report.Report, _ time.Duration) {
	m.pressed = !m.pressed
	r.R = m.pressed
	if m.pressed {
		r.RAnalog = 255
	} else {
		r.RAnalog = report.TriggerEmpty
	}
}

func (m *MashAirdodge) CleanUp()       { m.pressed = false }
func (m *MashAirdodge) String() string { return NameMashAirdodge }

func init() {
	Register(NameMashJump, func(Deps) Modifier { return &MashJump{} })
	Register(NameMashAirdodge, func(Deps) Modifier { return &MashAirdodge{} })
}
