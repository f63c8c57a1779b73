package modifier

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/sasc/gctrain/report"
)

const (
	stickMin uint8 = 0
	stickMax uint8 = 255
	// stickReach is the largest offset from center that stays in range on
	// both sides.
	stickReach = 127
)

// LeftRightDI holds the main stick fully left, then fully right, switching
// every Period.
type LeftRightDI struct {
	Period time.Duration

	elapsed time.Duration
	right   bool
}

func (m *LeftRightDI) ModifyInput(r *report.Report, elapsed time.Duration) {
	m.elapsed += elapsed
	for m.Period > 0 && m.elapsed >= m.Period {
		m.elapsed -= m.Period
		m.right = !m.right
	}
	if m.right {
		r.XAxis = stickMax
	} else {
		r.XAxis = stickMin
	}
	r.YAxis = report.AxisCenter
}

func (m *LeftRightDI) CleanUp() {
	m.elapsed = 0
	m.right = false
}

func (m *LeftRightDI) String() string { return NameLeftRightDI }

// RandomDI holds the main stick at full deflection in a random direction and
// picks a new direction every Period.
type RandomDI struct {
	Period time.Duration

	rng     *rand.Rand
	elapsed time.Duration
	picked  bool
	x, y    uint8
}

// NewRandomDI returns a RandomDI drawing directions from rng.
func NewRandomDI(period time.Duration, rng *rand.Rand) *RandomDI {
	return &RandomDI{Period: period, rng: rng}
}

func (m *RandomDI) ModifyInput(r *report.Report, elapsed time.Duration) {
	m.elapsed += elapsed
	if !m.picked {
		m.pick()
		m.picked = true
	}
	for m.Period > 0 && m.elapsed >= m.Period {
		m.elapsed -= m.Period
		m.pick()
	}
	r.XAxis = m.x
	r.YAxis = m.y
}

func (m *RandomDI) pick() {
	theta := m.rng.Float64() * 2 * math.Pi
	m.x = axis(math.Cos(theta))
	m.y = axis(math.Sin(theta))
}

func axis(unit float64) uint8 {
	return uint8(int(report.AxisCenter) + int(math.Round(unit*stickReach)))
}

func (m *RandomDI) CleanUp() {
	m.elapsed = 0
	m.picked = false
}

func (m *RandomDI) String() string { return NameRandomDI }

func init() {
	Register(NameLeftRightDI, func(d Deps) Modifier {
		return &LeftRightDI{Period: d.period()}
	})
	Register(NameRandomDI, func(d Deps) Modifier {
		rng := d.Rand
		if rng == nil {
			seed := uint64(time.Now().UnixNano())
			rng = rand.New(rand.NewPCG(seed, seed>>32))
		}
		return NewRandomDI(d.period(), rng)
	})
}
