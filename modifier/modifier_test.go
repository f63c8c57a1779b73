package modifier_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sasc/gctrain/diff"
	"github.com/sasc/gctrain/modifier"
	"github.com/sasc/gctrain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cycle = 16 * time.Millisecond

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{
		modifier.NameLeftRightDI,
		modifier.NameMashAirdodge,
		modifier.NameMashJump,
		modifier.NamePassthrough,
		modifier.NamePlayer,
		modifier.NameRandomDI,
		modifier.NameRecorder,
	}, modifier.Names())

	store, err := diff.NewStore(4)
	require.NoError(t, err)
	deps := modifier.Deps{Store: store, Rand: rand.New(rand.NewPCG(1, 1))}
	for _, name := range modifier.Names() {
		f, err := modifier.Lookup(name)
		require.NoError(t, err, name)
		m := f(deps)
		assert.Equal(t, name, fmt.Sprint(m))
	}

	f, err := modifier.Lookup("Mash-Jump")
	require.NoError(t, err)
	assert.IsType(t, &modifier.MashJump{}, f(deps))

	_, err = modifier.Lookup("wavedash")
	assert.ErrorIs(t, err, modifier.ErrUnknownModifier)
}

func TestPassThrough(t *testing.T) {
	r := report.Neutral()
	r.A, r.XAxis = true, 40
	want := r
	modifier.PassThrough.ModifyInput(&r, cycle)
	modifier.PassThrough.CleanUp()
	assert.Equal(t, want, r)
}

func TestLeftRightDI(t *testing.T) {
	m := &modifier.LeftRightDI{Period: 3 * cycle}
	var xs []uint8
	for i := 0; i < 7; i++ {
		r := report.Neutral()
		r.YAxis = 10
		m.ModifyInput(&r, cycle)
		xs = append(xs, r.XAxis)
		assert.Equal(t, report.AxisCenter, r.YAxis)
	}
	assert.Equal(t, []uint8{0, 0, 255, 255, 255, 0, 0}, xs)

	m.CleanUp()
	r := report.Neutral()
	m.ModifyInput(&r, cycle)
	assert.Equal(t, uint8(0), r.XAxis, "clean up restarts on the left")
}

func TestRandomDI(t *testing.T) {
	m := modifier.NewRandomDI(2*cycle, rand.New(rand.NewPCG(7, 7)))

	var points [][2]uint8
	for i := 0; i < 6; i++ {
		r := report.Neutral()
		m.ModifyInput(&r, cycle)
		points = append(points, [2]uint8{r.XAxis, r.YAxis})

		dx := float64(int(r.XAxis) - int(report.AxisCenter))
		dy := float64(int(r.YAxis) - int(report.AxisCenter))
		assert.InDelta(t, 127, math.Hypot(dx, dy), 1.5, "full deflection")
		assert.GreaterOrEqual(t, r.XAxis, uint8(1))
		assert.GreaterOrEqual(t, r.YAxis, uint8(1))
	}
	assert.Equal(t, points[1], points[2], "direction held for one period")
	assert.Equal(t, points[3], points[4], "direction held for one period")

	again := modifier.NewRandomDI(2*cycle, rand.New(rand.NewPCG(7, 7)))
	r := report.Neutral()
	again.ModifyInput(&r, cycle)
	assert.Equal(t, points[0], [2]uint8{r.XAxis, r.YAxis}, "same seed, same direction")
}

func TestMashJump(t *testing.T) {
	m := &modifier.MashJump{}
	var got []bool
	for i := 0; i < 4; i++ {
		r := report.Neutral()
		m.ModifyInput(&r, cycle)
		got = append(got, r.X)
	}
	assert.Equal(t, []bool{true, false, true, false}, got)

	r := report.Neutral()
	m.ModifyInput(&r, cycle)
	m.CleanUp()
	r = report.Neutral()
	m.ModifyInput(&r, cycle)
	assert.True(t, r.X, "clean up restarts with a press")
}

func TestMashAirdodge(t *testing.T) {
	m := &modifier.MashAirdodge{}
	r := report.Neutral()
	m.ModifyInput(&r, cycle)
	assert.True(t, r.R)
	assert.Equal(t, uint8(255), r.RAnalog)

	r.RAnalog = 90
	m.ModifyInput(&r, cycle)
	assert.False(t, r.R)
	assert.Equal(t, uint8(0), r.RAnalog)
}
