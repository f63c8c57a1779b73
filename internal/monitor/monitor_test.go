package monitor

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sasc/gctrain/internal/pipeline"
	"github.com/sasc/gctrain/report"
	"github.com/sasc/gctrain/selector"
	"github.com/stretchr/testify/assert"
)

func TestViewWaitsForFirstCycle(t *testing.T) {
	m := model{latest: &snapshot{}}
	next, _ := m.Update(tickMsg(time.Now()))
	assert.Contains(t, next.View(), "waiting for controller")
}

func TestViewShowsLatestStatus(t *testing.T) {
	latest := &snapshot{}
	in := report.Neutral()
	in.DUp = true
	in.A = true
	out := in
	out.ClearDPad()
	latest.store(pipeline.Status{
		Cycle:     42,
		Active:    "recorder",
		Direction: selector.Up,
		Index:     0,
		In:        in,
		Out:       out,
		Elapsed:   16 * time.Millisecond,
	})

	var m tea.Model = model{latest: latest}
	m, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd, "keeps ticking")

	view := m.View()
	assert.Contains(t, view, "modifier  recorder (up #1)")
	assert.Contains(t, view, "cycle     42 (16ms)")
	assert.Contains(t, view, "in        main 128,128  c 128,128  l   0  r   0  [A ↑]")
	assert.Contains(t, view, "out       main 128,128  c 128,128  l   0  r   0  [A]")
}

func TestQuitKeyStopsPipeline(t *testing.T) {
	stopped := false
	m := model{latest: &snapshot{}, stop: func() { stopped = true }}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, stopped)
	assert.NotNil(t, cmd)
}

func TestDoneShowsError(t *testing.T) {
	m := model{latest: &snapshot{}}
	next, cmd := m.Update(doneMsg{err: errors.New("controller unplugged")})
	assert.NotNil(t, cmd)
	assert.Contains(t, next.View(), "stopped: controller unplugged")
}

func TestObserveDoesNotBlock(t *testing.T) {
	mon := New(nil)
	for i := 0; i < 1000; i++ {
		mon.Observe(pipeline.Status{Cycle: uint64(i)})
	}
	st, ok := mon.latest.load()
	assert.True(t, ok)
	assert.Equal(t, uint64(999), st.Cycle)
}
