// Package monitor renders a live terminal view of the poll loop.
//
// The poll loop only stores the latest status; the view samples it on a
// timer, so a slow terminal never delays a cycle.
package monitor

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sasc/gctrain/internal/pipeline"
	"github.com/sasc/gctrain/report"
	"github.com/sasc/gctrain/selector"
)

// RefreshInterval is how often the view samples the latest status.
const RefreshInterval = 100 * time.Millisecond

type snapshot struct {
	mu     sync.Mutex
	status pipeline.Status
	seen   bool
}

func (s *snapshot) store(st pipeline.Status) {
	s.mu.Lock()
	s.status = st
	s.seen = true
	s.mu.Unlock()
}

func (s *snapshot) load() (pipeline.Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.seen
}

type tickMsg time.Time

type doneMsg struct{ err error }

func tick() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	latest *snapshot
	stop   func()

	status pipeline.Status
	seen   bool
	done   bool
	err    error
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.status, m.seen = m.latest.load()
		return m, tick()
	case doneMsg:
		m.status, m.seen = m.latest.load()
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.stop != nil {
				m.stop()
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString("gctrain\n\n")
	if !m.seen {
		sb.WriteString("  waiting for controller...\n")
	} else {
		st := m.status
		slot := ""
		if st.Direction != selector.None {
			slot = fmt.Sprintf(" (%s #%d)", st.Direction, st.Index+1)
		}
		fmt.Fprintf(&sb, "  modifier  %s%s\n", st.Active, slot)
		fmt.Fprintf(&sb, "  cycle     %d (%s)\n", st.Cycle, st.Elapsed)
		fmt.Fprintf(&sb, "  in        %s\n", describe(st.In))
		fmt.Fprintf(&sb, "  out       %s\n", describe(st.Out))
	}
	if m.done {
		if m.err != nil {
			fmt.Fprintf(&sb, "\n  stopped: %v\n", m.err)
		} else {
			sb.WriteString("\n  stopped\n")
		}
		return sb.String()
	}
	sb.WriteString("\n  q to quit\n")
	return sb.String()
}

func describe(r report.Report) string {
	var pressed []string
	for _, b := range []struct {
		name string
		on   bool
	}{
		{"A", r.A}, {"B", r.B}, {"X", r.X}, {"Y", r.Y}, {"Z", r.Z},
		{"L", r.L}, {"R", r.R}, {"Start", r.Start},
		{"←", r.DLeft}, {"↑", r.DUp}, {"→", r.DRight}, {"↓", r.DDown},
	} {
		if b.on {
			pressed = append(pressed, b.name)
		}
	}
	buttons := "-"
	if len(pressed) > 0 {
		buttons = strings.Join(pressed, " ")
	}
	return fmt.Sprintf("main %3d,%3d  c %3d,%3d  l %3d  r %3d  [%s]",
		r.XAxis, r.YAxis, r.CXAxis, r.CYAxis, r.LAnalog, r.RAnalog, buttons)
}

// Monitor is a terminal view fed by pipeline status updates.
type Monitor struct {
	latest  *snapshot
	program *tea.Program
}

// New creates a monitor. stop is called when the user quits the view.
func New(stop func(), opts ...tea.ProgramOption) *Monitor {
	latest := &snapshot{}
	return &Monitor{
		latest:  latest,
		program: tea.NewProgram(model{latest: latest, stop: stop}, opts...),
	}
}

// Observe records st for the next refresh. It never blocks on the terminal.
func (m *Monitor) Observe(st pipeline.Status) {
	m.latest.store(st)
}

// Run shows the view until the user quits or Done is called.
func (m *Monitor) Run() error {
	_, err := m.program.Run()
	return err
}

// Done ends the view, showing err if the pipeline failed.
func (m *Monitor) Done(err error) {
	m.program.Send(doneMsg{err: err})
}
