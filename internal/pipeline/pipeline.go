// Package pipeline drives the per-cycle loop: read a controller report,
// transform it through the selection handler, and forward it.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sasc/gctrain/internal/log"
	"github.com/sasc/gctrain/report"
	"github.com/sasc/gctrain/selector"
)

// Source supplies one controller report per poll cycle.
type Source interface {
	ReadReport() (report.Report, error)
}

// Sink accepts the transformed report for the console.
type Sink interface {
	WriteReport(report.Report) error
}

// Clock reports the monotonic time elapsed since its previous call.
type Clock interface {
	Elapsed() time.Duration
}

// Status describes one completed cycle.
type Status struct {
	Cycle     uint64
	Active    string
	Direction selector.Direction
	Index     int
	In        report.Report
	Out       report.Report
	Elapsed   time.Duration
}

// Observer is notified after every cycle. It runs on the poll loop and must
// return quickly.
type Observer func(Status)

// Pipeline connects a source and a sink through a handler.
type Pipeline struct {
	source   Source
	sink     Sink
	clock    Clock
	handler  *selector.Handler
	logger   *slog.Logger
	observer Observer

	cycles uint64
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock replaces the wall clock used for elapsed time.
func WithClock(c Clock) Option { return func(p *Pipeline) { p.clock = c } }

// WithObserver registers a per-cycle observer.
func WithObserver(o Observer) Option { return func(p *Pipeline) { p.observer = o } }

// New builds a pipeline. The default clock is the monotonic wall clock.
func New(src Source, sink Sink, h *selector.Handler, logger *slog.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pipeline{
		source:  src,
		sink:    sink,
		handler: h,
		logger:  logger,
		clock:   NewWallClock(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Step runs a single cycle.
func (p *Pipeline) Step() error {
	in, err := p.source.ReadReport()
	if err != nil {
		return err
	}
	elapsed := p.clock.Elapsed()

	out := in
	p.handler.Process(&out, elapsed)

	if err := p.sink.WriteReport(out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	p.cycles++

	if p.logger.Enabled(context.Background(), log.LevelTrace) {
		p.logger.Log(context.Background(), log.LevelTrace, "cycle",
			"n", p.cycles, "active", p.handler.ActiveName(), "elapsed", elapsed)
	}
	if p.observer != nil {
		p.observer(Status{
			Cycle:     p.cycles,
			Active:    p.handler.ActiveName(),
			Direction: p.handler.Direction(),
			Index:     p.handler.Index(),
			In:        in,
			Out:       out,
			Elapsed:   elapsed,
		})
	}
	return nil
}

// Run cycles until ctx is done or the source ends. A source returning io.EOF
// is a clean stop.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "active", p.handler.ActiveName())
	defer func() { p.logger.Info("pipeline stopped", "cycles", p.cycles) }()
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		err := p.Step()
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		case ctx.Err() != nil:
			// Closing the streams to cancel surfaces as a read error.
			return nil
		default:
			return fmt.Errorf("cycle %d: %w", p.cycles+1, err)
		}
	}
}

// Cycles returns the number of completed cycles.
func (p *Pipeline) Cycles() uint64 { return p.cycles }
