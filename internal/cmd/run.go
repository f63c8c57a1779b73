package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sasc/gctrain/internal/log"
	"github.com/sasc/gctrain/internal/monitor"
	"github.com/sasc/gctrain/internal/pipeline"
	"github.com/sasc/gctrain/internal/serial"
)

type Run struct {
	Input   string `help:"Controller report source: serial device, file, or - for stdin" default:"-" env:"GCTRAIN_INPUT"`
	Output  string `help:"Console report sink: serial device, file, or - for stdout" default:"-" env:"GCTRAIN_OUTPUT"`
	Baud    int    `help:"Serial baud rate" default:"${baud}" env:"GCTRAIN_BAUD"`
	Monitor bool   `help:"Show a live status view" env:"GCTRAIN_MONITOR"`
}

// Validate is called by Kong after parsing.
func (c *Run) Validate() error {
	if c.Monitor && (c.Input == "-" || c.Output == "-") {
		return errors.New("--monitor needs the terminal; set --input and --output")
	}
	return nil
}

// Run is called by Kong when the run command is executed.
func (c *Run) Run(logger *slog.Logger, rawLogger log.RawLogger, tr Training) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.Monitor {
		// The view owns the terminal.
		logger = slog.New(slog.DiscardHandler)
	}

	h, err := tr.Handler(logger)
	if err != nil {
		return err
	}

	streams, err := c.open()
	if err != nil {
		return err
	}
	defer streams.Close()

	go func() {
		<-ctx.Done()
		// Unblocks a pending read.
		_ = streams.Close()
	}()

	logger.Info("Starting gctrain", "input", c.Input, "output", c.Output, "active", h.ActiveName())

	var opts []pipeline.Option
	var mon *monitor.Monitor
	if c.Monitor {
		mon = monitor.New(stop)
		opts = append(opts, pipeline.WithObserver(mon.Observe))
	}
	p := pipeline.New(
		pipeline.NewStreamSource(streams.in, rawLogger),
		pipeline.NewStreamSink(streams.out, rawLogger),
		h, logger, opts...,
	)

	if mon == nil {
		return p.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		err := p.Run(ctx)
		mon.Done(err)
		errCh <- err
	}()
	if err := mon.Run(); err != nil {
		stop()
		<-errCh
		return fmt.Errorf("monitor: %w", err)
	}
	stop()
	return <-errCh
}

type streams struct {
	in      io.Reader
	out     io.Writer
	closers []io.Closer
	once    sync.Once
	err     error
}

func (s *streams) Close() error {
	s.once.Do(func() {
		var errs []error
		for _, c := range s.closers {
			errs = append(errs, c.Close())
		}
		s.err = errors.Join(errs...)
	})
	return s.err
}

func (c *Run) open() (*streams, error) {
	s := &streams{}

	// One serial adapter usually carries both directions.
	if c.Input == c.Output && serial.IsDevice(c.Input) {
		f, err := serial.Open(c.Input, c.Baud)
		if err != nil {
			return nil, err
		}
		s.in, s.out = f, f
		s.closers = append(s.closers, f)
		return s, nil
	}

	switch {
	case c.Input == "-":
		s.in = os.Stdin
	case serial.IsDevice(c.Input):
		f, err := serial.Open(c.Input, c.Baud)
		if err != nil {
			return nil, err
		}
		s.in = f
		s.closers = append(s.closers, f)
	default:
		f, err := os.Open(c.Input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		s.in = f
		s.closers = append(s.closers, f)
	}

	switch {
	case c.Output == "-":
		s.out = os.Stdout
	case serial.IsDevice(c.Output):
		f, err := serial.Open(c.Output, c.Baud)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.out = f
		s.closers = append(s.closers, f)
	default:
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("open output: %w", err)
		}
		s.out = f
		s.closers = append(s.closers, f)
	}
	return s, nil
}
