// Package relay serves the training pipeline over TCP. Each accepted
// controller connection is paired with a fresh connection to the upstream
// console adapter, and reports flow through the shared handler.
package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/sasc/gctrain/internal/log"
	"github.com/sasc/gctrain/internal/pipeline"
	"github.com/sasc/gctrain/selector"
)

// Server accepts controller streams and relays them upstream.
type Server struct {
	addr     string
	upstream string
	timeout  time.Duration
	handler  *selector.Handler
	logger   *slog.Logger
	raw      log.RawLogger

	mu     sync.Mutex
	ln     net.Listener
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup

	// One controller drives the handler at a time.
	session sync.Mutex
}

// New creates a relay. Handler state persists across connections.
func New(addr, upstream string, timeout time.Duration, h *selector.Handler, logger *slog.Logger, raw log.RawLogger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		addr:     addr,
		upstream: upstream,
		timeout:  timeout,
		handler:  h,
		logger:   logger,
		raw:      raw,
	}
}

// Listen binds the listen address. ListenAndServe calls it when needed.
// After Close it binds nothing.
func (s *Server) Listen() error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ln.Close()
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// ListenAndServe accepts connections until Close is called. It returns nil
// at once if Close already ran.
func (s *Server) ListenAndServe() error {
	if s.Addr() == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	ln := s.ln
	s.cancel = cancel
	s.mu.Unlock()

	s.logger.Info("Relay listening", "addr", ln.Addr().String(), "upstream", s.upstream)
	for {
		c, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.logger.Info("Relay stopped")
				s.wg.Wait()
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(ctx, c)
		}()
	}
}

// Close stops accepting and ends active sessions.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	connLogger := s.logger.With("remote", conn.RemoteAddr().String())

	s.session.Lock()
	defer s.session.Unlock()
	if ctx.Err() != nil {
		return
	}

	up, err := net.DialTimeout("tcp", s.upstream, s.timeout)
	if err != nil {
		connLogger.Error("dial upstream", "upstream", s.upstream, "error", err)
		return
	}
	defer up.Close()

	connCtx, connCancel := context.WithCancel(ctx)
	defer connCancel()
	go func() {
		<-connCtx.Done()
		_ = conn.Close()
		_ = up.Close()
	}()

	connLogger.Info("relay session begin", "active", s.handler.ActiveName())
	p := pipeline.New(
		pipeline.NewStreamSource(conn, s.raw),
		pipeline.NewStreamSink(up, s.raw),
		s.handler, connLogger,
	)
	if err := p.Run(connCtx); err != nil && ctx.Err() == nil {
		connLogger.Error("relay session", "error", err)
	}
	connLogger.Info("relay session end", "cycles", p.Cycles())
}
