package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sasc/gctrain/internal/log"
	"github.com/sasc/gctrain/internal/relay"
)

type Proxy struct {
	ListenAddr        string        `help:"Listen address for the controller report stream" default:":3250" env:"GCTRAIN_PROXY_ADDR"`
	UpstreamAddr      string        `help:"Console-side report sink address" required:"" env:"GCTRAIN_PROXY_UPSTREAM"`
	ConnectionTimeout time.Duration `help:"Upstream dial timeout" default:"30s" env:"GCTRAIN_PROXY_TIMEOUT"`
}

// Run is called by Kong when the proxy command is executed.
func (p *Proxy) Run(logger *slog.Logger, rawLogger log.RawLogger, tr Training) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, err := tr.Handler(logger)
	if err != nil {
		return err
	}

	logger.Info("Starting gctrain proxy", "listen", p.ListenAddr, "upstream", p.UpstreamAddr)
	srv := relay.New(p.ListenAddr, p.UpstreamAddr, p.ConnectionTimeout, h, logger, rawLogger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down proxy")
		_ = srv.Close()
		<-errCh
		return nil
	case err := <-errCh:
		return err
	}
}
