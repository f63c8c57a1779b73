package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestConsoleHandlerPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewConsoleHandler(&buf, LevelTrace)).With("session", "abc")
	logger.Log(context.Background(), LevelTrace, "cycle", "active", "recorder")

	out := buf.String()
	assert.NotContains(t, out, "\033[")
	assert.Contains(t, out, "TRACE cycle session=abc active=recorder\n")
}

func TestConsoleHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewConsoleHandler(&buf, slog.LevelInfo))
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLevelFilterSplitsStreams(t *testing.T) {
	var out, errs bytes.Buffer
	logger := slog.New(MultiHandler{hs: []slog.Handler{
		LevelFilter{pass: func(l slog.Level) bool { return l < slog.LevelError }, h: NewConsoleHandler(&out, slog.LevelDebug)},
		LevelFilter{pass: func(l slog.Level) bool { return l >= slog.LevelError }, h: NewConsoleHandler(&errs, slog.LevelError)},
	}})
	logger.Info("normal")
	logger.Error("broken")

	assert.Contains(t, out.String(), "normal")
	assert.NotContains(t, out.String(), "broken")
	assert.Contains(t, errs.String(), "broken")
	assert.NotContains(t, errs.String(), "normal")
}

func TestRawLogger(t *testing.T) {
	var buf bytes.Buffer
	NewRaw(&buf).Log("in", []byte{0x00, 0x80, 0xff})
	assert.Equal(t, "in 0080ff\n", buf.String())

	NewRaw(nil).Log("in", []byte{0x01})
}
