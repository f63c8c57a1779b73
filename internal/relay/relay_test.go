package relay_test

import (
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/sasc/gctrain/diff"
	"github.com/sasc/gctrain/internal/layout"
	"github.com/sasc/gctrain/internal/relay"
	"github.com/sasc/gctrain/modifier"
	"github.com/sasc/gctrain/report"
	"github.com/sasc/gctrain/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) *selector.Handler {
	t.Helper()
	store, err := diff.NewStore(16)
	require.NoError(t, err)
	slots, err := layout.Default().Build(modifier.Deps{Store: store})
	require.NoError(t, err)
	return selector.New(slots, nil)
}

// startRelay serves in the background. The returned stop waits for every
// session to end.
func startRelay(t *testing.T, upstream string, h *selector.Handler) (*relay.Server, func()) {
	t.Helper()
	srv := relay.New("127.0.0.1:0", upstream, time.Second, h, nil, nil)
	require.NoError(t, srv.Listen())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe() }()
	var once sync.Once
	stop := func() {
		once.Do(func() {
			assert.NoError(t, srv.Close())
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(2 * time.Second):
				t.Error("relay did not stop")
			}
		})
	}
	t.Cleanup(stop)
	return srv, stop
}

func readReports(t *testing.T, c net.Conn, n int) []report.Report {
	t.Helper()
	require.NoError(t, c.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, n*report.Size)
	_, err := io.ReadFull(c, buf)
	require.NoError(t, err)
	out := make([]report.Report, n)
	for i := range out {
		require.NoError(t, out[i].UnmarshalBinary(buf[i*report.Size:]))
	}
	return out
}

func TestRelayForwardsThroughHandler(t *testing.T) {
	up, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer up.Close()

	h := newHandler(t)
	srv, stop := startRelay(t, up.Addr().String(), h)

	client, err := net.Dial("tcp", srv.Addr().String())
	require.NoError(t, err)
	defer client.Close()

	held := report.Neutral()
	held.A = true
	held.DUp = true
	released := report.Neutral()
	released.A = true

	var wire []byte
	for _, r := range []report.Report{held, released} {
		wire, err = r.AppendBinary(wire)
		require.NoError(t, err)
	}
	_, err = client.Write(wire)
	require.NoError(t, err)

	console, err := up.Accept()
	require.NoError(t, err)
	defer console.Close()

	got := readReports(t, console, 2)
	assert.True(t, got[0].A)
	assert.False(t, got[0].DUp, "dpad is never forwarded")
	assert.True(t, got[1].A)

	// Handler state outlives the session: releasing up selected the recorder.
	stop()
	assert.Equal(t, modifier.NameRecorder, h.ActiveName())
	assert.Equal(t, selector.Up, h.Direction())
}

func TestRelayUpstreamUnavailable(t *testing.T) {
	// Reserve and release a port so nothing listens on it.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	srv, _ := startRelay(t, addr, newHandler(t))
	client, err := net.Dial("tcp", srv.Addr().String())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, err = client.Read(make([]byte, 1))
	assert.ErrorIs(t, err, io.EOF, "controller connection is closed")
}

func TestCloseBeforeServe(t *testing.T) {
	srv := relay.New("127.0.0.1:0", "127.0.0.1:1", time.Second, newHandler(t), nil, nil)
	assert.Nil(t, srv.Addr())
	assert.NoError(t, srv.Close())
}

func TestCloseBeforeListenAndServe(t *testing.T) {
	srv := relay.New("127.0.0.1:0", "127.0.0.1:1", time.Second, newHandler(t), nil, nil)
	require.NoError(t, srv.Close())

	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe() }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("ListenAndServe kept serving after Close")
	}
	assert.Nil(t, srv.Addr(), "nothing was bound")
}

func TestCloseAfterListenBeforeServe(t *testing.T) {
	srv := relay.New("127.0.0.1:0", "127.0.0.1:1", time.Second, newHandler(t), nil, nil)
	require.NoError(t, srv.Listen())
	require.NoError(t, srv.Close())

	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe() }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("ListenAndServe kept serving after Close")
	}
}
