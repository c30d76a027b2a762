package ipc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bft-labs/ffblink/internal/domain"
	"github.com/bft-labs/ffblink/pkg/transport"
)

// shortDir keeps socket paths under the sun_path limit.
func shortDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "ffb")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

type frameLog struct {
	mu     sync.Mutex
	frames []domain.Frame
}

func (l *frameLog) add(f domain.Frame) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.frames = append(l.frames, f)
}

func (l *frameLog) waitFor(t *testing.T, n int) []domain.Frame {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		l.mu.Lock()
		if len(l.frames) >= n {
			out := append([]domain.Frame(nil), l.frames...)
			l.mu.Unlock()
			return out
		}
		l.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d frames", n)
	return nil
}

func TestSocketPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	tests := []struct {
		name string
		want string
	}{
		{"application/ffb", "/run/user/1000/ffb-application-ffb.sock"},
		{"/extensions/ffb/provider", "/run/user/1000/ffb-extensions-ffb-provider.sock"},
		{"glove v2", "/run/user/1000/ffb-glove-v2.sock"},
		{"///", "/run/user/1000/ffb-default.sock"},
	}
	for _, tt := range tests {
		if got := SocketPath(tt.name); got != tt.want {
			t.Errorf("SocketPath(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDialer_Unavailable(t *testing.T) {
	d := &Dialer{}
	_, err := d.Dial(context.Background(), filepath.Join(shortDir(t), "missing.sock"))
	if !errors.Is(err, domain.ErrEndpointUnavailable) {
		t.Errorf("Dial() error = %v, want ErrEndpointUnavailable", err)
	}
}

func TestChannel_OverSocket(t *testing.T) {
	path := filepath.Join(shortDir(t), "p.sock")
	ln, err := Listen(path, nil)
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	got := &frameLog{}
	served := make(chan error, 1)
	go func() { served <- ln.Serve(ctx, got.add) }()

	ch := transport.NewChannel(&Dialer{})
	if err := ch.Open(context.Background(), path); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	prime := domain.NewFrame(domain.RightHand, domain.UniformCurls(1000))
	relax := domain.RelaxFrame(domain.RightHand)
	for _, f := range []domain.Frame{prime, relax} {
		if err := ch.Send(f); err != nil {
			t.Fatalf("Send() error = %v", err)
		}
	}

	frames := got.waitFor(t, 2)
	if frames[0] != prime || frames[1] != relax {
		t.Errorf("frames = %+v", frames)
	}

	if err := ch.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	cancel()
	if err := <-served; err != nil {
		t.Errorf("Serve() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("socket file still present after shutdown: %v", err)
	}
}

func TestListen_ReplacesStaleSocket(t *testing.T) {
	path := filepath.Join(shortDir(t), "p.sock")
	first, err := Listen(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Simulate a crashed provider: the socket file outlives its listener.
	first.ln.(interface{ SetUnlinkOnClose(bool) }).SetUnlinkOnClose(false)
	_ = first.Close()

	second, err := Listen(path, nil)
	if err != nil {
		t.Fatalf("Listen() over stale socket error = %v", err)
	}
	_ = second.Close()
	if err := second.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
