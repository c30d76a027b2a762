package ipc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"

	"github.com/bft-labs/ffblink/internal/domain"
	"github.com/bft-labs/ffblink/pkg/codec"
	"github.com/bft-labs/ffblink/pkg/log"
)

// Handler receives every frame decoded by a Listener.
type Handler func(domain.Frame)

// Listener is the provider side of the socket transport. It accepts client
// connections and decodes the frame stream from each one.
type Listener struct {
	path   string
	ln     net.Listener
	logger log.Logger

	mu    sync.Mutex
	conns map[net.Conn]struct{}
	wg    sync.WaitGroup
	once  sync.Once
}

// Listen binds a socket at path, removing a stale socket file left by a
// previous provider.
func Listen(path string, logger log.Logger) (*Listener, error) {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	if fi, err := os.Lstat(path); err == nil && fi.Mode()&os.ModeSocket != 0 {
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("remove stale socket: %w", err)
		}
	}
	ln, err := net.Listen(Network, path)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", path, err)
	}
	return &Listener{
		path:   path,
		ln:     ln,
		logger: logger,
		conns:  make(map[net.Conn]struct{}),
	}, nil
}

// Path returns the socket path.
func (l *Listener) Path() string {
	return l.path
}

// Serve accepts connections until ctx is cancelled or Close is called,
// passing each decoded frame to h. It returns nil on orderly shutdown.
func (l *Listener) Serve(ctx context.Context, h Handler) error {
	stop := context.AfterFunc(ctx, func() { _ = l.Close() })
	defer stop()

	for {
		conn, err := l.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				l.wg.Wait()
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		l.mu.Lock()
		l.conns[conn] = struct{}{}
		l.mu.Unlock()

		l.wg.Add(1)
		go l.serveConn(conn, h)
	}
}

func (l *Listener) serveConn(conn net.Conn, h Handler) {
	defer l.wg.Done()
	defer func() {
		l.mu.Lock()
		delete(l.conns, conn)
		l.mu.Unlock()
		_ = conn.Close()
	}()

	l.logger.Info("client connected")
	for {
		f, err := codec.ReadFrame(conn)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF), errors.Is(err, net.ErrClosed):
				l.logger.Info("client disconnected")
			case errors.Is(err, domain.ErrMalformedFrame):
				l.logger.Warn("dropping client after malformed frame", log.Err(err))
			default:
				l.logger.Warn("read failed", log.Err(err))
			}
			return
		}
		h(f)
	}
}

// Close stops accepting, closes open client connections and removes the
// socket file. It is safe to call more than once.
func (l *Listener) Close() error {
	var err error
	l.once.Do(func() {
		err = l.ln.Close()
		l.mu.Lock()
		for c := range l.conns {
			_ = c.Close()
		}
		l.mu.Unlock()
	})
	return err
}
