package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bft-labs/ffblink/internal/domain"
	"github.com/bft-labs/ffblink/pkg/codec"
	"github.com/bft-labs/ffblink/pkg/log"
)

// DefaultWriteTimeout bounds a single frame write so a stalled provider
// cannot hold up the host's update loop.
const DefaultWriteTimeout = 20 * time.Millisecond

// Stats reports transport health.
type Stats struct {
	FramesSent    uint64
	WriteFailures uint64
	TornWrites    uint64
}

// Option configures a Channel.
type Option func(*Channel)

// WithWriteTimeout sets the per-send write deadline. Zero disables it.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *Channel) {
		c.writeTimeout = d
	}
}

// WithLogger sets the channel logger.
func WithLogger(logger log.Logger) Option {
	return func(c *Channel) {
		c.logger = logger
	}
}

// Channel is a client connection to one provider endpoint.
// A Channel is not safe for concurrent use; callers serialize access.
type Channel struct {
	dialer       Dialer
	logger       log.Logger
	writeTimeout time.Duration
	now          func() time.Time

	endpoint string
	conn     Conn

	// pending holds the unwritten tail of a torn frame. It is written ahead
	// of the next frame so the stream stays frame-aligned.
	pending []byte

	stats Stats
}

// NewChannel creates a closed channel that connects through dialer.
func NewChannel(dialer Dialer, opts ...Option) *Channel {
	c := &Channel{
		dialer:       dialer,
		logger:       log.NewNoopLogger(),
		writeTimeout: DefaultWriteTimeout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open connects to endpoint.
// Returns ErrAlreadyOpen if the channel is open and ErrEndpointUnavailable
// if no provider is listening.
func (c *Channel) Open(ctx context.Context, endpoint string) error {
	if c.conn != nil {
		return fmt.Errorf("%w: %s", ErrAlreadyOpen, c.endpoint)
	}

	conn, err := c.dialer.Dial(ctx, endpoint)
	if err != nil {
		if errors.Is(err, ErrEndpointUnavailable) || errors.Is(err, domain.ErrInvalidConfig) {
			return err
		}
		return fmt.Errorf("%w: %s: %w", ErrEndpointUnavailable, endpoint, err)
	}

	c.conn = conn
	c.endpoint = endpoint
	c.pending = nil
	c.logger.Info("transport opened", log.String("endpoint", endpoint))
	return nil
}

// Send writes f as one fixed-size frame.
// Returns ErrNotConnected when closed and an error wrapping ErrWriteFailed on
// any I/O failure. The channel remains open after a failed write.
func (c *Channel) Send(f domain.Frame) error {
	if c.conn == nil {
		return ErrNotConnected
	}

	frame := codec.Encode(f)
	buf := frame[:]
	held := len(c.pending)
	if held > 0 {
		buf = append(append(make([]byte, 0, held+codec.FrameSize), c.pending...), frame[:]...)
	}

	if c.writeTimeout > 0 {
		if d, ok := c.conn.(writeDeadliner); ok {
			if err := d.SetWriteDeadline(c.now().Add(c.writeTimeout)); err != nil {
				c.logger.Debug("set write deadline failed", log.Err(err))
			}
		}
	}

	n, err := c.conn.Write(buf)
	if n == len(buf) {
		c.pending = nil
		c.stats.FramesSent++
		return nil
	}
	if err == nil {
		err = io.ErrShortWrite
	}
	if n < 0 {
		n = 0
	}

	c.stats.WriteFailures++
	switch {
	case n < held:
		// The new frame was not started; only the old tail remains.
		c.pending = append([]byte(nil), c.pending[n:]...)
	case n == held:
		c.pending = nil
	default:
		c.pending = append([]byte(nil), buf[n:]...)
		c.stats.TornWrites++
	}

	return fmt.Errorf("%w: %s: %w", ErrWriteFailed, c.endpoint, err)
}

// Close releases the connection. Closing a closed channel is a no-op.
func (c *Channel) Close() error {
	if c.conn == nil {
		return nil
	}
	conn := c.conn
	c.conn = nil
	c.pending = nil

	if err := conn.Close(); err != nil {
		return fmt.Errorf("close %s: %w", c.endpoint, err)
	}
	c.logger.Info("transport closed", log.String("endpoint", c.endpoint))
	return nil
}

// Reopen closes the channel if open and connects again to the last endpoint
// passed to Open.
func (c *Channel) Reopen(ctx context.Context) error {
	if c.endpoint == "" {
		return fmt.Errorf("%w: never opened", ErrNotConnected)
	}
	if err := c.Close(); err != nil {
		c.logger.Warn("close before reopen failed", log.Err(err))
	}
	return c.Open(ctx, c.endpoint)
}

// IsOpen reports whether the channel holds a connection.
func (c *Channel) IsOpen() bool {
	return c.conn != nil
}

// Endpoint returns the endpoint of the last Open call.
func (c *Channel) Endpoint() string {
	return c.endpoint
}

// Stats returns a snapshot of transport counters.
func (c *Channel) Stats() Stats {
	return c.stats
}
