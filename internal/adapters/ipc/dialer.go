package ipc

import (
	"context"
	"fmt"
	"net"

	"github.com/bft-labs/ffblink/internal/domain"
	"github.com/bft-labs/ffblink/pkg/transport"
)

// Network is the socket type used for provider connections.
const Network = "unix"

// Dialer connects to a Unix domain socket by path.
type Dialer struct {
	net.Dialer
}

// Dial connects to the socket at path. Any connect failure means no provider
// is accepting on that path and is reported as ErrEndpointUnavailable.
func (d *Dialer) Dial(ctx context.Context, path string) (transport.Conn, error) {
	conn, err := d.DialContext(ctx, Network, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrEndpointUnavailable, path, err)
	}
	return conn, nil
}

// NameDialer resolves well-known endpoint names with SocketPath before dialing.
type NameDialer struct {
	Dialer
}

// Dial connects to the socket registered for name.
func (d *NameDialer) Dial(ctx context.Context, name string) (transport.Conn, error) {
	return d.Dialer.Dial(ctx, SocketPath(name))
}
