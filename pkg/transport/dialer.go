package transport

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bft-labs/ffblink/internal/domain"
)

// Transport errors, re-exported for callers that only import this package.
var (
	ErrEndpointUnavailable = domain.ErrEndpointUnavailable
	ErrAlreadyOpen         = domain.ErrAlreadyOpen
	ErrNotConnected        = domain.ErrNotConnected
	ErrWriteFailed         = domain.ErrWriteFailed
)

// Conn is an open connection to a provider.
// If the value also implements SetWriteDeadline(time.Time) error, the
// channel's write timeout is applied to every send.
type Conn interface {
	io.Writer
	io.Closer
}

// writeDeadliner is implemented by net.Conn and *os.File.
type writeDeadliner interface {
	SetWriteDeadline(t time.Time) error
}

// Dialer opens connections to provider endpoints.
type Dialer interface {
	// Dial connects to address. Implementations should return an error
	// wrapping ErrEndpointUnavailable when nothing is listening.
	Dial(ctx context.Context, address string) (Conn, error)
}

// DialerFunc adapts a function to the Dialer interface.
type DialerFunc func(ctx context.Context, address string) (Conn, error)

// Dial calls f(ctx, address).
func (f DialerFunc) Dial(ctx context.Context, address string) (Conn, error) {
	return f(ctx, address)
}

// Endpoint schemes.
const (
	SchemeName   = "name"
	SchemeUnix   = "unix"
	SchemeSerial = "serial"
)

// Endpoint is a parsed endpoint identifier.
type Endpoint struct {
	Scheme  string
	Address string
}

// String returns the identifier Endpoint was parsed from.
func (e Endpoint) String() string {
	if e.Scheme == SchemeName {
		return e.Address
	}
	return e.Scheme + ":" + e.Address
}

// ParseEndpoint splits an endpoint identifier into scheme and address.
// Identifiers without a recognised scheme prefix are well-known names.
func ParseEndpoint(id string) (Endpoint, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Endpoint{}, fmt.Errorf("%w: empty endpoint", domain.ErrInvalidConfig)
	}
	if scheme, addr, ok := strings.Cut(id, ":"); ok {
		switch scheme {
		case SchemeUnix, SchemeSerial, SchemeName:
			if addr == "" {
				return Endpoint{}, fmt.Errorf("%w: endpoint %q has no address", domain.ErrInvalidConfig, id)
			}
			return Endpoint{Scheme: scheme, Address: addr}, nil
		}
	}
	return Endpoint{Scheme: SchemeName, Address: id}, nil
}

// Mux routes Dial calls to a Dialer registered for the endpoint's scheme.
type Mux struct {
	dialers map[string]Dialer
}

// NewMux creates an empty Mux.
func NewMux() *Mux {
	return &Mux{dialers: make(map[string]Dialer)}
}

// Handle registers d for scheme, replacing any previous registration.
func (m *Mux) Handle(scheme string, d Dialer) {
	m.dialers[scheme] = d
}

// Dial parses address and forwards the scheme-less address to the
// registered Dialer.
func (m *Mux) Dial(ctx context.Context, address string) (Conn, error) {
	ep, err := ParseEndpoint(address)
	if err != nil {
		return nil, err
	}
	d, ok := m.dialers[ep.Scheme]
	if !ok {
		return nil, fmt.Errorf("%w: no dialer for scheme %q", domain.ErrInvalidConfig, ep.Scheme)
	}
	return d.Dial(ctx, ep.Address)
}
