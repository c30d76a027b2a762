package ffb

import (
	"github.com/bft-labs/ffblink/internal/adapters/ipc"
	"github.com/bft-labs/ffblink/internal/adapters/serialport"
	"github.com/bft-labs/ffblink/pkg/log"
	"github.com/bft-labs/ffblink/pkg/transport"
)

// Option configures optional behavior of a Service.
type Option func(*options)

// options holds the optional configuration for a Service.
type options struct {
	logger       log.Logger
	dialer       transport.Dialer
	eventHandler EventHandler
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDialer replaces the default endpoint dialer. Tests use it to capture
// frames; embedders use it to reach providers over a custom transport.
func WithDialer(d transport.Dialer) Option {
	return func(o *options) {
		o.dialer = d
	}
}

// WithEventHandler sets a handler for lifecycle events.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// NewDialer returns the default scheme-routing dialer: well-known names and
// unix: paths go to local sockets, serial: devices to the serial port.
func NewDialer(cfg Config) *transport.Mux {
	m := transport.NewMux()
	m.Handle(transport.SchemeName, &ipc.NameDialer{})
	m.Handle(transport.SchemeUnix, &ipc.Dialer{})
	m.Handle(transport.SchemeSerial, serialport.Dialer{BaudRate: cfg.SerialBaud})
	return m
}
