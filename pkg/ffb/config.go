package ffb

import (
	"fmt"
	"time"

	"github.com/bft-labs/ffblink/internal/adapters/serialport"
	"github.com/bft-labs/ffblink/pkg/transport"
)

// DefaultEndpoint is the well-known provider endpoint name.
const DefaultEndpoint = "application/ffb"

// Config holds the configuration for a Service.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// Endpoint identifies the provider: a well-known name, "unix:<path>"
	// or "serial:<device>".
	Endpoint string

	// WriteTimeout bounds each frame write. Zero disables the deadline.
	WriteTimeout time.Duration

	// SerialBaud is the baud rate for serial endpoints.
	SerialBaud int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Endpoint:     DefaultEndpoint,
		WriteTimeout: transport.DefaultWriteTimeout,
		SerialBaud:   serialport.DefaultBaudRate,
	}
}

// SetDefaults fills zero-valued fields with defaults. WriteTimeout is left
// alone so zero can disable it.
func (c *Config) SetDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.SerialBaud == 0 {
		c.SerialBaud = serialport.DefaultBaudRate
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if _, err := transport.ParseEndpoint(c.Endpoint); err != nil {
		return err
	}
	if c.WriteTimeout < 0 {
		return fmt.Errorf("%w: write timeout must not be negative", ErrInvalidConfig)
	}
	if c.SerialBaud < 0 {
		return fmt.Errorf("%w: serial baud must be positive", ErrInvalidConfig)
	}
	return nil
}
