// Package serialport connects to glove firmware that accepts frames over a
// serial (USB CDC) link.
package serialport

import (
	"context"
	"fmt"

	"go.bug.st/serial"

	"github.com/bft-labs/ffblink/internal/domain"
	"github.com/bft-labs/ffblink/pkg/transport"
)

// DefaultBaudRate matches the common glove firmware default.
const DefaultBaudRate = 115200

// Dialer opens serial devices as provider connections.
// serial.Port has no write deadline, so the channel's write timeout does
// not apply to serial endpoints.
type Dialer struct {
	BaudRate int
}

// Mode returns the 8N1 serial mode used for every port.
func (d Dialer) Mode() *serial.Mode {
	baud := d.BaudRate
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	return &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}

// Dial opens device. A device that cannot be opened is reported as
// ErrEndpointUnavailable.
func (d Dialer) Dial(ctx context.Context, device string) (transport.Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	port, err := serial.Open(device, d.Mode())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrEndpointUnavailable, device, err)
	}
	return port, nil
}
