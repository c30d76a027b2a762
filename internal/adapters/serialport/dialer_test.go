package serialport

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.bug.st/serial"

	"github.com/bft-labs/ffblink/internal/domain"
)

func TestDialer_Mode(t *testing.T) {
	tests := []struct {
		baud int
		want int
	}{
		{0, DefaultBaudRate},
		{-5, DefaultBaudRate},
		{9600, 9600},
	}
	for _, tt := range tests {
		m := Dialer{BaudRate: tt.baud}.Mode()
		if m.BaudRate != tt.want {
			t.Errorf("Mode().BaudRate = %d, want %d", m.BaudRate, tt.want)
		}
		if m.DataBits != 8 || m.Parity != serial.NoParity || m.StopBits != serial.OneStopBit {
			t.Errorf("Mode() = %+v, want 8N1", m)
		}
	}
}

func TestDialer_MissingDevice(t *testing.T) {
	_, err := Dialer{}.Dial(context.Background(), filepath.Join(t.TempDir(), "ttyFFB0"))
	if !errors.Is(err, domain.ErrEndpointUnavailable) {
		t.Errorf("Dial() error = %v, want ErrEndpointUnavailable", err)
	}
}

func TestDialer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Dialer{}).Dial(ctx, "/dev/null"); !errors.Is(err, context.Canceled) {
		t.Errorf("Dial() error = %v, want context.Canceled", err)
	}
}
