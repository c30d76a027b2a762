package ffb

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/bft-labs/ffblink/internal/adapters/serialport"
	"github.com/bft-labs/ffblink/pkg/transport"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("Endpoint = %v, want %v", cfg.Endpoint, DefaultEndpoint)
	}
	if cfg.WriteTimeout != transport.DefaultWriteTimeout {
		t.Errorf("WriteTimeout = %v, want %v", cfg.WriteTimeout, transport.DefaultWriteTimeout)
	}
	if cfg.SerialBaud != serialport.DefaultBaudRate {
		t.Errorf("SerialBaud = %v, want %v", cfg.SerialBaud, serialport.DefaultBaudRate)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestConfig_SetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	if cfg.Endpoint != DefaultEndpoint || cfg.SerialBaud != serialport.DefaultBaudRate {
		t.Errorf("SetDefaults() = %+v", cfg)
	}
	if cfg.WriteTimeout != 0 {
		t.Errorf("WriteTimeout = %v, want 0 (disabled)", cfg.WriteTimeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"named endpoint", Config{Endpoint: "application/ffb"}, false},
		{"unix endpoint", Config{Endpoint: "unix:/tmp/ffb.sock", WriteTimeout: time.Millisecond}, false},
		{"serial endpoint", Config{Endpoint: "serial:/dev/ttyACM0", SerialBaud: 9600}, false},
		{"empty endpoint", Config{}, true},
		{"unix without path", Config{Endpoint: "unix:"}, true},
		{"negative timeout", Config{Endpoint: "application/ffb", WriteTimeout: -time.Second}, true},
		{"negative baud", Config{Endpoint: "application/ffb", SerialBaud: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Endpoint: "serial:", WriteTimeout: time.Millisecond})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}
}

func TestEndpointPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/42")

	tests := []struct {
		endpoint string
		want     string
	}{
		{"application/ffb", filepath.Join("/run/user/42", "ffb-application-ffb.sock")},
		{"unix:/tmp/glove.sock", "/tmp/glove.sock"},
		{"serial:/dev/ttyACM0", "/dev/ttyACM0"},
	}
	for _, tt := range tests {
		got, err := EndpointPath(tt.endpoint)
		if err != nil {
			t.Fatalf("EndpointPath(%q) error = %v", tt.endpoint, err)
		}
		if got != tt.want {
			t.Errorf("EndpointPath(%q) = %q, want %q", tt.endpoint, got, tt.want)
		}
	}
}
