package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type hand int

func (hand) String() string { return "right" }

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf))

	z.Info("frame sent",
		String("endpoint", "application/ffb"),
		Int16("thumb", 1000),
		Bool("primed", true),
		Duration("timeout", 20*time.Millisecond),
		Stringer("hand", hand(1)),
		Err(errors.New("boom")),
	)

	out := buf.String()
	for _, want := range []string{
		`"endpoint":"application/ffb"`,
		`"thumb":1000`,
		`"primed":true`,
		`"hand":"right"`,
		`"error":"boom"`,
		`"message":"frame sent"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestZerologAdapter_WithLevel(t *testing.T) {
	var buf bytes.Buffer
	z, err := NewZerologAdapterWithLogger(zerolog.New(&buf)).WithLevel("warn")
	if err != nil {
		t.Fatalf("WithLevel() error = %v", err)
	}

	z.Info("dropped")
	z.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn message missing: %s", out)
	}

	if _, err := z.WithLevel("loud"); err == nil {
		t.Error("WithLevel(\"loud\") error = nil, want error")
	}
}
