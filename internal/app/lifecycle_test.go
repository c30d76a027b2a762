package app

import (
	"errors"
	"testing"

	"github.com/bft-labs/ffblink/internal/domain"
	"github.com/bft-labs/ffblink/pkg/log"
)

// mockEmitter tracks state change events for testing.
type mockEmitter struct {
	events []stateChangeEvent
}

type stateChangeEvent struct {
	previous State
	current  State
	reason   string
}

func (m *mockEmitter) OnStateChange(previous, current State, reason string) {
	m.events = append(m.events, stateChangeEvent{previous, current, reason})
}

func TestNewLifecycle(t *testing.T) {
	l := NewLifecycle(log.NewNoopLogger(), nil)

	if l == nil {
		t.Fatal("NewLifecycle returned nil")
	}
	if l.State() != StateStopped {
		t.Errorf("initial state = %v, want StateStopped", l.State())
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateStopped, "Stopped"},
		{StateStarting, "Starting"},
		{StateRunning, "Running"},
		{StateDegraded, "Degraded"},
		{StateStopping, "Stopping"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		got := tt.state.String()
		if got != tt.want {
			t.Errorf("State(%d).String() = %s, want %s", tt.state, got, tt.want)
		}
	}
}

func TestLifecycle_TransitionTo_ValidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from State
		to   State
	}{
		{"stopped to starting", StateStopped, StateStarting},
		{"starting to running", StateStarting, StateRunning},
		{"starting to degraded", StateStarting, StateDegraded},
		{"running to degraded", StateRunning, StateDegraded},
		{"running to stopping", StateRunning, StateStopping},
		{"degraded to running", StateDegraded, StateRunning},
		{"degraded to stopping", StateDegraded, StateStopping},
		{"stopping to stopped", StateStopping, StateStopped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLifecycle(log.NewNoopLogger(), nil)
			l.state = tt.from

			if err := l.TransitionTo(tt.to, "test"); err != nil {
				t.Fatalf("TransitionTo() error = %v", err)
			}
			if l.State() != tt.to {
				t.Errorf("state = %v after transition, want %v", l.State(), tt.to)
			}
		})
	}
}

func TestLifecycle_TransitionTo_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from State
		to   State
	}{
		{"stopped to running", StateStopped, StateRunning},
		{"stopped to stopping", StateStopped, StateStopping},
		{"starting to stopped", StateStarting, StateStopped},
		{"running to starting", StateRunning, StateStarting},
		{"running to stopped", StateRunning, StateStopped},
		{"degraded to stopped", StateDegraded, StateStopped},
		{"stopping to running", StateStopping, StateRunning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emitter := &mockEmitter{}
			l := NewLifecycle(log.NewNoopLogger(), emitter)
			l.state = tt.from

			err := l.TransitionTo(tt.to, "test")
			if !errors.Is(err, domain.ErrInvalidTransition) {
				t.Errorf("TransitionTo() error = %v, want ErrInvalidTransition", err)
			}
			if l.State() != tt.from {
				t.Errorf("state changed to %v on invalid transition, want %v", l.State(), tt.from)
			}
			if len(emitter.events) != 0 {
				t.Errorf("emitted %d events on invalid transition", len(emitter.events))
			}
		})
	}
}

func TestLifecycle_TransitionTo_EmitsEvents(t *testing.T) {
	emitter := &mockEmitter{}
	l := NewLifecycle(log.NewNoopLogger(), emitter)

	_ = l.TransitionTo(StateStarting, "start test")
	_ = l.TransitionTo(StateDegraded, "open failed")

	if len(emitter.events) != 2 {
		t.Fatalf("got %d events, want 2", len(emitter.events))
	}
	if e := emitter.events[0]; e.previous != StateStopped || e.current != StateStarting {
		t.Errorf("event 0: got %v->%v, want Stopped->Starting", e.previous, e.current)
	}
	if e := emitter.events[1]; e.previous != StateStarting || e.current != StateDegraded || e.reason != "open failed" {
		t.Errorf("event 1: got %v->%v (%s), want Starting->Degraded", e.previous, e.current, e.reason)
	}
}

func TestLifecycle_CanStartAndStarted(t *testing.T) {
	tests := []struct {
		state       State
		wantStart   bool
		wantStarted bool
	}{
		{StateStopped, true, false},
		{StateStarting, false, false},
		{StateRunning, false, true},
		{StateDegraded, false, true},
		{StateStopping, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			l := NewLifecycle(log.NewNoopLogger(), nil)
			l.state = tt.state

			if got := l.CanStart(); got != tt.wantStart {
				t.Errorf("CanStart() = %v, want %v", got, tt.wantStart)
			}
			if got := l.Started(); got != tt.wantStarted {
				t.Errorf("Started() = %v, want %v", got, tt.wantStarted)
			}
		})
	}
}
