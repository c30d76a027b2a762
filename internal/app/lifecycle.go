package app

import (
	"fmt"

	"github.com/bft-labs/ffblink/internal/domain"
	"github.com/bft-labs/ffblink/pkg/log"
)

// State represents the lifecycle state of the feedback service.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	// StateDegraded means the service is started but has no transport;
	// requests are accepted and dropped until a successful reopen.
	StateDegraded
	StateStopping
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateDegraded:
		return "Degraded"
	case StateStopping:
		return "Stopping"
	default:
		return "Unknown"
	}
}

// EventEmitter is called when lifecycle state changes.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// transitions lists the valid next states for each state.
var transitions = map[State][]State{
	StateStopped:  {StateStarting},
	StateStarting: {StateRunning, StateDegraded},
	StateRunning:  {StateDegraded, StateStopping},
	StateDegraded: {StateRunning, StateStopping},
	StateStopping: {StateStopped},
}

// Lifecycle tracks the service state machine.
// Like the service that owns it, it is not safe for concurrent use.
type Lifecycle struct {
	state        State
	logger       log.Logger
	eventEmitter EventEmitter
}

// NewLifecycle creates a lifecycle in StateStopped.
func NewLifecycle(logger log.Logger, emitter EventEmitter) *Lifecycle {
	return &Lifecycle{
		state:        StateStopped,
		logger:       logger,
		eventEmitter: emitter,
	}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	return l.state
}

// TransitionTo attempts to transition to a new state.
// Returns an error wrapping ErrInvalidTransition if the transition is not valid.
func (l *Lifecycle) TransitionTo(newState State, reason string) error {
	oldState := l.state
	if !canTransition(oldState, newState) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, oldState, newState)
	}
	l.state = newState

	if l.eventEmitter != nil {
		l.eventEmitter.OnStateChange(oldState, newState, reason)
	}

	l.logger.Info("state transition",
		log.String("from", oldState.String()),
		log.String("to", newState.String()),
		log.String("reason", reason),
	)
	return nil
}

// CanStart returns true if Start() can be called.
func (l *Lifecycle) CanStart() bool {
	return l.state == StateStopped
}

// Started returns true while the service is Running or Degraded.
func (l *Lifecycle) Started() bool {
	return l.state == StateRunning || l.state == StateDegraded
}

func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
