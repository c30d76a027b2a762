package ffb

import (
	"github.com/bft-labs/ffblink/internal/app"
	"github.com/bft-labs/ffblink/internal/domain"
	"github.com/bft-labs/ffblink/pkg/transport"
)

// Re-exported domain types.
type (
	// Hand identifies the left or right hand.
	Hand = domain.Hand

	// Curls holds the five finger curl targets, each 0 (relaxed) to 1000 (curled).
	Curls = domain.Curls

	// Frame is one force-feedback command on the wire.
	Frame = domain.Frame

	// HandState is Relaxed or Primed.
	HandState = domain.HandState

	// Stats reports transport health counters.
	Stats = transport.Stats

	// State represents the lifecycle state of a Service.
	State = app.State
)

const (
	LeftHand  = domain.LeftHand
	RightHand = domain.RightHand

	Relaxed = domain.Relaxed
	Primed  = domain.Primed

	ExtensionNone = domain.ExtensionNone
	ExtensionHalf = domain.ExtensionHalf
	ExtensionFull = domain.ExtensionFull
)

// Lifecycle states.
const (
	StateStopped  = app.StateStopped
	StateStarting = app.StateStarting
	StateRunning  = app.StateRunning
	StateDegraded = app.StateDegraded
	StateStopping = app.StateStopping
)

// Errors returned by the service, for use with errors.Is.
var (
	ErrEndpointUnavailable = domain.ErrEndpointUnavailable
	ErrAlreadyOpen         = domain.ErrAlreadyOpen
	ErrNotConnected        = domain.ErrNotConnected
	ErrWriteFailed         = domain.ErrWriteFailed
	ErrMalformedFrame      = domain.ErrMalformedFrame
	ErrCurlOutOfRange      = domain.ErrCurlOutOfRange
	ErrInvalidHand         = domain.ErrInvalidHand
	ErrAlreadyRunning      = domain.ErrAlreadyRunning
	ErrNotRunning          = domain.ErrNotRunning
	ErrInvalidConfig       = domain.ErrInvalidConfig
)

// UniformCurls returns Curls with every finger set to v.
func UniformCurls(v int16) Curls {
	return domain.UniformCurls(v)
}

// ParseHand accepts "left"/"l" and "right"/"r".
func ParseHand(s string) (Hand, error) {
	return domain.ParseHand(s)
}

// StateChangeEvent is emitted on every lifecycle transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// EventHandler receives service events. Events are delivered synchronously
// on the goroutine that caused them.
type EventHandler interface {
	OnStateChange(event StateChangeEvent)
}

// eventEmitterWrapper adapts EventHandler to app.EventEmitter.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: previous,
		Current:  current,
		Reason:   reason,
	})
}
