package domain

import "errors"

// Domain errors represent error conditions in the ffblink domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrEndpointUnavailable is returned when no provider is listening on the endpoint.
	ErrEndpointUnavailable = errors.New("ffblink: endpoint unavailable")

	// ErrAlreadyOpen is returned when Open() is called on an open channel.
	ErrAlreadyOpen = errors.New("ffblink: channel already open")

	// ErrNotConnected is returned when Send() is called on a closed channel.
	ErrNotConnected = errors.New("ffblink: not connected")

	// ErrWriteFailed wraps any I/O error raised while writing a frame.
	ErrWriteFailed = errors.New("ffblink: write failed")

	// ErrMalformedFrame is returned when decoding bytes that are not one frame.
	ErrMalformedFrame = errors.New("ffblink: malformed frame")

	// ErrCurlOutOfRange is returned when a curl target falls outside [0, 1000].
	ErrCurlOutOfRange = errors.New("ffblink: curl out of range")

	// ErrInvalidHand is returned for a hand value other than LeftHand or RightHand.
	ErrInvalidHand = errors.New("ffblink: invalid hand")

	// ErrAlreadyRunning is returned when Start() is called on a running service.
	ErrAlreadyRunning = errors.New("ffblink: already running")

	// ErrNotRunning is returned when an operation needs a started service.
	ErrNotRunning = errors.New("ffblink: not running")

	// ErrInvalidTransition is returned for a lifecycle transition that is not allowed.
	ErrInvalidTransition = errors.New("ffblink: invalid state transition")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("ffblink: invalid configuration")
)
