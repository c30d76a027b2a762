package ports

import "github.com/bft-labs/ffblink/internal/domain"

// FrameSender delivers force-feedback frames to the provider process.
type FrameSender interface {
	// Send writes one frame. It blocks until the write completes, fails,
	// or hits the sender's write deadline.
	Send(frame domain.Frame) error
}
