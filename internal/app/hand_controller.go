package app

import (
	"fmt"

	"github.com/bft-labs/ffblink/internal/domain"
	"github.com/bft-labs/ffblink/internal/ports"
	"github.com/bft-labs/ffblink/pkg/log"
)

// HandController decides when to prime and relax one hand.
//
// Hover notifications can arrive every host frame while a hand stays over a
// target, so repeated prime requests in the Primed state are dropped rather
// than re-sent. The state changes even when the send fails: the request is
// recorded and the send error is returned for the caller to log.
type HandController struct {
	hand   domain.Hand
	sender ports.FrameSender
	logger log.Logger

	state domain.HandState
	curls domain.Curls
}

// NewHandController creates a Relaxed controller for hand.
func NewHandController(hand domain.Hand, sender ports.FrameSender, logger log.Logger) *HandController {
	return &HandController{
		hand:   hand,
		sender: sender,
		logger: logger,
		state:  domain.Relaxed,
	}
}

// Hand returns the controlled hand.
func (c *HandController) Hand() domain.Hand {
	return c.hand
}

// State returns the current hand state.
func (c *HandController) State() domain.HandState {
	return c.state
}

// Curls returns the targets of the last prime, or zero when Relaxed.
func (c *HandController) Curls() domain.Curls {
	return c.curls
}

// NotifyHoverBegin primes the hand with curls. No-op while Primed.
func (c *HandController) NotifyHoverBegin(curls domain.Curls) error {
	if c.state == domain.Primed {
		return nil
	}
	if err := curls.Validate(); err != nil {
		return err
	}
	c.state = domain.Primed
	c.curls = curls
	return c.emit("prime", domain.NewFrame(c.hand, curls))
}

// NotifyHoverTick handles a per-frame hover update. It has the same debounce
// semantics as NotifyHoverBegin, so a tick seen before the begin event still
// primes exactly once.
func (c *HandController) NotifyHoverTick(curls domain.Curls) error {
	return c.NotifyHoverBegin(curls)
}

// NotifyHoverEnd relaxes the hand. No-op while Relaxed.
func (c *HandController) NotifyHoverEnd() error {
	if c.state == domain.Relaxed {
		return nil
	}
	return c.ForceRelax()
}

// ForceRelax sends a relax frame regardless of state and marks the hand Relaxed.
func (c *HandController) ForceRelax() error {
	c.state = domain.Relaxed
	c.curls = domain.Curls{}
	return c.emit("relax", domain.RelaxFrame(c.hand))
}

// Reset marks the hand Relaxed without sending anything. Used when the
// provider connection is replaced and holds no state for this hand.
func (c *HandController) Reset() {
	c.state = domain.Relaxed
	c.curls = domain.Curls{}
}

func (c *HandController) emit(action string, f domain.Frame) error {
	if err := c.sender.Send(f); err != nil {
		return fmt.Errorf("%s %s hand: %w", action, c.hand, err)
	}
	c.logger.Debug("feedback frame sent",
		log.String("action", action),
		log.Stringer("hand", c.hand),
		log.Int16("thumb", f.ThumbCurl),
		log.Int16("index", f.IndexCurl),
		log.Int16("middle", f.MiddleCurl),
		log.Int16("ring", f.RingCurl),
		log.Int16("pinky", f.PinkyCurl),
	)
	return nil
}
