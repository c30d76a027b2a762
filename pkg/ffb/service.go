package ffb

import (
	"context"
	"errors"
	"fmt"

	"github.com/bft-labs/ffblink/internal/app"
	"github.com/bft-labs/ffblink/pkg/log"
	"github.com/bft-labs/ffblink/pkg/transport"
)

// Service delivers prime and relax requests for both hands over one
// provider connection. Use New() to create an instance, then Start().
type Service struct {
	config    Config
	logger    log.Logger
	channel   *transport.Channel
	hands     [2]*app.HandController
	lifecycle *app.Lifecycle

	// droppedLogged suppresses repeated "disconnected" warnings until the
	// transport comes back.
	droppedLogged bool
}

// New creates a Service in StateStopped. Returns an error if the
// configuration is invalid.
func New(cfg Config, opts ...Option) (*Service, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewNoopLogger()
	}
	if o.dialer == nil {
		o.dialer = NewDialer(cfg)
	}

	var emitter app.EventEmitter
	if o.eventHandler != nil {
		emitter = &eventEmitterWrapper{handler: o.eventHandler}
	}

	channel := transport.NewChannel(o.dialer,
		transport.WithWriteTimeout(cfg.WriteTimeout),
		transport.WithLogger(o.logger),
	)

	s := &Service{
		config:    cfg,
		logger:    o.logger,
		channel:   channel,
		lifecycle: app.NewLifecycle(o.logger, emitter),
	}
	for i, hand := range []Hand{LeftHand, RightHand} {
		s.hands[i] = app.NewHandController(hand, channel, o.logger)
	}
	return s, nil
}

// Start opens the transport and resets both hands to Relaxed.
//
// If the provider cannot be reached, Start returns the error but the service
// still starts in StateDegraded: Prime and Relax are accepted and dropped
// until Reopen succeeds. Returns ErrAlreadyRunning if already started.
func (s *Service) Start(ctx context.Context) error {
	if !s.lifecycle.CanStart() {
		return ErrAlreadyRunning
	}
	if err := s.lifecycle.TransitionTo(StateStarting, "Start() called"); err != nil {
		return err
	}

	for _, h := range s.hands {
		h.Reset()
	}
	s.droppedLogged = false

	if err := s.channel.Open(ctx, s.config.Endpoint); err != nil {
		s.degrade("open failed", err)
		return err
	}
	return s.lifecycle.TransitionTo(StateRunning, "transport open")
}

// Prime engages feedback on hand. Repeated calls while the hand is primed
// send nothing.
func (s *Service) Prime(hand Hand, curls Curls) error {
	h, err := s.controller(hand)
	if err != nil {
		return err
	}
	if err := curls.Validate(); err != nil {
		return err
	}
	if !s.connected("prime", hand) {
		return nil
	}
	return s.swallow(h.NotifyHoverBegin(curls))
}

// HoverTick handles a per-frame hover update. It primes hand if it is not
// already primed and otherwise does nothing.
func (s *Service) HoverTick(hand Hand, curls Curls) error {
	h, err := s.controller(hand)
	if err != nil {
		return err
	}
	if err := curls.Validate(); err != nil {
		return err
	}
	if !s.connected("hover tick", hand) {
		return nil
	}
	return s.swallow(h.NotifyHoverTick(curls))
}

// Relax releases feedback on hand. No-op if the hand is not primed.
func (s *Service) Relax(hand Hand) error {
	h, err := s.controller(hand)
	if err != nil {
		return err
	}
	if !s.connected("relax", hand) {
		return nil
	}
	return s.swallow(h.NotifyHoverEnd())
}

// ForceRelax sends a relax frame for hand whatever its state. Recovery tools
// use it to release a hand left engaged by another process.
func (s *Service) ForceRelax(hand Hand) error {
	h, err := s.controller(hand)
	if err != nil {
		return err
	}
	if !s.connected("force relax", hand) {
		return nil
	}
	return s.swallow(h.ForceRelax())
}

// Reopen reconnects to the configured endpoint. Both hands are reset to
// Relaxed because a new provider connection starts with no feedback engaged.
// On failure the service stays (or becomes) Degraded.
func (s *Service) Reopen(ctx context.Context) error {
	if !s.lifecycle.Started() {
		return ErrNotRunning
	}

	for _, h := range s.hands {
		h.Reset()
	}

	var err error
	if s.channel.Endpoint() == "" {
		err = s.channel.Open(ctx, s.config.Endpoint)
	} else {
		err = s.channel.Reopen(ctx)
	}
	if err != nil {
		if s.lifecycle.State() == StateRunning {
			s.degrade("reopen failed", err)
		} else {
			s.logger.Warn("reopen failed", log.String("endpoint", s.config.Endpoint), log.Err(err))
		}
		return err
	}

	s.droppedLogged = false
	if s.lifecycle.State() == StateDegraded {
		return s.lifecycle.TransitionTo(StateRunning, "reopened")
	}
	return nil
}

// Shutdown relaxes both hands and closes the transport. It is safe to call
// any number of times; calls after the first do nothing and return nil.
func (s *Service) Shutdown() error {
	if !s.lifecycle.Started() {
		return nil
	}
	_ = s.lifecycle.TransitionTo(StateStopping, "Shutdown() called")

	if s.channel.IsOpen() {
		for _, h := range s.hands {
			if err := h.ForceRelax(); err != nil {
				s.logger.Warn("relax on shutdown failed", log.Stringer("hand", h.Hand()), log.Err(err))
			}
		}
	} else {
		for _, h := range s.hands {
			h.Reset()
		}
	}

	err := s.channel.Close()
	if err != nil {
		s.logger.Warn("close transport failed", log.Err(err))
	}

	_ = s.lifecycle.TransitionTo(StateStopped, "shutdown complete")
	return err
}

// Status returns the current lifecycle state.
func (s *Service) Status() State {
	return s.lifecycle.State()
}

// Connected reports whether the transport is open.
func (s *Service) Connected() bool {
	return s.channel.IsOpen()
}

// HandState returns the feedback state of hand. Invalid hands report Relaxed.
func (s *Service) HandState(hand Hand) HandState {
	h, err := s.controller(hand)
	if err != nil {
		return Relaxed
	}
	return h.State()
}

// Stats returns transport health counters.
func (s *Service) Stats() Stats {
	return s.channel.Stats()
}

func (s *Service) controller(hand Hand) (*app.HandController, error) {
	if !hand.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHand, int16(hand))
	}
	return s.hands[hand], nil
}

// connected reports whether a request can reach the transport, logging the
// first dropped request after the connection is lost.
func (s *Service) connected(op string, hand Hand) bool {
	if s.channel.IsOpen() {
		return true
	}
	if !s.droppedLogged {
		s.droppedLogged = true
		s.logger.Warn("feedback transport not connected, dropping requests",
			log.String("op", op),
			log.Stringer("hand", hand),
			log.String("state", s.lifecycle.State().String()),
		)
	}
	return false
}

// swallow logs transport failures and hides them from the host; any other
// error is returned.
func (s *Service) swallow(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrWriteFailed) || errors.Is(err, ErrNotConnected) {
		s.logger.Warn("feedback write failed", log.Err(err))
		return nil
	}
	return err
}

func (s *Service) degrade(reason string, err error) {
	s.logger.Warn("feedback transport unavailable, continuing without feedback",
		log.String("endpoint", s.config.Endpoint),
		log.Err(err),
	)
	s.droppedLogged = true
	_ = s.channel.Close()
	_ = s.lifecycle.TransitionTo(StateDegraded, reason)
}
