// Package ffb is the process-wide entry point for sending force feedback to
// a glove provider.
//
// A [Service] owns one transport connection and one controller per hand.
// Host code calls [Service.Prime] when a hand starts hovering a target and
// [Service.Relax] when it leaves. Priming on hover, before the grasp
// completes, gives the actuators time to move into position.
//
// # Quick Start
//
//	svc, err := ffb.New(ffb.DefaultConfig(), ffb.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	if err := svc.Start(ctx); err != nil {
//	    // The provider is not running. The service stays usable and drops
//	    // requests until Reopen succeeds.
//	}
//	defer svc.Shutdown()
//
//	svc.Prime(ffb.RightHand, ffb.UniformCurls(ffb.ExtensionHalf))
//	svc.Relax(ffb.RightHand)
//
// # Hover Events
//
// [Interactable] maps host hover callbacks onto Prime and Relax for one
// target object with a fixed curl profile:
//
//	mug := ffb.NewInteractable(svc, ffb.UniformCurls(500))
//	mug.OnHoverBegin(ffb.LeftHand)
//	mug.OnHoverTick(ffb.LeftHand) // debounced, sends nothing
//	mug.OnHoverEnd(ffb.LeftHand)
//
// # Threading
//
// All calls run synchronously on the caller's goroutine and block only for
// the duration of a single frame write, bounded by Config.WriteTimeout.
// A Service is not safe for concurrent use; drive it from the host's update
// loop.
//
// # Errors
//
// Feedback is best-effort. Transport failures never propagate from Prime or
// Relax: they are logged and the call returns nil. Only caller mistakes
// (invalid hand, curl outside 0..1000) are returned.
package ffb
