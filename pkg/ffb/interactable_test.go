package ffb_test

import (
	"testing"

	"github.com/bft-labs/ffblink/pkg/ffb"
)

type call struct {
	op    string
	hand  ffb.Hand
	curls ffb.Curls
}

type fakeFeedback struct {
	calls []call
}

func (f *fakeFeedback) Prime(hand ffb.Hand, curls ffb.Curls) error {
	f.calls = append(f.calls, call{"prime", hand, curls})
	return nil
}

func (f *fakeFeedback) HoverTick(hand ffb.Hand, curls ffb.Curls) error {
	f.calls = append(f.calls, call{"tick", hand, curls})
	return nil
}

func (f *fakeFeedback) Relax(hand ffb.Hand) error {
	f.calls = append(f.calls, call{"relax", hand, ffb.Curls{}})
	return nil
}

func TestInteractable_RoutesHoverEvents(t *testing.T) {
	fb := &fakeFeedback{}
	profile := ffb.UniformCurls(ffb.ExtensionHalf)
	obj := ffb.NewInteractable(fb, profile)

	_ = obj.OnHoverBegin(ffb.LeftHand)
	_ = obj.OnHoverTick(ffb.LeftHand)
	_ = obj.OnHoverEnd(ffb.LeftHand)

	want := []call{
		{"prime", ffb.LeftHand, profile},
		{"tick", ffb.LeftHand, profile},
		{"relax", ffb.LeftHand, ffb.Curls{}},
	}
	if len(fb.calls) != len(want) {
		t.Fatalf("calls = %+v, want %+v", fb.calls, want)
	}
	for i := range want {
		if fb.calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, fb.calls[i], want[i])
		}
	}
	if obj.Curls() != profile {
		t.Errorf("Curls() = %+v, want %+v", obj.Curls(), profile)
	}
}

func TestInteractable_HoverSessionOnService(t *testing.T) {
	d := &providerDialer{}
	svc := startService(t, d)
	obj := ffb.NewInteractable(svc, ffb.UniformCurls(500))

	_ = obj.OnHoverBegin(ffb.RightHand)
	for i := 0; i < 30; i++ {
		_ = obj.OnHoverTick(ffb.RightHand)
	}
	_ = obj.OnHoverEnd(ffb.RightHand)
	_ = svc.Shutdown()

	frames := d.conn().frames(t)
	// prime, relax from hover end, then one relax per hand on shutdown.
	if len(frames) != 4 {
		t.Fatalf("sent %d frames, want 4: %+v", len(frames), frames)
	}
	if frames[0].IndexCurl != 500 || frames[0].Hand != ffb.RightHand {
		t.Errorf("prime frame = %+v", frames[0])
	}
	if !frames[1].IsRelax() {
		t.Errorf("hover end frame = %+v, want relax", frames[1])
	}
}
