package domain

import "fmt"

// Curl bounds. 0 is fully relaxed, 1000 is fully curled.
const (
	MinCurl int16 = 0
	MaxCurl int16 = 1000
)

// Common curl extents.
const (
	ExtensionNone int16 = 0
	ExtensionHalf int16 = 500
	ExtensionFull int16 = 1000
)

// Hand identifies which hand a frame addresses.
// The numeric value is the wire code.
type Hand int16

const (
	LeftHand  Hand = 0
	RightHand Hand = 1
)

// Hands lists both hands in wire-code order.
var Hands = [2]Hand{LeftHand, RightHand}

// Valid reports whether h is LeftHand or RightHand.
func (h Hand) Valid() bool {
	return h == LeftHand || h == RightHand
}

// String returns a human-readable representation of the hand.
func (h Hand) String() string {
	switch h {
	case LeftHand:
		return "left"
	case RightHand:
		return "right"
	default:
		return fmt.Sprintf("Hand(%d)", int16(h))
	}
}

// ParseHand accepts "left"/"l" and "right"/"r".
func ParseHand(s string) (Hand, error) {
	switch s {
	case "left", "l", "L", "Left":
		return LeftHand, nil
	case "right", "r", "R", "Right":
		return RightHand, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidHand, s)
}

// Curls holds the five finger curl targets of a prime request.
type Curls struct {
	Thumb  int16
	Index  int16
	Middle int16
	Ring   int16
	Pinky  int16
}

// UniformCurls returns Curls with every finger set to v.
func UniformCurls(v int16) Curls {
	return Curls{Thumb: v, Index: v, Middle: v, Ring: v, Pinky: v}
}

// Validate returns ErrCurlOutOfRange if any finger is outside [MinCurl, MaxCurl].
func (c Curls) Validate() error {
	for i, v := range c.Values() {
		if v < MinCurl || v > MaxCurl {
			return fmt.Errorf("%w: %s=%d", ErrCurlOutOfRange, fingerNames[i], v)
		}
	}
	return nil
}

// Values returns the curls in wire order (thumb to pinky).
func (c Curls) Values() [5]int16 {
	return [5]int16{c.Thumb, c.Index, c.Middle, c.Ring, c.Pinky}
}

var fingerNames = [5]string{"thumb", "index", "middle", "ring", "pinky"}

// Frame is one force-feedback command: the target curl state for one hand.
// Frames are values; two frames are the same command iff they are ==.
type Frame struct {
	ThumbCurl  int16
	IndexCurl  int16
	MiddleCurl int16
	RingCurl   int16
	PinkyCurl  int16
	Hand       Hand
}

// NewFrame builds the frame that applies curls to hand.
func NewFrame(hand Hand, c Curls) Frame {
	return Frame{
		ThumbCurl:  c.Thumb,
		IndexCurl:  c.Index,
		MiddleCurl: c.Middle,
		RingCurl:   c.Ring,
		PinkyCurl:  c.Pinky,
		Hand:       hand,
	}
}

// RelaxFrame returns the all-zero frame for hand.
func RelaxFrame(hand Hand) Frame {
	return Frame{Hand: hand}
}

// Curls returns the finger targets carried by f.
func (f Frame) Curls() Curls {
	return Curls{
		Thumb:  f.ThumbCurl,
		Index:  f.IndexCurl,
		Middle: f.MiddleCurl,
		Ring:   f.RingCurl,
		Pinky:  f.PinkyCurl,
	}
}

// IsRelax reports whether every curl in f is zero.
func (f Frame) IsRelax() bool {
	return f.Curls() == Curls{}
}

// HandState is the per-hand feedback state.
type HandState int

const (
	Relaxed HandState = iota
	Primed
)

// String returns a human-readable representation of the state.
func (s HandState) String() string {
	switch s {
	case Relaxed:
		return "Relaxed"
	case Primed:
		return "Primed"
	default:
		return "Unknown"
	}
}
