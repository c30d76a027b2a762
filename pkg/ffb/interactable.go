package ffb

// Feedback is the subset of Service that hover collaborators call.
type Feedback interface {
	Prime(hand Hand, curls Curls) error
	HoverTick(hand Hand, curls Curls) error
	Relax(hand Hand) error
}

// Interactable connects one host object's hover callbacks to feedback.
// It carries the curl profile the hand should take around that object.
type Interactable struct {
	feedback Feedback
	curls    Curls
}

// NewInteractable binds curls to hover events delivered to f.
func NewInteractable(f Feedback, curls Curls) *Interactable {
	return &Interactable{feedback: f, curls: curls}
}

// Curls returns the object's curl profile.
func (i *Interactable) Curls() Curls {
	return i.curls
}

// OnHoverBegin primes hand as it starts hovering the object.
func (i *Interactable) OnHoverBegin(hand Hand) error {
	return i.feedback.Prime(hand, i.curls)
}

// OnHoverTick is called every host frame while hand hovers the object.
func (i *Interactable) OnHoverTick(hand Hand) error {
	return i.feedback.HoverTick(hand, i.curls)
}

// OnHoverEnd relaxes hand once it leaves the object, whether or not it
// grabbed anything.
func (i *Interactable) OnHoverEnd(hand Hand) error {
	return i.feedback.Relax(hand)
}
