package wm

import "time"

// DefaultTransitionDuration is how long a snap/center/close transition runs.
const DefaultTransitionDuration = 200 * time.Millisecond

// Transition moves a window's frame from one rect to another over a fixed
// duration, then runs a settle callback. Starting a new transition while one
// is in flight replaces it: the last transition wins and the replaced
// settle callback never fires.
type Transition struct {
	From     Rect
	To       Rect
	Elapsed  time.Duration
	Duration time.Duration

	seq    uint64
	settle func()
}

// Done reports whether the transition has reached its target.
func (t *Transition) Done() bool {
	return t.Elapsed >= t.Duration
}

// at returns the interpolated frame for the current elapsed time.
func (t *Transition) at() Rect {
	if t.Duration <= 0 || t.Done() {
		return t.To
	}
	p := easeOutCubic(float64(t.Elapsed) / float64(t.Duration))
	lerp := func(a, b int) int {
		return a + int(float64(b-a)*p)
	}
	return Rect{
		X:      lerp(t.From.X, t.To.X),
		Y:      lerp(t.From.Y, t.To.Y),
		Width:  lerp(t.From.Width, t.To.Width),
		Height: lerp(t.From.Height, t.To.Height),
	}
}

func easeOutCubic(p float64) float64 {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	q := 1 - p
	return 1 - q*q*q
}

// startTransition replaces any in-flight transition. The settle callback is
// bound to this transition's generation: if another transition starts before
// this one finishes, the stale settle is dropped.
func (w *Window) startTransition(to Rect, d time.Duration, settle func()) {
	w.transitionSeq++
	w.transition = &Transition{
		From:     w.Frame,
		To:       to,
		Duration: d,
		seq:      w.transitionSeq,
		settle:   settle,
	}
	if d <= 0 {
		w.stepTransition(0)
	}
}

// stepTransition advances the in-flight transition by dt and applies the
// interpolated frame. On completion the frame lands exactly on the target
// and the settle callback runs if it is still current.
func (w *Window) stepTransition(dt time.Duration) {
	t := w.transition
	if t == nil {
		return
	}
	t.Elapsed += dt
	w.Frame = t.at()
	if !t.Done() {
		return
	}
	w.Frame = t.To
	w.transition = nil
	if t.settle != nil && t.seq == w.transitionSeq {
		t.settle()
	}
}

// CompleteTransition jumps the window to its transition target immediately,
// running the settle callback. No-op when the window is at rest.
func (w *Window) CompleteTransition() {
	if w.transition != nil {
		w.stepTransition(w.transition.Duration)
	}
}

// InTransition reports whether a transition is in flight.
func (w *Window) InTransition() bool { return w.transition != nil }
