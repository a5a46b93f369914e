package form

import "time"

// TweenDuration is how long a label takes to float up or settle back.
const TweenDuration = 200 * time.Millisecond

// Animator drives one label's progress between 0 (resting) and 1 (floated)
// with a linear tween. Time is passed in by the caller so the UI clock, not a
// goroutine, advances the animation.
//
// The zero value is a settled animator at 0.
type Animator struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
}

// NewAnimator returns an animator resting at 0.
func NewAnimator() *Animator {
	return &Animator{duration: TweenDuration}
}

// Retarget points the tween at 1 when hasContent is true and at 0 otherwise.
// A new tween starts from the value currently on screen, so redirecting a
// tween in flight never snaps. Retargeting to the endpoint already being
// approached leaves the running tween alone.
func (a *Animator) Retarget(hasContent bool, now time.Time) {
	target := 0.0
	if hasContent {
		target = 1.0
	}
	if target == a.to {
		return
	}

	a.from = a.Progress(now)
	a.to = target
	a.start = now
}

// Progress returns the interpolated value at now, always within [0,1].
func (a *Animator) Progress(now time.Time) float64 {
	if a.start.IsZero() {
		return a.to
	}

	elapsed := now.Sub(a.start)
	d := a.tweenDuration()
	if elapsed >= d {
		return a.to
	}
	if elapsed <= 0 {
		return a.from
	}

	t := float64(elapsed) / float64(d)
	return a.from + (a.to-a.from)*t
}

// Target returns the endpoint the animator is heading to.
func (a *Animator) Target() float64 {
	return a.to
}

// Settled reports whether the animator has reached its endpoint.
func (a *Animator) Settled(now time.Time) bool {
	return a.start.IsZero() || now.Sub(a.start) >= a.tweenDuration()
}

func (a *Animator) tweenDuration() time.Duration {
	if a.duration <= 0 {
		return TweenDuration
	}
	return a.duration
}
