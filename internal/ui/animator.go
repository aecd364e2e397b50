package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// Animatable is one element of a slide's entrance animation. Progress runs
// from 0 (fully offset, transparent) to 1 (resting position, opaque).
type Animatable interface {
	SetEntrance(progress float32)
}

// Animator drives the entrance animation of a slide. All elements share a
// single animation; each element's progress is offset by its index, so
// they enter one after another. Starting a new slide cancels the previous
// animation mid-flight.
type Animator struct {
	current *fyne.Animation
}

// NewAnimator creates an entrance animator
func NewAnimator() *Animator {
	return &Animator{}
}

// Play starts the entrance animation over the given elements. Elements are
// first reset to their initial entrance state so a cancelled predecessor
// leaves no half-entered remains.
func (a *Animator) Play(elements []Animatable) {
	a.Cancel()
	if len(elements) == 0 {
		return
	}

	for _, el := range elements {
		el.SetEntrance(0)
	}

	total := timelineDuration(len(elements))
	anim := fyne.NewAnimation(total, func(t float32) {
		for i, el := range elements {
			el.SetEntrance(staggerProgress(t, i, len(elements)))
		}
	})
	anim.Curve = fyne.AnimationLinear // easing is applied per element

	a.current = anim
	anim.Start()
}

// Cancel stops the in-flight animation, if any
func (a *Animator) Cancel() {
	if a.current != nil {
		a.current.Stop()
		a.current = nil
	}
}

// timelineDuration is the full length of the shared animation for the
// given element count
func timelineDuration(count int) time.Duration {
	return EntranceDuration + EntranceStagger*time.Duration(count-1)
}

// staggerProgress maps the shared timeline position t (0..1) to the eased
// progress of the element at the given index. Each element occupies an
// EntranceDuration window starting EntranceStagger after its predecessor.
func staggerProgress(t float32, index, count int) float32 {
	total := float32(EntranceDuration) + float32(EntranceStagger)*float32(count-1)
	start := float32(EntranceStagger) * float32(index)

	elapsed := t*total - start
	if elapsed <= 0 {
		return 0
	}
	p := elapsed / float32(EntranceDuration)
	if p >= 1 {
		return 1
	}
	return easeOutCubic(p)
}

// easeOutCubic is the easing applied to each element's own window
func easeOutCubic(p float32) float32 {
	inv := 1 - p
	return 1 - inv*inv*inv
}
