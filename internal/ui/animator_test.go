package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

type fakeElement struct {
	progress float32
	calls    int
}

func (f *fakeElement) SetEntrance(progress float32) {
	f.progress = progress
	f.calls++
}

func TestStaggerProgress_Bounds(t *testing.T) {
	for _, count := range []int{1, 2, 5} {
		for i := 0; i < count; i++ {
			if p := staggerProgress(0, i, count); p != 0 {
				t.Errorf("t=0: element %d of %d expected 0, got %v", i, count, p)
			}
			if p := staggerProgress(1, i, count); p != 1 {
				t.Errorf("t=1: element %d of %d expected 1, got %v", i, count, p)
			}
		}
	}
}

func TestStaggerProgress_LaterElementsLag(t *testing.T) {
	// Midway through the timeline an earlier element must never be behind
	// a later one
	for _, tt := range []float32{0.1, 0.3, 0.5, 0.7, 0.9} {
		prev := float32(2)
		for i := 0; i < 4; i++ {
			p := staggerProgress(tt, i, 4)
			if p > prev {
				t.Errorf("t=%v: element %d (%v) ahead of element %d (%v)", tt, i, p, i-1, prev)
			}
			prev = p
		}
	}
}

func TestStaggerProgress_SingleElement(t *testing.T) {
	// One element uses the whole timeline with no stagger offset
	if p := staggerProgress(0.5, 0, 1); p <= 0 || p >= 1 {
		t.Errorf("expected mid-flight progress, got %v", p)
	}
}

func TestStaggerProgress_Monotonic(t *testing.T) {
	prev := float32(-1)
	for step := 0; step <= 20; step++ {
		tt := float32(step) / 20
		p := staggerProgress(tt, 2, 4)
		if p < prev {
			t.Fatalf("progress went backwards at t=%v: %v < %v", tt, p, prev)
		}
		prev = p
	}
}

func TestEaseOutCubic(t *testing.T) {
	if got := easeOutCubic(0); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := easeOutCubic(1); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
	// Ease-out front-loads movement
	if got := easeOutCubic(0.5); got <= 0.5 {
		t.Errorf("expected more than half the distance at t=0.5, got %v", got)
	}
}

func TestTimelineDuration(t *testing.T) {
	if got := timelineDuration(1); got != EntranceDuration {
		t.Errorf("single element: expected %v, got %v", EntranceDuration, got)
	}
	want := EntranceDuration + 3*EntranceStagger
	if got := timelineDuration(4); got != want {
		t.Errorf("four elements: expected %v, got %v", want, got)
	}
}

func TestAnimator_PlayResetsElements(t *testing.T) {
	test.NewApp()

	a := NewAnimator()
	elements := []Animatable{&fakeElement{progress: 1}, &fakeElement{progress: 1}}

	a.Play(elements)
	defer a.Cancel()

	// Play must put every element into its initial entrance state before
	// the first tick
	for i, el := range elements {
		fe := el.(*fakeElement)
		if fe.calls == 0 {
			t.Errorf("element %d never reset", i)
		}
	}

	time.Sleep(50 * time.Millisecond)
	a.Cancel()
}

func TestAnimator_CancelWithoutPlay(t *testing.T) {
	// Must not panic
	NewAnimator().Cancel()
}
