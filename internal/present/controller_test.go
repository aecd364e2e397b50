package present

import (
	"sync"
	"testing"

	"github.com/galaview/gala-presenter/internal/model"
)

// recordingRenderer captures every render call
type recordingRenderer struct {
	mu     sync.Mutex
	slides []model.Slide
	totals []int
}

func (r *recordingRenderer) RenderSlide(slide model.Slide, index, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slides = append(r.slides, slide)
	r.totals = append(r.totals, total)
}

func (r *recordingRenderer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slides)
}

func (r *recordingRenderer) last() model.Slide {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slides[len(r.slides)-1]
}

func kindSlides(titles ...string) []model.Slide {
	slides := make([]model.Slide, len(titles))
	for i, title := range titles {
		slides[i] = model.Slide{Type: model.SlideKind, KindTitle: title}
	}
	return slides
}

func TestController_StartEmpty(t *testing.T) {
	c := NewController(&recordingRenderer{})
	if err := c.Start(); err != ErrNoSlides {
		t.Errorf("expected ErrNoSlides, got %v", err)
	}
	if c.Started() {
		t.Error("failed start must leave the controller inactive")
	}
}

func TestController_StartRendersFirstSlide(t *testing.T) {
	renderer := &recordingRenderer{}
	c := NewController(renderer)
	c.SetSlides(kindSlides("A", "B", "C"))

	if err := c.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renderer.count() != 1 {
		t.Fatalf("expected exactly one render, got %d", renderer.count())
	}
	if renderer.last().KindTitle != "A" {
		t.Errorf("expected first slide, got %q", renderer.last().KindTitle)
	}
}

func TestController_NavigationClampsAtEnds(t *testing.T) {
	renderer := &recordingRenderer{}
	c := NewController(renderer)
	c.SetSlides(kindSlides("A", "B"))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}

	// At the first slide, Previous is a no-op and must not re-render
	c.Previous()
	if renderer.count() != 1 {
		t.Errorf("Previous at start must not render, got %d renders", renderer.count())
	}

	c.Next()
	if renderer.last().KindTitle != "B" {
		t.Errorf("expected slide B, got %q", renderer.last().KindTitle)
	}

	// At the last slide, Next is a no-op, no wrap-around
	c.Next()
	if renderer.count() != 2 {
		t.Errorf("Next at end must not render, got %d renders", renderer.count())
	}
	if _, index, ok := c.Current(); !ok || index != 1 {
		t.Errorf("expected to stay at index 1, got %d", index)
	}
}

func TestController_FirstLast(t *testing.T) {
	renderer := &recordingRenderer{}
	c := NewController(renderer)
	c.SetSlides(kindSlides("A", "B", "C", "D"))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}

	c.Last()
	if renderer.last().KindTitle != "D" {
		t.Errorf("expected last slide, got %q", renderer.last().KindTitle)
	}
	c.First()
	if renderer.last().KindTitle != "A" {
		t.Errorf("expected first slide, got %q", renderer.last().KindTitle)
	}

	// Jumping to the current position must not re-render
	before := renderer.count()
	c.First()
	if renderer.count() != before {
		t.Error("First at first slide must not render")
	}
}

func TestController_NavigationBeforeStart(t *testing.T) {
	renderer := &recordingRenderer{}
	c := NewController(renderer)
	c.SetSlides(kindSlides("A", "B"))

	c.Next()
	c.Last()
	if renderer.count() != 0 {
		t.Errorf("navigation before start must do nothing, got %d renders", renderer.count())
	}
}

func TestController_ReplacePreservesPositionByKey(t *testing.T) {
	renderer := &recordingRenderer{}
	c := NewController(renderer)
	c.SetSlides(kindSlides("A", "B", "C"))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	c.Next() // on B

	// New sequence has an extra slide before B
	if !c.Replace(kindSlides("A", "X", "B", "C")) {
		t.Fatal("replacement rejected")
	}
	slide, index, ok := c.Current()
	if !ok || slide.KindTitle != "B" || index != 2 {
		t.Errorf("expected to stay on B at index 2, got %q at %d", slide.KindTitle, index)
	}
	if renderer.last().KindTitle != "B" {
		t.Errorf("replacement must re-render, last render %q", renderer.last().KindTitle)
	}
}

func TestController_ReplaceClampsWhenSlideGone(t *testing.T) {
	c := NewController(&recordingRenderer{})
	c.SetSlides(kindSlides("A", "B", "C"))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	c.Last() // on C, index 2

	c.Replace(kindSlides("X", "Y"))
	_, index, ok := c.Current()
	if !ok || index != 1 {
		t.Errorf("expected clamp to last index 1, got %d", index)
	}
}

func TestController_ReplaceDiscardsEmpty(t *testing.T) {
	c := NewController(&recordingRenderer{})
	c.SetSlides(kindSlides("A"))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}

	if c.Replace(nil) {
		t.Error("empty replacement must be discarded")
	}
	if c.Len() != 1 {
		t.Errorf("sequence must survive an empty replacement, got %d slides", c.Len())
	}
}

func TestController_ReplaceBeforeStart(t *testing.T) {
	renderer := &recordingRenderer{}
	c := NewController(renderer)
	c.SetSlides(kindSlides("A"))

	if !c.Replace(kindSlides("X", "Y")) {
		t.Fatal("replacement rejected")
	}
	if renderer.count() != 0 {
		t.Error("replacement before start must not render")
	}
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	if renderer.last().KindTitle != "X" {
		t.Errorf("expected replaced sequence, got %q", renderer.last().KindTitle)
	}
}
