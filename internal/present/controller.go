package present

import (
	"errors"
	"sync"

	"github.com/galaview/gala-presenter/internal/model"
)

// ErrNoSlides is returned when the presentation is started with an empty
// slide sequence
var ErrNoSlides = errors.New("no slides to present")

// Controller is the navigation state machine. Before Start it only stores
// the slide sequence; once started it tracks the current position, clamps
// movement at both ends, and re-renders on every successful change.
type Controller struct {
	mu       sync.Mutex
	renderer Renderer
	slides   []model.Slide
	index    int
	started  bool
}

// NewController creates a controller that renders through the given renderer
func NewController(renderer Renderer) *Controller {
	return &Controller{renderer: renderer}
}

// SetSlides stores the slide sequence. Before Start this simply replaces
// the stored sequence; after Start use Replace so the position survives.
func (c *Controller) SetSlides(slides []model.Slide) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slides = slides
}

// Started reports whether the presentation is active
func (c *Controller) Started() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}

// Len returns the current slide count
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slides)
}

// Current returns the displayed slide and its position. The second value
// is false before Start or when the sequence is empty.
func (c *Controller) Current() (model.Slide, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started || len(c.slides) == 0 {
		return model.Slide{}, 0, false
	}
	return c.slides[c.index], c.index, true
}

// Start activates the presentation at the first slide. Starting with an
// empty sequence fails with ErrNoSlides and leaves the controller inactive.
func (c *Controller) Start() error {
	c.mu.Lock()
	if len(c.slides) == 0 {
		c.mu.Unlock()
		return ErrNoSlides
	}
	c.started = true
	c.index = 0
	c.mu.Unlock()

	c.render()
	return nil
}

// Next advances one slide. At the last slide it does nothing, no wrap.
func (c *Controller) Next() {
	c.move(+1)
}

// Previous moves one slide back. At the first slide it does nothing.
func (c *Controller) Previous() {
	c.move(-1)
}

// First jumps to the first slide
func (c *Controller) First() {
	c.jump(0)
}

// Last jumps to the last slide
func (c *Controller) Last() {
	c.mu.Lock()
	target := len(c.slides) - 1
	c.mu.Unlock()
	c.jump(target)
}

func (c *Controller) move(delta int) {
	c.mu.Lock()
	if !c.started {
		c.mu.Unlock()
		return
	}
	target := c.index + delta
	if target < 0 || target >= len(c.slides) {
		c.mu.Unlock()
		return
	}
	c.index = target
	c.mu.Unlock()

	c.render()
}

func (c *Controller) jump(target int) {
	c.mu.Lock()
	if !c.started || target < 0 || target >= len(c.slides) || target == c.index {
		c.mu.Unlock()
		return
	}
	c.index = target
	c.mu.Unlock()

	c.render()
}

// Replace swaps in a freshly built sequence. An empty replacement is
// discarded so a bad refresh never blanks the presentation. The position
// is remapped by slide identity; when the displayed slide no longer
// exists, the index is clamped into the new range. Returns whether the
// replacement was applied.
func (c *Controller) Replace(slides []model.Slide) bool {
	if len(slides) == 0 {
		return false
	}

	c.mu.Lock()
	if !c.started {
		c.slides = slides
		c.mu.Unlock()
		return true
	}

	key := c.slides[c.index].Key()
	c.slides = slides
	c.index = findByKey(slides, key, c.index)
	c.mu.Unlock()

	c.render()
	return true
}

// findByKey locates the slide with the given identity, falling back to the
// previous index clamped into the new range
func findByKey(slides []model.Slide, key string, previous int) int {
	for i, s := range slides {
		if s.Key() == key {
			return i
		}
	}
	if previous >= len(slides) {
		return len(slides) - 1
	}
	if previous < 0 {
		return 0
	}
	return previous
}

// render pushes the current slide to the renderer. Called without the lock
// held so the renderer may call back into the controller.
func (c *Controller) render() {
	c.mu.Lock()
	if !c.started || len(c.slides) == 0 {
		c.mu.Unlock()
		return
	}
	slide, index, total := c.slides[c.index], c.index, len(c.slides)
	c.mu.Unlock()

	if c.renderer != nil {
		c.renderer.RenderSlide(slide, index, total)
	}
}
