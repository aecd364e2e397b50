package present

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/galaview/gala-presenter/internal/model"
)

// LoadFunc fetches and builds a fresh slide sequence
type LoadFunc func(ctx context.Context) ([]model.Slide, error)

// Refresher periodically reloads the slide sequence and hands it to the
// controller. Ticks are serialized: while a load is in flight, further
// ticks are skipped, so a slow source never stacks requests. Failed loads
// and empty results are logged and discarded; the presentation keeps its
// last good sequence either way.
type Refresher struct {
	controller *Controller
	load       LoadFunc
	interval   time.Duration

	// apply marshals the sequence swap onto the UI thread. Defaults to a
	// direct call when unset.
	apply func(func())

	mu       sync.Mutex
	inFlight bool
	stop     chan struct{}
}

// NewRefresher creates a refresh loop for the given controller
func NewRefresher(controller *Controller, load LoadFunc, interval time.Duration) *Refresher {
	return &Refresher{
		controller: controller,
		load:       load,
		interval:   interval,
	}
}

// SetApplyFunc sets the function used to marshal sequence swaps onto the
// UI thread
func (r *Refresher) SetApplyFunc(apply func(func())) {
	r.apply = apply
}

// Start launches the refresh loop. The first reload happens one full
// interval after the start, not immediately. Calling Start on a running
// refresher does nothing.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	if r.stop != nil {
		r.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	r.stop = stop
	r.mu.Unlock()

	go r.run(ctx, stop)
}

// Stop halts the refresh loop. A load already in flight finishes on its
// own; its result is still applied.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stop != nil {
		close(r.stop)
		r.stop = nil
	}
}

func (r *Refresher) run(ctx context.Context, stop chan struct{}) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

// tick performs one reload unless a previous one is still running
func (r *Refresher) tick(ctx context.Context) {
	r.mu.Lock()
	if r.inFlight {
		r.mu.Unlock()
		log.Printf("Refresh skipped, previous reload still in flight")
		return
	}
	r.inFlight = true
	r.mu.Unlock()

	go func() {
		defer func() {
			r.mu.Lock()
			r.inFlight = false
			r.mu.Unlock()
		}()

		slides, err := r.load(ctx)
		if err != nil {
			log.Printf("Refresh failed: %v", err)
			return
		}
		if len(slides) == 0 {
			log.Printf("Refresh produced no slides, keeping current sequence")
			return
		}

		swap := func() { r.controller.Replace(slides) }
		if r.apply != nil {
			r.apply(swap)
		} else {
			swap()
		}
	}()
}
