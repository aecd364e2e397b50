package present

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/galaview/gala-presenter/internal/model"
)

func TestRefresher_AppliesFreshSequence(t *testing.T) {
	c := NewController(&recordingRenderer{})
	c.SetSlides(kindSlides("A"))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}

	load := func(ctx context.Context) ([]model.Slide, error) {
		return kindSlides("A", "B"), nil
	}
	r := NewRefresher(c, load, 10*time.Millisecond)
	r.Start(context.Background())
	defer r.Stop()

	deadline := time.After(2 * time.Second)
	for c.Len() != 2 {
		select {
		case <-deadline:
			t.Fatal("refresh never applied the new sequence")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestRefresher_KeepsSequenceOnFailure(t *testing.T) {
	c := NewController(&recordingRenderer{})
	c.SetSlides(kindSlides("A"))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	load := func(ctx context.Context) ([]model.Slide, error) {
		calls.Add(1)
		return nil, errors.New("network down")
	}
	r := NewRefresher(c, load, 10*time.Millisecond)
	r.Start(context.Background())
	defer r.Stop()

	deadline := time.After(2 * time.Second)
	for calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("refresh loop never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}
	if c.Len() != 1 {
		t.Errorf("failed refreshes must keep the sequence, got %d slides", c.Len())
	}
}

func TestRefresher_SkipsTicksWhileInFlight(t *testing.T) {
	c := NewController(&recordingRenderer{})
	c.SetSlides(kindSlides("A"))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}

	var concurrent, maxConcurrent atomic.Int32
	load := func(ctx context.Context) ([]model.Slide, error) {
		n := concurrent.Add(1)
		defer concurrent.Add(-1)
		for {
			prev := maxConcurrent.Load()
			if n <= prev || maxConcurrent.CompareAndSwap(prev, n) {
				break
			}
		}
		time.Sleep(60 * time.Millisecond) // spans several tick intervals
		return kindSlides("A"), nil
	}
	r := NewRefresher(c, load, 10*time.Millisecond)
	r.Start(context.Background())

	time.Sleep(200 * time.Millisecond)
	r.Stop()

	if maxConcurrent.Load() > 1 {
		t.Errorf("loads overlapped, max concurrency %d", maxConcurrent.Load())
	}
}

func TestRefresher_AppliesThroughMarshaller(t *testing.T) {
	c := NewController(&recordingRenderer{})
	c.SetSlides(kindSlides("A"))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}

	var marshalled atomic.Int32
	load := func(ctx context.Context) ([]model.Slide, error) {
		return kindSlides("A", "B", "C"), nil
	}
	r := NewRefresher(c, load, 10*time.Millisecond)
	r.SetApplyFunc(func(fn func()) {
		marshalled.Add(1)
		fn()
	})
	r.Start(context.Background())
	defer r.Stop()

	deadline := time.After(2 * time.Second)
	for c.Len() != 3 {
		select {
		case <-deadline:
			t.Fatal("refresh never applied the new sequence")
		case <-time.After(5 * time.Millisecond):
		}
	}
	if marshalled.Load() == 0 {
		t.Error("swap must go through the apply function")
	}
}

func TestRefresher_StopHaltsLoop(t *testing.T) {
	c := NewController(&recordingRenderer{})
	c.SetSlides(kindSlides("A"))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	load := func(ctx context.Context) ([]model.Slide, error) {
		calls.Add(1)
		return kindSlides("A"), nil
	}
	r := NewRefresher(c, load, 10*time.Millisecond)
	r.Start(context.Background())

	time.Sleep(50 * time.Millisecond)
	r.Stop()
	time.Sleep(20 * time.Millisecond) // let an in-flight tick finish
	settled := calls.Load()

	time.Sleep(50 * time.Millisecond)
	if calls.Load() != settled {
		t.Errorf("loop kept running after Stop: %d -> %d", settled, calls.Load())
	}

	// Stop twice is safe
	r.Stop()
}
