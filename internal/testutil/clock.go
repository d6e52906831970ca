// Package testutil provides deterministic helpers for tests: a
// stepping clock for stable elapsed-time readings and a fixed run
// token source for stable transcripts.
package testutil

import (
	"sync"
	"time"
)

// StepClock is a deterministic timing.Clock for tests.
//
// Each call to Now() returns a time exactly one step after the
// previous reading, so a measurement that brackets an operation with
// two Now() calls always observes an elapsed time of one step. The
// same test therefore produces byte-identical transcripts.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex.
type StepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewStepClock creates a clock starting at a fixed epoch that advances
// by step on every reading.
func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{now: epoch(), step: step}
}

// Now advances the clock by one step and returns the new reading.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}

// Reset rewinds the clock to its starting epoch for test reuse.
func (c *StepClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = epoch()
}

func epoch() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}
