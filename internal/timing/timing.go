// Package timing provides a small harness for measuring single
// operations against an injectable clock.
//
// The demo wraps each algorithm call in a measurement and reports the
// elapsed wall time in milliseconds. The clock behind the measurement
// is an interface so tests (and golden transcripts) can substitute a
// deterministic source and get byte-stable elapsed values.
package timing

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// WallClock reads the system clock. The zero value is ready to use.
type WallClock struct{}

// Now returns the current system time.
func (WallClock) Now() time.Time {
	return time.Now()
}

// Timer measures operations against an injected Clock.
type Timer struct {
	clock Clock
}

// New creates a Timer using the given clock.
// A nil clock defaults to WallClock.
func New(clock Clock) *Timer {
	if clock == nil {
		clock = WallClock{}
	}
	return &Timer{clock: clock}
}

// Measure runs fn and returns the time fn alone took. Nothing outside
// fn (logging, result handling) lands inside the measured interval.
func (t *Timer) Measure(fn func()) time.Duration {
	start := t.clock.Now()
	fn()
	return t.clock.Now().Sub(start)
}

// MeasureValue runs fn and returns its result alongside the elapsed
// time. Free function because Go methods cannot be generic.
func MeasureValue[T any](t *Timer, fn func() T) (T, time.Duration) {
	start := t.clock.Now()
	v := fn()
	return v, t.clock.Now().Sub(start)
}

// Millis converts d to fractional milliseconds for reporting.
// Sub-millisecond resolution survives the conversion.
func Millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
