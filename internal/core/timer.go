package core

import "time"

// Stopwatch measures the time spent in consecutive pipeline stages. Readings
// are only ever logged; nothing generated depends on them.
type Stopwatch struct {
	start time.Time
	lap   time.Time
}

// NewStopwatch starts a stopwatch.
func NewStopwatch() *Stopwatch {
	now := time.Now()
	return &Stopwatch{start: now, lap: now}
}

// Lap returns the time elapsed since the previous lap and starts a new one.
func (s *Stopwatch) Lap() time.Duration {
	now := time.Now()
	d := now.Sub(s.lap)
	s.lap = now
	return d
}

// Total returns the time elapsed since the stopwatch started.
func (s *Stopwatch) Total() time.Duration {
	return time.Since(s.start)
}
