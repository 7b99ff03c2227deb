package perf

import (
	"time"
)

// StopWatch accumulates the duration of timed sections.
type StopWatch struct {
	Count int
	Total time.Duration
}

func (t *StopWatch) TimeIt(fn func()) (duration time.Duration) {
	start := time.Now()
	t.Count++
	defer func() {
		duration = time.Since(start)
		t.Total += duration
	}()

	fn()
	return
}

// Rate returns items per second over the total duration.
func (t StopWatch) Rate(items int) float64 {
	if t.Total <= 0 {
		return 0
	}
	return float64(items) / t.Total.Seconds()
}
