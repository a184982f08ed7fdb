package loop

import "time"

const statsWindow = 120

// Stats tracks tick bookkeeping for the debug panel: totals, the worst
// step so far, and a sliding window of recent step durations.
type Stats struct {
	Ticks   uint64
	Last    time.Duration
	Max     time.Duration
	history []time.Duration
}

func (s *Stats) observe(d time.Duration) {
	s.Ticks++
	s.Last = d
	if d > s.Max {
		s.Max = d
	}
	s.history = append(s.history, d)
	if len(s.history) > statsWindow {
		s.history = s.history[1:]
	}
}

// History returns the recent step durations in milliseconds, oldest
// first, sized for a sparkline.
func (s Stats) History() []float64 {
	out := make([]float64, len(s.history))
	for i, d := range s.history {
		out[i] = float64(d.Microseconds()) / 1000.0
	}
	return out
}
