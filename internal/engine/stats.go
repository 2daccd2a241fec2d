// Package engine implements the sliding-window typing session.
package engine

import "time"

// Stats accumulates per-session counters and timing.
type Stats struct {
	correct   int
	total     int
	startedAt time.Time
	elapsed   time.Duration
}

// View is a read-only snapshot of session statistics.
type View struct {
	Correct  int
	Total    int
	Elapsed  time.Duration
	Accuracy float64
	PerMin   float64
}

// Reset clears all counters and timing.
func (s *Stats) Reset() {
	*s = Stats{}
}

// Start records the session start instant.
func (s *Stats) Start(now time.Time) {
	s.startedAt = now
}

// Record counts one typed symbol.
func (s *Stats) Record(correct bool) {
	s.total++
	if correct {
		s.correct++
	}
}

// Tick recomputes elapsed time against now. Before Start it does nothing.
func (s *Stats) Tick(now time.Time) {
	if s.startedAt.IsZero() {
		return
	}
	s.elapsed = now.Sub(s.startedAt)
}

// Accuracy returns the percentage of correct symbols, or 0 before any input.
func (s *Stats) Accuracy() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.correct) / float64(s.total) * 100
}

// PerMinute returns typed symbols per minute, or 0 without elapsed time.
func (s *Stats) PerMinute() float64 {
	if s.elapsed <= 0 {
		return 0
	}
	return float64(s.total) / s.elapsed.Minutes()
}

// View returns the derived statistics for display.
func (s *Stats) View() View {
	return View{
		Correct:  s.correct,
		Total:    s.total,
		Elapsed:  s.elapsed,
		Accuracy: s.Accuracy(),
		PerMin:   s.PerMinute(),
	}
}
