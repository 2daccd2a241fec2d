// Package engine implements the sliding-window typing session.
package engine

import (
	"time"

	"github.com/verte-zerg/tenkey/internal/charset"
)

// DefaultRadius is the number of context symbols kept on each side of
// the cursor.
const DefaultRadius = 2

// Source yields practice symbols. Implementations must tolerate an
// unbounded number of calls.
type Source interface {
	Next() rune
}

// Cell pairs a window symbol with its display status.
type Cell struct {
	Symbol rune
	Status Status
}

// Engine drives one typing session over a sliding window of 2*radius+1
// symbols. It is not safe for concurrent use.
type Engine struct {
	cs     charset.Charset
	radius int
	src    Source

	target []rune
	typed  []rune
	cursor int
	stats  Stats
	active bool
}

// New returns an inactive engine. A non-positive radius falls back to
// DefaultRadius.
func New(cs charset.Charset, radius int, src Source) *Engine {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &Engine{cs: cs, radius: radius, src: src}
}

// Start begins a fresh session, discarding any prior window and stats.
func (e *Engine) Start() {
	e.stats.Reset()
	e.seed()
	e.stats.Start(time.Now())
	e.active = true
}

// Stop ends the session and freezes elapsed time. Stopping an inactive
// engine changes nothing.
func (e *Engine) Stop() {
	if !e.active {
		return
	}
	e.active = false
	e.stats.Tick(time.Now())
}

// Reset returns the engine to its just-constructed state. If a session
// was running, a fresh one starts immediately.
func (e *Engine) Reset() {
	if e.active {
		e.Start()
		return
	}
	e.stats.Reset()
	e.target = nil
	e.typed = nil
	e.cursor = 0
}

// Active reports whether a session is running.
func (e *Engine) Active() bool {
	return e.active
}

// Radius returns the configured context radius.
func (e *Engine) Radius() int {
	return e.radius
}

// Charset returns the symbol set the engine scores against.
func (e *Engine) Charset() charset.Charset {
	return e.cs
}

// ProcessInput scores one keystroke against the symbol under the
// cursor. It reports false and mutates nothing when no session is
// running or when r is outside the charset.
func (e *Engine) ProcessInput(r rune) bool {
	if !e.active || !e.cs.Contains(r) {
		return false
	}
	e.typed = append(e.typed, r)
	e.stats.Record(r == e.target[e.cursor])
	e.cursor++
	e.stats.Tick(time.Now())
	if e.cursor >= e.radius+1 {
		e.slide()
	}
	return true
}

// slide drops the oldest window entry and appends a fresh symbol, so
// the cursor keeps radius symbols of context behind and ahead.
func (e *Engine) slide() {
	copy(e.target, e.target[1:])
	e.target[len(e.target)-1] = e.src.Next()
	copy(e.typed, e.typed[1:])
	e.typed = e.typed[:len(e.typed)-1]
	e.cursor--
}

// Snapshot returns the window cells and current statistics. Elapsed
// time advances while the session runs and stays frozen after Stop.
func (e *Engine) Snapshot() ([]Cell, View) {
	if e.active {
		e.stats.Tick(time.Now())
	}
	cells := make([]Cell, len(e.target))
	for i, symbol := range e.target {
		cells[i] = Cell{Symbol: symbol, Status: e.statusAt(i)}
	}
	return cells, e.stats.View()
}

func (e *Engine) statusAt(i int) Status {
	switch {
	case i == e.cursor:
		return StatusCurrent
	case i > e.cursor || i >= len(e.typed):
		return StatusFuture
	case e.typed[i] == e.target[i]:
		return StatusCorrect
	default:
		return StatusIncorrect
	}
}

func (e *Engine) seed() {
	size := 2*e.radius + 1
	e.target = make([]rune, size)
	for i := range e.target {
		e.target[i] = e.src.Next()
	}
	e.typed = e.typed[:0]
	e.cursor = 0
}
