// Package generator produces random practice symbols.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/tenkey/internal/charset"
)

// Generator draws symbols uniformly at random from a charset.
type Generator struct {
	rnd     *rand.Rand
	symbols []rune
}

// New returns a Generator over cs seeded with the current time.
func New(cs charset.Charset) *Generator {
	return &Generator{
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		symbols: cs.Symbols(),
	}
}

// Next returns one symbol drawn independently of all previous draws.
func (g *Generator) Next() rune {
	return g.symbols[g.rnd.Intn(len(g.symbols))]
}
