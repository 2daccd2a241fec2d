package generator

import (
	"testing"

	"github.com/verte-zerg/tenkey/internal/charset"
)

func TestNextStaysInCharset(t *testing.T) {
	cs := charset.Numpad()
	g := New(cs)
	for i := 0; i < 1000; i++ {
		r := g.Next()
		if !cs.Contains(r) {
			t.Fatalf("draw %d: %q is outside the charset", i, r)
		}
	}
}

func TestNextCoversSmallCharset(t *testing.T) {
	cs, err := charset.Custom("01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := New(cs)
	seen := map[rune]bool{}
	for i := 0; i < 200; i++ {
		seen[g.Next()] = true
	}
	if !seen['0'] || !seen['1'] {
		t.Fatalf("expected both symbols to appear, got %v", seen)
	}
}
