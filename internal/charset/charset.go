// Package charset defines the symbol sets available for practice.
package charset

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const (
	digitSymbols  = "0123456789"
	numpadSymbols = digitSymbols + "+-*/" + "."
)

// Charset is an ordered, duplicate-free set of practice symbols.
// The zero value is empty; use the constructors.
type Charset struct {
	name    string
	symbols []rune
	members map[rune]struct{}
}

// Digits returns the ten decimal digit symbols.
func Digits() Charset {
	return build("digits", []rune(digitSymbols))
}

// Numpad returns the full numeric keypad set: digits, the four
// arithmetic operators, and the decimal point.
func Numpad() Charset {
	return build("numpad", []rune(numpadSymbols))
}

// Names lists the preset names accepted by ByName.
func Names() []string {
	return []string{"digits", "numpad"}
}

// ByName resolves a preset charset by name.
func ByName(name string) (Charset, error) {
	switch strings.TrimSpace(strings.ToLower(name)) {
	case "digits":
		return Digits(), nil
	case "numpad":
		return Numpad(), nil
	default:
		return Charset{}, fmt.Errorf("unknown charset %q (available: %s)", name, strings.Join(Names(), ", "))
	}
}

// Custom builds a charset from an explicit symbol string. Duplicates
// are dropped, order is kept, and every symbol must be a printable
// single-cell character.
func Custom(symbols string) (Charset, error) {
	seen := map[rune]struct{}{}
	out := make([]rune, 0, len(symbols))
	for _, r := range symbols {
		if unicode.IsSpace(r) {
			return Charset{}, fmt.Errorf("charset must not contain whitespace")
		}
		if !unicode.IsPrint(r) {
			return Charset{}, fmt.Errorf("charset symbol %q is not printable", r)
		}
		if runewidth.RuneWidth(r) != 1 {
			return Charset{}, fmt.Errorf("charset symbol %q is not a single-cell character", r)
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	if len(out) == 0 {
		return Charset{}, fmt.Errorf("charset must not be empty")
	}
	return build("custom", out), nil
}

func build(name string, symbols []rune) Charset {
	members := make(map[rune]struct{}, len(symbols))
	for _, r := range symbols {
		members[r] = struct{}{}
	}
	return Charset{name: name, symbols: symbols, members: members}
}

// Name returns the preset name, or "custom" for explicit sets.
func (c Charset) Name() string {
	return c.name
}

// Symbols returns a copy of the symbols in order.
func (c Charset) Symbols() []rune {
	return append([]rune(nil), c.symbols...)
}

// Len returns the number of symbols.
func (c Charset) Len() int {
	return len(c.symbols)
}

// Contains reports whether r is a member of the charset.
func (c Charset) Contains(r rune) bool {
	_, ok := c.members[r]
	return ok
}

// String returns the symbols joined into a single string.
func (c Charset) String() string {
	return string(c.symbols)
}
