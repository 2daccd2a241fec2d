// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Charset string
	Symbols string
	Radius  int
	Refresh time.Duration
}
