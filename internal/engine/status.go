// Package engine implements the sliding-window typing session.
package engine

// Status classifies one window position for display.
type Status int

const (
	// StatusCorrect marks a typed position that matched its target.
	StatusCorrect Status = iota
	// StatusIncorrect marks a typed position that missed its target.
	StatusIncorrect
	// StatusCurrent marks the position awaiting input.
	StatusCurrent
	// StatusFuture marks positions beyond the cursor.
	StatusFuture
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	case StatusCurrent:
		return "current"
	case StatusFuture:
		return "future"
	default:
		return "unknown"
	}
}
