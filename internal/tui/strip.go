// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tenkey/internal/engine"
)

// cellWidth is the printed width of one strip cell.
const cellWidth = 3

var statusStyles = map[engine.Status]lipgloss.Style{
	engine.StatusCorrect:   correctStyle,
	engine.StatusIncorrect: incorrectStyle,
	engine.StatusCurrent:   currentStyle,
	engine.StatusFuture:    futureStyle,
}

// renderStrip renders the practice window as one line of fixed-width
// cells, one per window symbol.
func renderStrip(cells []engine.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = renderCell(c)
	}
	return strings.Join(parts, " ")
}

func renderCell(c engine.Cell) string {
	style, ok := statusStyles[c.Status]
	if !ok {
		style = futureStyle
	}
	return style.Render(padSymbol(c.Symbol, cellWidth))
}

// padSymbol centers a symbol in a cell of the given printed width.
func padSymbol(r rune, width int) string {
	w := runewidth.RuneWidth(r)
	if w >= width {
		return string(r)
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + string(r) + strings.Repeat(" ", right)
}

func (m *Model) renderStatLine() string {
	segments := []string{
		statSegment("Set", m.cs.Name()),
		statSegment("Accuracy", fmt.Sprintf("%.1f%%", m.view.Accuracy)),
		statSegment("CPM", fmt.Sprintf("%.1f", m.view.PerMin)),
		statSegment("Keys", fmt.Sprintf("%d/%d", m.view.Correct, m.view.Total)),
		statSegment("Time", formatElapsed(m.view.Elapsed)),
	}
	return strings.Join(segments, "   ")
}

func statSegment(label, value string) string {
	return statLabelStyle.Render(label+" ") + statValueStyle.Render(value)
}

func formatElapsed(d time.Duration) string {
	if d >= time.Minute {
		return d.Truncate(time.Second).String()
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
