// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	statsPkg "github.com/verte-zerg/tenkey/internal/stats"
)

const (
	trendLabel        = "CPM trend "
	trendSmoothWindow = 4
	minTrendWidth     = 10
)

var (
	resultTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	cardStyle        = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#4A4A4A")).
				Padding(0, 1).
				MarginRight(1)
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	trendStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.finish()
		return m, tea.Quit
	case "r":
		m.startSession()
		return m, nil
	case "s":
		return m, m.openSettings()
	}
	var cmd tea.Cmd
	m.resultView, cmd = m.resultView.Update(msg)
	return m, cmd
}

func (m *Model) buildResult() {
	m.keyTable = newKeyTable(m.keyStats())
	m.resultView.SetContent(m.renderResultContent())
	m.resultView.GotoTop()
}

// keyStats converts the session tallies into sorted per-key rows,
// struggling keys first.
func (m *Model) keyStats() []statsPkg.KeyStat {
	out := make([]statsPkg.KeyStat, 0, len(m.tallies))
	for r, tally := range m.tallies {
		latency := 0.0
		if tally.latencyCount > 0 {
			latency = float64(tally.latencySumMs) / float64(tally.latencyCount)
		}
		out = append(out, statsPkg.KeyStat{
			Key:       string(r),
			Hits:      tally.hits,
			Misses:    tally.misses,
			LatencyMs: latency,
		})
	}
	statsPkg.SortKeyStats(out)
	return out
}

func (m *Model) renderResultContent() string {
	parts := []string{m.renderSummaryCards()}
	if trend := m.renderTrendLine(); trend != "" {
		parts = append(parts, trend)
	}
	if len(m.tallies) > 0 {
		parts = append(parts, statLabelStyle.Render("Per-key results")+"\n"+m.keyTable.View())
	}
	return strings.Join(parts, "\n\n")
}

func (m *Model) renderSummaryCards() string {
	cards := []string{
		metricCard("Accuracy", fmt.Sprintf("%.1f%%", m.view.Accuracy)),
		metricCard("CPM", fmt.Sprintf("%.1f", m.view.PerMin)),
		metricCard("Keys", fmt.Sprintf("%d/%d", m.view.Correct, m.view.Total)),
		metricCard("Time", formatElapsed(m.view.Elapsed)),
	}
	if m.width < 72 {
		return strings.Join(cards, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(title, value string) string {
	content := cardTitleStyle.Render(title) + "\n" + cardValueStyle.Render(value)
	return cardStyle.Render(content)
}

func (m *Model) renderTrendLine() string {
	if len(m.samples) < 2 {
		return ""
	}
	width := maxInt(minTrendWidth, m.width-lipgloss.Width(trendLabel)-2)
	smoothed := statsPkg.MovingAverage(m.samples, trendSmoothWindow)
	spark := statsPkg.Sparkline(statsPkg.Resample(smoothed, width))
	return statLabelStyle.Render(trendLabel) + trendStyle.Render(spark)
}

func newKeyTable(keys []statsPkg.KeyStat) table.Model {
	columns := []table.Column{
		{Title: "Key", Width: 4},
		{Title: "Accuracy", Width: 9},
		{Title: "Avg ms", Width: 7},
		{Title: "Hit", Width: 5},
		{Title: "Miss", Width: 5},
	}
	rows := make([]table.Row, 0, len(keys))
	for _, k := range keys {
		total := k.Hits + k.Misses
		accuracy := 0.0
		if total > 0 {
			accuracy = float64(k.Hits) / float64(total) * 100
		}
		rows = append(rows, table.Row{
			k.Key,
			fmt.Sprintf("%.2f%%", accuracy),
			fmt.Sprintf("%.1f", k.LatencyMs),
			fmt.Sprintf("%d", k.Hits),
			fmt.Sprintf("%d", k.Misses),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, len(rows))),
	)
	t.SetStyles(keyTableStyles())
	return t
}

// keyTableStyles keeps the table static: no selected-row highlight,
// the surrounding viewport does the scrolling.
func keyTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell
	return styles
}

func (m *Model) viewResult() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	title := resultTitleStyle.Render("Session results")
	footer := footerStyle.Render("Restart: r  Settings: s  Quit: q/esc")
	return title + "\n" + m.resultView.View() + "\n" + footer
}
