// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tenkey/internal/charset"
	"github.com/verte-zerg/tenkey/internal/engine"
	"github.com/verte-zerg/tenkey/internal/model"
	statsPkg "github.com/verte-zerg/tenkey/internal/stats"
)

type mode int

const (
	modePractice mode = iota
	modeResult
	modeSettings
)

const fallbackRefresh = 500 * time.Millisecond

// keyTally accumulates per-symbol results for the running session.
type keyTally struct {
	hits         int
	misses       int
	latencySumMs int64
	latencyCount int64
}

// Model implements the Bubble Tea practice UI.
type Model struct {
	config model.Config
	cs     charset.Charset
	engine *engine.Engine

	mode   mode
	width  int
	height int

	cells []engine.Cell
	view  engine.View

	samples      []float64
	lastTotal    int
	lastSampleAt time.Time

	tallies       map[rune]*keyTally
	prevCorrectAt time.Time

	resultView viewport.Model
	keyTable   table.Model

	inputs     []textinput.Model
	inputIndex int
	formError  string
}

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	futureStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A")).Background(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	statLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	statValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// NewModel constructs the practice model and starts the first session.
func NewModel(cfg model.Config, eng *engine.Engine) *Model {
	m := &Model{
		config: cfg,
		cs:     eng.Charset(),
		engine: eng,
	}
	m.resultView = viewport.New(0, 0)
	m.initInputs()
	m.startSession()
	return m
}

type tickMsg time.Time

func (m *Model) tickCmd() tea.Cmd {
	interval := m.config.Refresh
	if interval <= 0 {
		interval = fallbackRefresh
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	case tickMsg:
		if m.mode == modePractice && m.engine.Active() {
			m.refresh()
			m.sampleRate(time.Time(msg))
		}
		return m, m.tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case modeSettings:
		return m.viewSettings()
	case modeResult:
		return m.viewResult()
	default:
		return m.viewPractice()
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.finish()
		return m, tea.Quit
	}
	switch m.mode {
	case modeSettings:
		return m.updateSettings(msg)
	case modeResult:
		return m.updateResult(msg)
	default:
		return m.updatePractice(msg)
	}
}

func (m *Model) updatePractice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopSession()
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		// Typed symbols are final; there is no undo.
		return m, nil
	case tea.KeyRunes:
		var cmd tea.Cmd
		for _, r := range msg.Runes {
			cmd = m.handleRune(r)
		}
		return m, cmd
	default:
		return m, nil
	}
}

// handleRune feeds one keystroke to the engine. Keystrokes outside the
// charset fall through to the hotkeys, so hotkeys never shadow
// practice symbols.
func (m *Model) handleRune(r rune) tea.Cmd {
	expected, ok := m.expectedSymbol()
	if m.engine.ProcessInput(r) {
		if ok {
			m.recordKey(expected, r == expected)
		}
		m.refresh()
		return nil
	}
	switch r {
	case 'r', 'R':
		m.startSession()
	case 's', 'S':
		return m.openSettings()
	}
	return nil
}

func (m *Model) expectedSymbol() (rune, bool) {
	for _, c := range m.cells {
		if c.Status == engine.StatusCurrent {
			return c.Symbol, true
		}
	}
	return 0, false
}

func (m *Model) recordKey(expected rune, correct bool) {
	entry, ok := m.tallies[expected]
	if !ok {
		entry = &keyTally{}
		m.tallies[expected] = entry
	}
	if correct {
		entry.hits++
		now := time.Now()
		if !m.prevCorrectAt.IsZero() {
			delta := now.Sub(m.prevCorrectAt)
			entry.latencySumMs += delta.Milliseconds()
			entry.latencyCount++
		}
		m.prevCorrectAt = now
		return
	}
	entry.misses++
}

// sampleRate appends one instantaneous throughput sample per tick,
// measured between consecutive ticks.
func (m *Model) sampleRate(now time.Time) {
	if m.lastSampleAt.IsZero() {
		m.lastSampleAt = now
		m.lastTotal = m.view.Total
		return
	}
	dt := now.Sub(m.lastSampleAt)
	if dt <= 0 {
		return
	}
	delta := m.view.Total - m.lastTotal
	m.samples = append(m.samples, float64(delta)/dt.Minutes())
	m.lastSampleAt = now
	m.lastTotal = m.view.Total
}

func (m *Model) startSession() {
	m.engine.Start()
	m.tallies = map[rune]*keyTally{}
	m.prevCorrectAt = time.Time{}
	m.samples = nil
	m.lastTotal = 0
	m.lastSampleAt = time.Time{}
	m.mode = modePractice
	m.refresh()
}

func (m *Model) stopSession() {
	m.engine.Stop()
	m.refresh()
	m.buildResult()
	m.mode = modeResult
}

// finish freezes the session so the exit summary reports final numbers.
func (m *Model) finish() {
	m.engine.Stop()
	m.refresh()
}

func (m *Model) refresh() {
	m.cells, m.view = m.engine.Snapshot()
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.resultView.Width = m.width
	m.resultView.Height = maxInt(1, m.height-2)
	for i := range m.inputs {
		promptWidth := lipgloss.Width(m.inputs[i].Prompt)
		m.inputs[i].Width = maxInt(10, modalInnerWidth(m.width)-promptWidth)
	}
	if m.mode == modeResult {
		m.buildResult()
	}
}

// Summary reports the final session statistics for printing after the
// program exits. ok is false when nothing was typed.
func (m *Model) Summary() (statsPkg.Summary, bool) {
	if m.view.Total == 0 {
		return statsPkg.Summary{}, false
	}
	return statsPkg.Summary{
		Correct:  m.view.Correct,
		Total:    m.view.Total,
		Accuracy: m.view.Accuracy,
		PerMin:   m.view.PerMin,
		Elapsed:  m.view.Elapsed,
		Samples:  append([]float64(nil), m.samples...),
		Keys:     m.keyStats(),
	}, true
}

func (m *Model) viewPractice() string {
	body := renderStrip(m.cells) + "\n\n" + m.renderStatLine()
	if m.width == 0 || m.height == 0 {
		return body
	}
	footer := footerStyle.Render("Stop: esc  Restart: r  Settings: s  Quit: ctrl+c")
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	content := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return content + "\n" + footerLine
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
