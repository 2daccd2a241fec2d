package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tenkey/internal/charset"
	"github.com/verte-zerg/tenkey/internal/engine"
	"github.com/verte-zerg/tenkey/internal/model"
)

type scriptSource struct {
	symbols []rune
	next    int
}

func (s *scriptSource) Next() rune {
	r := s.symbols[s.next%len(s.symbols)]
	s.next++
	return r
}

func mustCharset(t *testing.T, name string) charset.Charset {
	t.Helper()
	cs, err := charset.ByName(name)
	if err != nil {
		t.Fatalf("expected charset %q, got error: %v", name, err)
	}
	return cs
}

func newScriptedModel(t *testing.T, seq string) *Model {
	t.Helper()
	cs := mustCharset(t, "digits")
	cfg := model.Config{Charset: "digits", Radius: 2, Refresh: 200 * time.Millisecond}
	eng := engine.New(cs, cfg.Radius, &scriptSource{symbols: []rune(seq)})
	return NewModel(cfg, eng)
}

func windowSymbols(m *Model) string {
	out := make([]rune, 0, len(m.cells))
	for _, c := range m.cells {
		out = append(out, c.Symbol)
	}
	return string(out)
}

func TestHandleRuneRecordsTally(t *testing.T) {
	m := newScriptedModel(t, "371948")

	m.handleRune('3')
	if entry := m.tallies['3']; entry == nil || entry.hits != 1 {
		t.Fatalf("expected one hit for '3', got %+v", entry)
	}

	m.handleRune('8')
	entry := m.tallies['7']
	if entry == nil || entry.misses != 1 {
		t.Fatalf("expected the miss recorded under the expected key '7', got %+v", entry)
	}
	if m.view.Correct != 1 || m.view.Total != 2 {
		t.Fatalf("expected counters 1/2, got %d/%d", m.view.Correct, m.view.Total)
	}
}

func TestHandleRuneHotkeyRestartsSession(t *testing.T) {
	m := newScriptedModel(t, "371948")

	m.handleRune('3')
	if m.view.Total != 1 {
		t.Fatalf("expected one typed symbol, got %d", m.view.Total)
	}

	m.handleRune('r')
	if m.view.Total != 0 {
		t.Fatalf("expected restart to clear counters, got total %d", m.view.Total)
	}
	if len(m.tallies) != 0 {
		t.Fatalf("expected restart to clear tallies, got %d entries", len(m.tallies))
	}
	if m.mode != modePractice {
		t.Fatalf("expected practice mode after restart, got %d", m.mode)
	}
}

func TestHandleRuneHotkeyOpensSettings(t *testing.T) {
	m := newScriptedModel(t, "371948")

	m.handleRune('s')
	if m.mode != modeSettings {
		t.Fatalf("expected settings mode, got %d", m.mode)
	}
	if m.engine.Active() {
		t.Fatal("expected the session to be stopped while settings are open")
	}
}

func TestEscShowsResult(t *testing.T) {
	m := newScriptedModel(t, "371948")
	m.handleRune('3')

	m.updatePractice(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeResult {
		t.Fatalf("expected result mode, got %d", m.mode)
	}
	if m.engine.Active() {
		t.Fatal("expected the session to be stopped")
	}
	if m.view.Total != 1 {
		t.Fatalf("expected the frozen counters to survive, got total %d", m.view.Total)
	}
}

func TestBackspaceIsIgnored(t *testing.T) {
	m := newScriptedModel(t, "371948")
	m.handleRune('3')
	before := windowSymbols(m)

	m.updatePractice(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.view.Total != 1 {
		t.Fatalf("expected counters untouched, got total %d", m.view.Total)
	}
	if got := windowSymbols(m); got != before {
		t.Fatalf("expected window %q untouched, got %q", before, got)
	}
}

func TestCtrlCQuitsAndFreezes(t *testing.T) {
	m := newScriptedModel(t, "371948")
	m.handleRune('3')

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
	if m.engine.Active() {
		t.Fatal("expected the session to be frozen before quitting")
	}
}

func TestResultKeysRestartAndQuit(t *testing.T) {
	m := newScriptedModel(t, "371948")
	m.handleRune('3')
	m.stopSession()

	m.updateResult(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.mode != modePractice {
		t.Fatalf("expected practice mode after restart, got %d", m.mode)
	}
	if !m.engine.Active() {
		t.Fatal("expected a fresh active session")
	}

	m.stopSession()
	_, cmd := m.updateResult(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestTickRearmsTimer(t *testing.T) {
	m := newScriptedModel(t, "371948")

	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected the tick command to re-arm")
	}
}

func TestWindowSizeSizesViewport(t *testing.T) {
	m := newScriptedModel(t, "371948")

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.width != 100 || m.height != 30 {
		t.Fatalf("expected size 100x30, got %dx%d", m.width, m.height)
	}
	if m.resultView.Width != 100 || m.resultView.Height != 28 {
		t.Fatalf("expected viewport 100x28, got %dx%d", m.resultView.Width, m.resultView.Height)
	}
}

func TestSampleRateMeasuresBetweenTicks(t *testing.T) {
	m := newScriptedModel(t, "371948")
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	m.sampleRate(start)
	if len(m.samples) != 0 {
		t.Fatalf("expected the first tick to only prime, got %d samples", len(m.samples))
	}

	m.view.Total = 30
	m.sampleRate(start.Add(time.Minute))
	if len(m.samples) != 1 {
		t.Fatalf("expected one sample, got %d", len(m.samples))
	}
	if m.samples[0] != 30.0 {
		t.Fatalf("expected 30 per minute, got %f", m.samples[0])
	}
}

func TestSummaryEmptyWithoutInput(t *testing.T) {
	m := newScriptedModel(t, "371948")

	if _, ok := m.Summary(); ok {
		t.Fatal("expected no summary for an untouched session")
	}
}

func TestSummaryReportsSession(t *testing.T) {
	m := newScriptedModel(t, "371948")
	m.handleRune('3')
	m.handleRune('7')
	m.handleRune('5')
	m.finish()

	sum, ok := m.Summary()
	if !ok {
		t.Fatal("expected a summary")
	}
	if sum.Correct != 2 || sum.Total != 3 {
		t.Fatalf("expected 2/3, got %d/%d", sum.Correct, sum.Total)
	}
	if len(sum.Keys) != 3 {
		t.Fatalf("expected three per-key rows, got %d", len(sum.Keys))
	}
}
