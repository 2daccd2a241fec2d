package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestApplySettingsRebuildsEngine(t *testing.T) {
	m := newScriptedModel(t, "371948")
	m.openSettings()
	m.inputs[settingCharset].SetValue("numpad")
	m.inputs[settingSymbols].SetValue("")
	m.inputs[settingRadius].SetValue("3")
	m.inputs[settingRefresh].SetValue("250ms")

	if err := m.applySettings(); err != nil {
		t.Fatalf("expected settings to apply, got error: %v", err)
	}
	if m.config.Charset != "numpad" || m.config.Radius != 3 {
		t.Fatalf("expected numpad/3, got %s/%d", m.config.Charset, m.config.Radius)
	}
	if m.config.Refresh != 250*time.Millisecond {
		t.Fatalf("expected 250ms refresh, got %s", m.config.Refresh)
	}
	if m.engine.Radius() != 3 {
		t.Fatalf("expected a rebuilt engine with radius 3, got %d", m.engine.Radius())
	}
	if !m.cs.Contains('+') {
		t.Fatal("expected the numpad charset to be live")
	}
}

func TestApplySettingsSymbolsOverrideCharset(t *testing.T) {
	m := newScriptedModel(t, "371948")
	m.openSettings()
	m.inputs[settingCharset].SetValue("digits")
	m.inputs[settingSymbols].SetValue("abc")

	if err := m.applySettings(); err != nil {
		t.Fatalf("expected settings to apply, got error: %v", err)
	}
	if m.cs.Name() != "custom" {
		t.Fatalf("expected custom charset, got %q", m.cs.Name())
	}
	if !m.cs.Contains('a') || m.cs.Contains('3') {
		t.Fatalf("expected symbols to override the named charset, got %q", m.cs.String())
	}
}

func TestApplySettingsRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		field   int
		value   string
		wantErr string
	}{
		{"unknown charset", settingCharset, "qwerty", "unknown charset"},
		{"bad radius", settingRadius, "wide", "invalid radius"},
		{"radius out of range", settingRadius, "0", "radius must be between"},
		{"bad refresh", settingRefresh, "soon", "invalid refresh"},
		{"refresh too fast", settingRefresh, "10ms", "refresh must be at least"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newScriptedModel(t, "371948")
			m.openSettings()
			before := m.engine
			m.inputs[tt.field].SetValue(tt.value)

			err := m.applySettings()
			if err == nil {
				t.Fatalf("expected an error for %q", tt.value)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %q", tt.wantErr, err)
			}
			if m.engine != before {
				t.Fatal("expected the old engine to survive a failed apply")
			}
		})
	}
}

func TestSeedInputsShowsCurrentConfig(t *testing.T) {
	m := newScriptedModel(t, "371948")
	m.openSettings()

	if got := m.inputs[settingCharset].Value(); got != "digits" {
		t.Fatalf("expected charset 'digits', got %q", got)
	}
	if got := m.inputs[settingRadius].Value(); got != "2" {
		t.Fatalf("expected radius '2', got %q", got)
	}
	if got := m.inputs[settingRefresh].Value(); got != "200ms" {
		t.Fatalf("expected refresh '200ms', got %q", got)
	}
}

func TestSetInputIndexWrapsAndFocuses(t *testing.T) {
	m := newScriptedModel(t, "371948")
	m.openSettings()

	m.setInputIndex(-1)
	if m.inputIndex != len(m.inputs)-1 {
		t.Fatalf("expected wrap to the last input, got %d", m.inputIndex)
	}
	m.setInputIndex(len(m.inputs))
	if m.inputIndex != 0 {
		t.Fatalf("expected wrap to the first input, got %d", m.inputIndex)
	}

	focused := 0
	for i := range m.inputs {
		if m.inputs[i].Focused() {
			focused++
		}
	}
	if focused != 1 {
		t.Fatalf("expected exactly one focused input, got %d", focused)
	}
}

func TestSettingsEnterStartsNewSession(t *testing.T) {
	m := newScriptedModel(t, "371948")
	m.handleRune('3')
	m.openSettings()

	m.updateSettings(tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modePractice {
		t.Fatalf("expected practice mode after apply, got %d", m.mode)
	}
	if !m.engine.Active() {
		t.Fatal("expected a running session")
	}
	if m.view.Total != 0 {
		t.Fatalf("expected fresh counters, got total %d", m.view.Total)
	}
}

func TestSettingsEnterKeepsFormOnError(t *testing.T) {
	m := newScriptedModel(t, "371948")
	m.openSettings()
	m.inputs[settingRadius].SetValue("wide")

	m.updateSettings(tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeSettings {
		t.Fatalf("expected to stay in settings, got %d", m.mode)
	}
	if m.formError == "" {
		t.Fatal("expected a form error")
	}
}

func TestSettingsEscCancelsToResult(t *testing.T) {
	m := newScriptedModel(t, "371948")
	m.handleRune('3')
	m.openSettings()
	m.inputs[settingRadius].SetValue("9")

	m.updateSettings(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeResult {
		t.Fatalf("expected result mode after cancel, got %d", m.mode)
	}
	if m.config.Radius != 2 {
		t.Fatalf("expected the old radius to survive, got %d", m.config.Radius)
	}
}
