// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tenkey/internal/charset"
	"github.com/verte-zerg/tenkey/internal/engine"
	"github.com/verte-zerg/tenkey/internal/generator"
	"github.com/verte-zerg/tenkey/internal/model"
)

const (
	settingCharset = iota
	settingSymbols
	settingRadius
	settingRefresh
)

const (
	minRadius  = 1
	maxRadius  = 10
	minRefresh = 50 * time.Millisecond
)

const settingsModalMax = 56

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

func modalWidth(width int) int {
	return maxInt(32, minInt(settingsModalMax, width-8))
}

// modalInnerWidth is the usable width inside the modal border and
// padding.
func modalInnerWidth(width int) int {
	return modalWidth(width) - 6
}

func (m *Model) initInputs() {
	m.inputs = []textinput.Model{
		newSettingsInput("Charset: ", "digits or numpad"),
		newSettingsInput("Symbols: ", "overrides charset"),
		newSettingsInput("Radius: ", "2"),
		newSettingsInput("Refresh: ", "500ms"),
	}
}

func newSettingsInput(prompt, placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = placeholder
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) seedInputs() {
	m.inputs[settingCharset].SetValue(m.config.Charset)
	m.inputs[settingSymbols].SetValue(m.config.Symbols)
	m.inputs[settingRadius].SetValue(strconv.Itoa(m.config.Radius))
	m.inputs[settingRefresh].SetValue(m.config.Refresh.String())
}

// openSettings freezes the running session and shows the form seeded
// with the current configuration.
func (m *Model) openSettings() tea.Cmd {
	m.engine.Stop()
	m.refresh()
	m.formError = ""
	m.seedInputs()
	m.mode = modeSettings
	return m.setInputIndex(0)
}

func (m *Model) setInputIndex(idx int) tea.Cmd {
	count := len(m.inputs)
	if count == 0 {
		return nil
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.inputIndex = idx
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.inputIndex {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.formError = ""
		m.buildResult()
		m.mode = modeResult
		return m, nil
	case tea.KeyEnter:
		if err := m.applySettings(); err != nil {
			m.formError = err.Error()
			return m, nil
		}
		m.formError = ""
		m.startSession()
		return m, nil
	case tea.KeyTab:
		return m, m.setInputIndex(m.inputIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setInputIndex(m.inputIndex - 1)
	}
	var cmd tea.Cmd
	m.inputs[m.inputIndex], cmd = m.inputs[m.inputIndex].Update(msg)
	return m, cmd
}

// applySettings validates the form and rebuilds the engine from it.
// The old engine stays in place when validation fails.
func (m *Model) applySettings() error {
	name := strings.TrimSpace(m.inputs[settingCharset].Value())
	symbols := strings.TrimSpace(m.inputs[settingSymbols].Value())

	var cs charset.Charset
	var err error
	if symbols != "" {
		cs, err = charset.Custom(symbols)
	} else {
		cs, err = charset.ByName(name)
	}
	if err != nil {
		return err
	}

	radiusInput := strings.TrimSpace(m.inputs[settingRadius].Value())
	radius, err := strconv.Atoi(radiusInput)
	if err != nil {
		return fmt.Errorf("invalid radius %q", radiusInput)
	}
	if radius < minRadius || radius > maxRadius {
		return fmt.Errorf("radius must be between %d and %d", minRadius, maxRadius)
	}

	refreshInput := strings.TrimSpace(m.inputs[settingRefresh].Value())
	refresh, err := time.ParseDuration(refreshInput)
	if err != nil {
		return fmt.Errorf("invalid refresh %q", refreshInput)
	}
	if refresh < minRefresh {
		return fmt.Errorf("refresh must be at least %s", minRefresh)
	}

	m.config = model.Config{
		Charset: cs.Name(),
		Symbols: symbols,
		Radius:  radius,
		Refresh: refresh,
	}
	m.engine = engine.New(cs, radius, generator.New(cs))
	m.cs = m.engine.Charset()
	return nil
}

func (m *Model) viewSettings() string {
	lines := []string{
		resultTitleStyle.Render("Settings"),
		"",
	}
	for _, input := range m.inputs {
		lines = append(lines, input.View())
	}
	lines = append(lines, "", footerStyle.Render("Next: tab  Apply: enter  Cancel: esc"))
	if m.formError != "" {
		lines = append(lines, errorStyle.Render(m.formError))
	}
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
