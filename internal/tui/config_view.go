// Package tui holds the full-screen Bubbletea views of fleetenv.
package tui

import (
	"fmt"
	"strings"

	"fleetworks/fleetenv/internal/config"
	"fleetworks/fleetenv/internal/tui/components"
	"fleetworks/fleetenv/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Config messages ---

type configSavedMsg struct{}

type configSaveErrorMsg struct {
	err error
}

// --- Config model ---

type configViewModel struct {
	cfg  *config.Config
	keys []config.KeySpec

	cursor  int
	editing bool
	editor  textinput.Model

	width  int
	height int

	status  string
	isError bool
}

// RunConfigView starts the interactive config viewer/editor.
func RunConfigView() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p := tea.NewProgram(newConfigViewModel(cfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newConfigViewModel(cfg *config.Config) configViewModel {
	return configViewModel{cfg: cfg, keys: config.Keys}
}

func (m configViewModel) Init() tea.Cmd {
	return nil
}

func (m configViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case configSavedMsg:
		m.editing = false
		m.status = "Configuration saved"
		m.isError = false
		return m, nil

	case configSaveErrorMsg:
		m.status = "Error: " + msg.err.Error()
		m.isError = true
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m configViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.keys)-1 {
			m.cursor++
		}
	case "enter", "e":
		spec := m.keys[m.cursor]
		ti := textinput.New()
		ti.SetValue(spec.Get(m.cfg))
		ti.Focus()
		ti.Width = 40
		ti.Placeholder = "empty clears the value"
		m.editor = ti
		m.editing = true
		m.status = ""
		return m, textinput.Blink
	}

	return m, nil
}

func (m configViewModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "enter":
		spec := m.keys[m.cursor]
		if err := spec.Set(m.cfg, m.editor.Value()); err != nil {
			m.status = "Error: " + err.Error()
			m.isError = true
			return m, nil
		}
		return m, m.saveConfig()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m configViewModel) saveConfig() tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return configSaveErrorMsg{err: err}
		}
		return configSavedMsg{}
	}
}

func (m configViewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	hint := ""
	if path, err := config.Path(); err == nil {
		hint = path
	}
	header := components.Header(m.width, "config", hint)

	var footerBindings []components.KeyBinding
	if m.editing {
		footerBindings = []components.KeyBinding{
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "cancel"},
		}
	} else {
		footerBindings = []components.KeyBinding{
			{Key: "j/k", Desc: "navigate"},
			{Key: "e", Desc: "edit"},
			{Key: "q", Desc: "quit"},
		}
	}
	footer := components.Footer(m.width, footerBindings)

	statusBar := ""
	if m.status != "" {
		statusBar = components.StatusBar(m.width, m.status, m.isError)
	}

	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer)-lipgloss.Height(statusBar), 1)

	sections := []string{header, m.renderContent(contentH)}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m configViewModel) renderContent(height int) string {
	title := styles.Title.Render("Configuration")

	const (
		cardWidth  = 64
		labelWidth = 16
	)

	rows := make([]string, 0, len(m.keys)+1)
	for i, spec := range m.keys {
		isSelected := i == m.cursor

		value := spec.Get(m.cfg)
		if value == "" {
			value = "(not set)"
		}

		var row string
		switch {
		case isSelected && m.editing:
			row = styles.AccentText.Render("> ") + styles.Label.Width(labelWidth).Render(spec.Name) + m.editor.View()
		case isSelected:
			row = styles.AccentText.Render("> ") + styles.Label.Width(labelWidth).Render(spec.Name) + styles.Value.Bold(true).Render(value)
		default:
			row = "  " + styles.MutedText.Width(labelWidth).Render(spec.Name) + styles.MutedText.Render(value)
		}
		rows = append(rows, row)

		if isSelected && !m.editing {
			rows = append(rows, strings.Repeat(" ", 4)+styles.MutedText.Italic(true).Render(spec.Description))
		}
	}

	card := styles.Card.Width(cardWidth).Render(strings.Join(rows, "\n"))
	combined := lipgloss.JoinVertical(lipgloss.Center, title, "", card)

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, combined)
}
