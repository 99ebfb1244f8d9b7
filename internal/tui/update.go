package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down", "enter":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil

		case "left", "right":
			if m.focus == fieldRegion {
				step := 1
				if msg.String() == "left" {
					step = len(domain.AllRegions) - 1
				}
				m.regionIdx = (m.regionIdx + step) % len(domain.AllRegions)
				m.recalculate()
				return m, nil
			}
		}
	}

	if m.focus != fieldRegion {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.recalculate()
		return m, cmd
	}
	return m, nil
}

func (m *Model) setFocus(field int) {
	if m.focus != fieldRegion {
		m.inputs[m.focus].Blur()
	}
	m.focus = field
	if field != fieldRegion {
		m.inputs[field].Focus()
	}
}
