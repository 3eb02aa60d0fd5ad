// Package term presents the overlay menu in a terminal, for cores launched
// headless or over SSH.
package term

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pawndev/retrobridge/pkg/retrobridge"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")).Padding(0, 1)
	itemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(lipgloss.Color("11"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// menuModel is the bubbletea model for one menu presentation.
type menuModel struct {
	title     string
	items     []retrobridge.MenuItem
	cursor    int
	chosen    int
	done      bool
	cancelled bool
}

func newMenuModel(menu *retrobridge.Menu) menuModel {
	return menuModel{
		title: menu.Title,
		items: menu.Items(),
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else if len(m.items) > 0 {
			m.cursor = len(m.items) - 1
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case "home":
		m.cursor = 0
	case "end":
		if len(m.items) > 0 {
			m.cursor = len(m.items) - 1
		}
	case "enter", " ":
		if len(m.items) == 0 {
			m.cancelled = true
		} else {
			m.chosen = m.items[m.cursor].ID
		}
		m.done = true
		return m, tea.Quit
	case "esc", "q", "ctrl+c":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m menuModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + item.Label))
		} else {
			b.WriteString(itemStyle.Render(item.Label))
		}
		b.WriteString("\n")
	}

	return boxStyle.Render(b.String())
}
