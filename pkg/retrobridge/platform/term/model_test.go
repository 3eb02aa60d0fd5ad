package term

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawndev/retrobridge/pkg/retrobridge"
	"github.com/pawndev/retrobridge/pkg/retrobridge/constants"
)

func press(m menuModel, keys ...tea.KeyMsg) (menuModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(menuModel)
	}
	return m, cmd
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestMenuModelSelect(t *testing.T) {
	m := newMenuModel(retrobridge.NewMenu(false))

	m, cmd := press(m, keyDown, keyDown, keyEnter)

	if !m.done || m.cancelled {
		t.Fatalf("expected a selection, got done=%v cancelled=%v", m.done, m.cancelled)
	}
	if m.chosen != constants.MenuLoadID {
		t.Errorf("expected Load State (%d), got %d", constants.MenuLoadID, m.chosen)
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
}

func TestMenuModelWrapsAround(t *testing.T) {
	m := newMenuModel(retrobridge.NewMenu(false))

	m, _ = press(m, keyUp, keyEnter)

	if m.chosen != constants.MenuQuitID {
		t.Errorf("expected Quit (%d), got %d", constants.MenuQuitID, m.chosen)
	}
}

func TestMenuModelCancel(t *testing.T) {
	m := newMenuModel(retrobridge.NewMenu(true))

	m, cmd := press(m, keyDown, keyEsc)

	if !m.cancelled {
		t.Error("expected menu to be cancelled")
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
	if m.View() != "" {
		t.Error("expected an empty view once done")
	}
}

func TestMenuModelEmpty(t *testing.T) {
	m := newMenuModel(&retrobridge.Menu{Title: "Paused"})

	m, _ = press(m, keyDown, keyEnter)

	if !m.cancelled {
		t.Error("expected an empty menu to cancel")
	}
}

func TestMenuModelView(t *testing.T) {
	m := newMenuModel(retrobridge.NewMenu(true))
	view := m.View()

	for _, item := range retrobridge.NewMenu(true).Items() {
		if !strings.Contains(view, item.Label) {
			t.Errorf("expected view to list %q", item.Label)
		}
	}
}
