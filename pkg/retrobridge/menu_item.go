package retrobridge

import "github.com/pawndev/retrobridge/pkg/retrobridge/constants"

type MenuItem struct {
	ID     int
	Label  string
	Action constants.MenuAction
}

// MenuContext receives items while a menu is being built.
type MenuContext interface {
	Add(item MenuItem)
}

// Menu is an ordered set of items ready to be handed to a Presenter.
type Menu struct {
	Title string
	items []MenuItem
}

func (m *Menu) Add(item MenuItem) {
	m.items = append(m.items, item)
}

// Items returns a copy of the items in display order.
func (m *Menu) Items() []MenuItem {
	items := make([]MenuItem, len(m.items))
	copy(items, m.items)
	return items
}

func (m *Menu) Len() int {
	return len(m.items)
}

func (m *Menu) IDs() []int {
	ids := make([]int, len(m.items))
	for idx, item := range m.items {
		ids[idx] = item.ID
	}
	return ids
}

// Find returns the item with the given id.
func (m *Menu) Find(id int) (MenuItem, bool) {
	for _, item := range m.items {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}
