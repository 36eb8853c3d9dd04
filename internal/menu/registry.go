package menu

// Model exposes lookup utilities over the ordered top-level menus. It is the
// menu data source the navigation controller reads; mutation is limited to
// rebuilding the Open Recent submenu from store data.
type Model struct {
	items []Item
}

// NewModel constructs a model from top-level definitions.
func NewModel(items []Item) *Model {
	return &Model{items: cloneItems(items)}
}

// ItemCount returns the number of top-level menus.
func (m *Model) ItemCount() int {
	return len(m.items)
}

// ItemAt returns the top-level menu at the given index.
func (m *Model) ItemAt(index int) (Item, bool) {
	if index < 0 || index >= len(m.items) {
		return Item{}, false
	}
	return m.items[index], true
}

// ItemIndex returns the position of a top-level menu, or -1 when absent.
func (m *Model) ItemIndex(id string) int {
	for i, item := range m.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Items returns the ordered top-level menus.
func (m *Model) Items() []Item {
	return cloneItems(m.items)
}

// FindMenu locates a top-level menu by ID.
func (m *Model) FindMenu(id string) (Item, bool) {
	if idx := m.ItemIndex(id); idx >= 0 {
		return m.items[idx], true
	}
	return Item{}, false
}

// FindItem locates an item anywhere in the tree by ID.
func (m *Model) FindItem(id string) (Item, bool) {
	return findItem(m.items, id)
}

// SetSubitems replaces the children of the identified item, wherever it sits
// in the tree. Used to rebuild the Open Recent submenu.
func (m *Model) SetSubitems(id string, subitems []Item) bool {
	return setSubitems(m.items, id, subitems)
}

// WalkLeaves visits every leaf item in definition order.
func (m *Model) WalkLeaves(visit func(menuID string, item Item)) {
	for _, top := range m.items {
		walkLeaves(top.ID, top.Items, visit)
	}
}

func walkLeaves(menuID string, items []Item, visit func(string, Item)) {
	for _, item := range items {
		if item.IsLeaf() {
			visit(menuID, item)
			continue
		}
		walkLeaves(menuID, item.Items, visit)
	}
}

func findItem(items []Item, id string) (Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
		if found, ok := findItem(item.Items, id); ok {
			return found, true
		}
	}
	return Item{}, false
}

func setSubitems(items []Item, id string, subitems []Item) bool {
	for i := range items {
		if items[i].ID == id {
			items[i].Items = cloneItems(subitems)
			return true
		}
		if setSubitems(items[i].Items, id, subitems) {
			return true
		}
	}
	return false
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	for i := range dup {
		dup[i].Items = cloneItems(dup[i].Items)
	}
	return dup
}
