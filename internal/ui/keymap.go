package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit           key.Binding
	Up             key.Binding
	Down           key.Binding
	ToggleDetails  key.Binding
	NewTask        key.Binding
	EditTask       key.Binding
	DeleteTask     key.Binding
	CycleStatus    key.Binding
	Search         key.Binding
	ClearSearch    key.Binding
	StatusFilter   key.Binding
	PriorityFilter key.Binding
	SortKey        key.Binding
	SortOrder      key.Binding
	AddTag         key.Binding
	RemoveTag      key.Binding
	Share          key.Binding
	Unshare        key.Binding
	Confirm        key.Binding
	Cancel         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		ToggleDetails:  key.NewBinding(key.WithKeys("d", "enter"), key.WithHelp("d", "toggle details")),
		NewTask:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task")),
		EditTask:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit task")),
		DeleteTask:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete task")),
		CycleStatus:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle task status")),
		Search:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearSearch:    key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear search")),
		StatusFilter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle status filter")),
		PriorityFilter: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "cycle priority filter")),
		SortKey:        key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "cycle sort key")),
		SortOrder:      key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "flip sort order")),
		AddTag:         key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "add tag")),
		RemoveTag:      key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "remove tag")),
		Share:          key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "share with email")),
		Unshare:        key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "remove collaborator")),
		Confirm:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
