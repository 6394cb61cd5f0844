package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	CloseTab key.Binding
	MarkRead key.Binding
	Escape   key.Binding
	Quit     key.Binding
	Help     key.Binding
}

var Global = global{
	CloseTab: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("^w", "close tab"),
	),
	MarkRead: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "mark read"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "exit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}
