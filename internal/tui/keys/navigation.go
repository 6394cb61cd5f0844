package keys

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

type navigation struct {
	TabNext     key.Binding
	TabLast     key.Binding
	MoveTabUp   key.Binding
	MoveTabDown key.Binding
}

// Navigation returns key bindings for navigation.
var Navigation = navigation{
	TabNext: key.NewBinding(
		key.WithKeys("tab", "down", "j"),
		key.WithHelp("tab/j", "next tab"),
	),
	TabLast: key.NewBinding(
		key.WithKeys("shift+tab", "up", "k"),
		key.WithHelp("s-tab/k", "last tab"),
	),
	MoveTabUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "move tab up"),
	),
	MoveTabDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "move tab down"),
	),
}

// Shortcuts are the key bindings switching to the first nine tabs. The
// terminal cannot report ctrl+<digit>, so alt+<digit> is bound too.
var Shortcuts = func() (bindings [9]key.Binding) {
	for i := range bindings {
		n := i + 1
		bindings[i] = key.NewBinding(
			key.WithKeys(fmt.Sprintf("alt+%d", n), fmt.Sprintf("ctrl+%d", n)),
			key.WithHelp(fmt.Sprintf("M-%d", n), fmt.Sprintf("tab %d", n)),
		)
	}
	return
}()
