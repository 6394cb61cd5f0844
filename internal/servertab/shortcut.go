package servertab

import (
	"strconv"

	"github.com/leg100/hub/internal/platform"
)

// MaxShortcuts is the number of tabs, counting from the first, that are
// assigned a keyboard shortcut.
const MaxShortcuts = 9

// Registrar is notified of the tab index to which a shortcut maps, so that
// key handling outside of the tab can route the shortcut to the tab.
type Registrar interface {
	// RegisterShortcut binds shortcut index+1 to the tab at index.
	RegisterShortcut(index int)
}

// ShortcutLabel returns the accelerator for the tab at the given zero-based
// index, or an empty string if the index has no shortcut.
func ShortcutLabel(index int, p platform.Platform) string {
	if index < 0 || index >= MaxShortcuts {
		return ""
	}
	return p.Modifier() + strconv.Itoa(index+1)
}
