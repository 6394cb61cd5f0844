package ipc

import "github.com/leg100/hub/internal/resource"

// Bindings is the host's table of shortcuts, keyed by shortcut number. There
// is at most one binding per shortcut: registering a shortcut again replaces
// its binding, so a stale index never remains bound.
type Bindings map[int]int

// Apply applies a registration event to the table.
func (b Bindings) Apply(event resource.Event[Binding]) {
	switch event.Type {
	case resource.DeletedEvent:
		delete(b, event.Payload.Shortcut)
	default:
		b[event.Payload.Shortcut] = event.Payload.Index
	}
}

// Lookup returns the tab index bound to a shortcut.
func (b Bindings) Lookup(shortcut int) (int, bool) {
	index, ok := b[shortcut]
	return index, ok
}
