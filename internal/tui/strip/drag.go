package strip

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/hub/internal/servertab"
	"github.com/leg100/hub/internal/tui"
)

// drag is an in-flight drag gesture.
type drag struct {
	session servertab.DragSession
	// index of the tab the pointer is over, or -1
	over int
	// moved is false until the pointer leaves the source tab; a gesture that
	// never moves is a click.
	moved bool
	// effect advertised by the tab the pointer is over; empty when the
	// pointer is off the strip.
	effect servertab.DropEffect
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	index := m.tabAt(msg)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && index >= 0 {
			m.beginDrag(index)
		}
	case tea.MouseActionMotion:
		m.hovered = index
		if m.drag != nil {
			return m.dragTo(index)
		}
	case tea.MouseActionRelease:
		if m.drag == nil {
			return nil
		}
		// the pointer may have jumped straight to the release position
		if cmd := m.dragTo(index); cmd != nil {
			m.cancelDrag()
			return cmd
		}
		return m.endDrag(index)
	}
	return nil
}

// tabAt returns the index of the tab under the pointer, or -1.
func (m *Model) tabAt(msg tea.MouseMsg) int {
	if m.zones == nil {
		return -1
	}
	for i, tab := range m.tabs {
		if z := m.zones.Get(tab.Identity()); z != nil && z.InBounds(msg) {
			return i
		}
	}
	return -1
}

// beginDrag starts dragging the tab at the given index.
func (m *Model) beginDrag(index int) {
	m.cancelDrag()
	m.drag = &drag{
		session: m.tabs[index].StartDrag(),
		over:    index,
	}
}

// dragTo moves the drag over the tab at the given index, or off the strip if
// the index is -1.
func (m *Model) dragTo(index int) tea.Cmd {
	d := m.drag
	if index == d.over {
		return nil
	}
	if d.over >= 0 && d.over < len(m.tabs) {
		m.tabs[d.over].DragLeave()
	}
	d.over = index
	d.moved = true
	d.effect = ""
	if index < 0 {
		return nil
	}
	target := m.tabs[index]
	if err := target.DragEnter(d.session.Payload); err != nil {
		m.logger.Error("updating drop hint", "tab", target, "error", err)
		return tui.ReportError(err, "updating drop hint")
	}
	d.effect = target.DragOver()
	return nil
}

// endDrag ends the drag with the pointer over the tab at the given index, or
// off the strip if the index is -1. Dropping onto another tab moves the
// dragged tab to its position; releasing without moving activates the tab.
func (m *Model) endDrag(index int) tea.Cmd {
	d := m.drag
	m.cancelDrag()
	source := d.session.SourceIndex
	switch {
	case !d.moved:
		return m.Activate(source)
	case index < 0 || index == source:
		return nil
	case index != d.over || d.effect != servertab.DropMove:
		// the tab under the pointer never accepted the drag
		return nil
	default:
		m.Move(source, index)
		return nil
	}
}

// cancelDrag abandons any drag in progress, clearing its drop hint.
func (m *Model) cancelDrag() {
	if m.drag == nil {
		return
	}
	if over := m.drag.over; over >= 0 && over < len(m.tabs) {
		m.tabs[over].DragLeave()
	}
	m.drag = nil
}
