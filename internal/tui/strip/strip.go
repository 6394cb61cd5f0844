// Package strip implements the strip of server tabs: their order, which of
// them is active, and reordering them by dragging with the mouse.
package strip

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/hub/internal/ipc"
	"github.com/leg100/hub/internal/logging"
	"github.com/leg100/hub/internal/platform"
	"github.com/leg100/hub/internal/resource"
	"github.com/leg100/hub/internal/servertab"
	"github.com/leg100/hub/internal/tui"
	"github.com/leg100/hub/internal/tui/keys"
	"github.com/leg100/reflow/truncate"
	zone "github.com/lrstanley/bubblezone"
)

// Host receives shortcut registrations from the tabs in the strip.
type Host interface {
	servertab.Registrar
	UnregisterShortcut(shortcut int)
}

type Options struct {
	Platform platform.Platform
	Host     Host
	// Zones marks each tab's region of the rendered strip, for determining
	// which tab lies under the mouse pointer. Optional.
	Zones  *zone.Manager
	Logger logging.Interface
}

// RemovedMsg is sent once a tab has been destroyed and removed from the
// strip.
type RemovedMsg struct {
	ID resource.ID
}

// Model is a strip of zero or more server tabs, one of which is active.
type Model struct {
	tabs []*servertab.Tab
	// index of the active tab, or -1 if there are no tabs
	active int
	// shortcut number to tab index, as announced over the host channel.
	bindings ipc.Bindings

	drag *drag
	// index of the tab under the pointer, or -1
	hovered int

	platform platform.Platform
	host     Host
	zones    *zone.Manager
	prefix   string
	logger   logging.Interface
}

func New(opts Options) Model {
	m := Model{
		active:   -1,
		hovered:  -1,
		bindings: make(ipc.Bindings),
		platform: opts.Platform,
		host:     opts.Host,
		zones:    opts.Zones,
		prefix:   "servertab-",
		logger:   opts.Logger,
	}
	if m.zones != nil {
		m.prefix = m.zones.NewPrefix() + m.prefix
	}
	if m.logger == nil {
		m.logger = logging.Discard
	}
	return m
}

// Tabs returns the tabs in order.
func (m Model) Tabs() []*servertab.Tab {
	return m.tabs
}

// Active returns the active tab. If there are no tabs then false is returned.
func (m Model) Active() (*servertab.Tab, bool) {
	if m.active < 0 || m.active >= len(m.tabs) {
		return nil, false
	}
	return m.tabs[m.active], true
}

// AddTab appends a tab for a server whose content view is pending. The first
// tab added is activated.
func (m *Model) AddTab(name, icon string, pending servertab.PendingView) (*servertab.Tab, tea.Cmd) {
	tab := servertab.New(servertab.Options{
		Name:           name,
		Icon:           icon,
		View:           pending,
		Platform:       m.platform,
		Registrar:      m.host,
		IdentityPrefix: m.prefix,
		Logger:         m.logger,
	})
	m.tabs = append(m.tabs, tab)
	tab.Reindex(len(m.tabs) - 1)
	m.logger.Debug("added tab", "tab", tab, "index", tab.Index())

	if m.active < 0 {
		return tab, m.Activate(0)
	}
	return tab, nil
}

// Activate makes the tab at the given index the active tab, deactivating the
// previously active tab.
func (m *Model) Activate(index int) tea.Cmd {
	if index < 0 || index >= len(m.tabs) {
		return nil
	}
	var cmds []tea.Cmd
	if prev, ok := m.Active(); ok && m.active != index {
		cmds = append(cmds, lifecycleCmd(prev, servertab.Inactive))
	}
	m.active = index
	cmds = append(cmds, lifecycleCmd(m.tabs[index], servertab.Active))
	return tea.Batch(cmds...)
}

// Move moves the tab at index from to index to, shifting the tabs in between.
// The active tab remains active.
func (m *Model) Move(from, to int) {
	if from == to || from < 0 || to < 0 || from >= len(m.tabs) || to >= len(m.tabs) {
		return
	}
	m.cancelDrag()
	active, _ := m.Active()
	hovered := m.hoveredTab()

	tab := m.tabs[from]
	m.tabs = slices.Delete(m.tabs, from, from+1)
	m.tabs = slices.Insert(m.tabs, to, tab)
	m.reindex()

	if active != nil {
		m.active = active.Index()
	}
	if hovered != nil {
		m.hovered = hovered.Index()
	}
	m.logger.Debug("moved tab", "tab", tab, "from", from, "to", to)
}

// Remove destroys the tab at the given index and removes it from the strip.
// If it was the active tab then its neighbour is activated.
func (m *Model) Remove(index int) tea.Cmd {
	if index < 0 || index >= len(m.tabs) {
		return nil
	}
	m.cancelDrag()
	tab := m.tabs[index]
	before := len(m.tabs)
	m.tabs = slices.Delete(m.tabs, index, index+1)
	m.reindex()

	// The shortcut for the last position no longer has a tab.
	if before <= servertab.MaxShortcuts && m.host != nil {
		m.host.UnregisterShortcut(before)
	}

	cmds := []tea.Cmd{destroyCmd(tab)}
	switch {
	case len(m.tabs) == 0:
		m.active = -1
	case index == m.active:
		// Force activation of the neighbour
		m.active = -1
		cmds = append(cmds, m.Activate(min(index, len(m.tabs)-1)))
	case index < m.active:
		m.active--
	}
	switch {
	case m.hovered == index:
		m.hovered = -1
	case m.hovered > index:
		m.hovered--
	}
	m.logger.Debug("removed tab", "tab", tab)
	return tea.Batch(cmds...)
}

// hoveredTab returns the tab under the pointer, or nil.
func (m Model) hoveredTab() *servertab.Tab {
	if m.hovered < 0 || m.hovered >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.hovered]
}

// SetBadge sets the unread count of the tab with the given ID.
func (m *Model) SetBadge(id resource.ID, count int) {
	for _, tab := range m.tabs {
		if tab.ID == id {
			tab.UpdateBadge(count)
			return
		}
	}
}

// reindex places every tab at its position in the strip.
func (m *Model) reindex() {
	for i, tab := range m.tabs {
		tab.Reindex(i)
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resource.Event[ipc.Binding]:
		m.bindings.Apply(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if len(m.tabs) == 0 {
		return nil
	}
	switch {
	case key.Matches(msg, keys.Navigation.TabNext):
		return m.Activate((m.active + 1) % len(m.tabs))
	case key.Matches(msg, keys.Navigation.TabLast):
		return m.Activate((m.active - 1 + len(m.tabs)) % len(m.tabs))
	case key.Matches(msg, keys.Navigation.MoveTabUp):
		m.Move(m.active, m.active-1)
	case key.Matches(msg, keys.Navigation.MoveTabDown):
		m.Move(m.active, m.active+1)
	case key.Matches(msg, keys.Global.CloseTab):
		return m.Remove(m.active)
	default:
		for i, binding := range keys.Shortcuts {
			if key.Matches(msg, binding) {
				if index, ok := m.bindings.Lookup(i + 1); ok {
					return m.Activate(index)
				}
				return nil
			}
		}
	}
	return nil
}

var tooltipStyle = tui.Padded.Copy().Foreground(tui.TooltipColor).Italic(true)

// View renders the tabs one above the other, followed by a tooltip naming
// the server under the pointer.
func (m Model) View() string {
	rendered := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		rendered[i] = m.mark(tab.Identity(), tab.View(i == m.active))
	}
	var tooltip string
	if tab := m.hoveredTab(); tab != nil && m.drag == nil {
		tooltip = truncate.StringWithTail(tab.Name, servertab.Width, "…")
	}
	rendered = append(rendered, tooltipStyle.Render(tooltip))
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// Width of the rendered strip.
func (m Model) Width() int {
	return servertab.Width + 1
}

func (m Model) mark(id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}

// Help returns the key bindings handled by the strip.
func (m Model) Help() []key.Binding {
	return append(keys.KeyMapToSlice(keys.Navigation), keys.Global.CloseTab)
}

func lifecycleCmd(tab *servertab.Tab, want servertab.State) tea.Cmd {
	// Record the request now so that requests take effect in the order they
	// are made rather than the order in which their commands are run.
	complete := tab.Request(want)
	return func() tea.Msg {
		if err := complete(context.Background()); err != nil {
			return tui.NewErrorMsg(err, "changing tab state", "tab", tab, "state", want)
		}
		return nil
	}
}

func destroyCmd(tab *servertab.Tab) tea.Cmd {
	complete := tab.Request(servertab.Destroyed)
	return func() tea.Msg {
		if err := complete(context.Background()); err != nil {
			return tui.NewErrorMsg(err, "destroying tab", "tab", tab)
		}
		return RemovedMsg{ID: tab.ID}
	}
}
