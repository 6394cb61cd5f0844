package servertab

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/go-runewidth"
	"github.com/leg100/hub/internal/logging"
	"github.com/leg100/hub/internal/platform"
	"github.com/leg100/hub/internal/resource"
)

// Width is the rendered width of a tab.
const Width = 24

// Options for constructing a tab.
type Options struct {
	Name string
	// Icon is a short glyph identifying the server.
	Icon string
	// View is the tab's content view, which may not yet be constructed.
	View PendingView

	Platform  platform.Platform
	Registrar Registrar
	// IdentityPrefix prefixes the identity of each tab, distinguishing it
	// from other identities in the visual tree.
	IdentityPrefix string
	Logger         logging.Interface
}

// Tab represents a connected server.
type Tab struct {
	*Lifecycle

	ID   resource.ID
	Name string
	Icon string

	// index is the tab's position in its strip; displayIndex is index+1.
	// Both are -1 until the tab is placed.
	index        int
	displayIndex int
	shortcut     string
	// identity is the presentation mirror of index, marking the tab's
	// region of the rendered strip.
	identity string

	badge Badge
	hint  DropHint

	platform       platform.Platform
	registrar      Registrar
	identityPrefix string
}

func New(opts Options) *Tab {
	return &Tab{
		Lifecycle:      newLifecycle(opts.Name, opts.View, opts.Logger),
		ID:             resource.NewID(resource.Tab),
		Name:           opts.Name,
		Icon:           opts.Icon,
		index:          -1,
		displayIndex:   -1,
		badge:          newBadge(),
		platform:       opts.Platform,
		registrar:      opts.Registrar,
		identityPrefix: opts.IdentityPrefix,
	}
}

func (t *Tab) String() string { return t.Name }

func (t *Tab) Index() int { return t.index }

func (t *Tab) DisplayIndex() int { return t.displayIndex }

func (t *Tab) Shortcut() string { return t.shortcut }

// Identity returns the identity marking the tab in the rendered strip, or an
// empty string if the tab has yet to be placed.
func (t *Tab) Identity() string { return t.identity }

func (t *Tab) Hint() DropHint { return t.hint }

func (t *Tab) Badge() Badge { return t.badge }

// UpdateBadge sets the tab's unread count.
func (t *Tab) UpdateBadge(count int) {
	t.badge.Update(count)
}

// Reindex places the tab at a new position, updating its index, its shortcut
// and its identity together.
func (t *Tab) Reindex(index int) {
	t.index = index
	t.displayIndex = index + 1
	t.shortcut = ShortcutLabel(index, t.platform)
	if t.shortcut != "" && t.registrar != nil {
		t.registrar.RegisterShortcut(index)
	}
	t.identity = fmt.Sprintf("%s%d", t.identityPrefix, index)
}

// View renders the tab. The first and last lines are reserved for the drop
// hint.
func (t *Tab) View(active bool) string {
	style := inactiveStyle
	if active {
		style = activeStyle
	}

	above, below := blankHint, blankHint
	switch t.hint {
	case AboveHint:
		above = hintMarker
	case BelowHint:
		below = hintMarker
	}

	icon := iconStyle.Render(t.Icon)
	badge := t.badge.View()
	nameWidth := Width - lipgloss.Width(icon) - 2 - lipgloss.Width(badge)
	name := runewidth.Truncate(t.Name, max(0, nameWidth), "…")
	gap := strings.Repeat(" ", max(0, nameWidth-runewidth.StringWidth(name)))
	heading := style.Render(icon + " " + name + gap + badge)

	shortcut := shortcutStyle.Render(t.shortcut)

	return lipgloss.JoinVertical(lipgloss.Left, above, heading, shortcut, below)
}
