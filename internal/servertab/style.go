package servertab

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/hub/internal/tui"
)

var (
	activeStyle = tui.Bold.Copy().
			Width(Width).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(tui.ActiveTabColor).
			Foreground(tui.ActiveTabColor)
	inactiveStyle = tui.Regular.Copy().
			Width(Width).
			Border(lipgloss.HiddenBorder(), false, false, false, true).
			Foreground(tui.InactiveTabColor)

	iconStyle     = tui.Bold.Copy().Foreground(tui.IconColor)
	badgeStyle    = tui.Bold.Copy().Foreground(tui.White).Background(tui.BadgeColor).Padding(0, 1)
	shortcutStyle = tui.Regular.Copy().Foreground(tui.ShortcutColor).PaddingLeft(3)

	blankHint  = strings.Repeat(" ", Width+1)
	hintMarker = lipgloss.NewStyle().Foreground(tui.DropHintColor).Render(strings.Repeat("━", Width+1))
)
