package top

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/hub/internal/tui"
)

var (
	longHelpHeadingStyle = tui.Bold.Copy().Foreground(tui.HelpKey).Margin(0, 3, 0, 0)
	longHelpKeyStyle     = tui.Bold.Copy().Foreground(tui.HelpKey).Margin(0, 1, 0, 0)
	longHelpDescStyle    = tui.Regular.Copy().Foreground(tui.HelpDesc).Margin(0, 3, 0, 0)
)

type helpSection struct {
	heading  string
	bindings []key.Binding
}

// fullHelpView renders a column for each section, each column listing the
// section's key bindings beneath its heading.
func fullHelpView(sections ...helpSection) string {
	cols := make([]string, len(sections))
	for i, section := range sections {
		keys := make([]string, len(section.bindings))
		descs := make([]string, len(section.bindings))
		for j, kb := range section.bindings {
			keys[j] = longHelpKeyStyle.Render(kb.Help().Key)
			descs[j] = longHelpDescStyle.Render(kb.Help().Desc)
		}
		cols[i] = lipgloss.JoinVertical(lipgloss.Top,
			longHelpHeadingStyle.Render(section.heading),
			lipgloss.JoinHorizontal(lipgloss.Left,
				strings.Join(keys, "\n"),
				strings.Join(descs, "\n"),
			),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, cols...)
}
