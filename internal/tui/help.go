package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	shortHelpKeyStyle  = Bold.Copy().Foreground(HelpKey).Margin(0, 1, 0, 0)
	shortHelpDescStyle = Regular.Copy().Foreground(HelpDesc).Margin(0, 3, 0, 0)
)

// ShortHelpView renders help for key bindings in columns of up to three rows
// each, stopping before the maximum width is exceeded.
func ShortHelpView(bindings []key.Binding, maxWidth int) string {
	var (
		pairs []string
		width int
	)
	for i := 0; i < len(bindings); i += 3 {
		var (
			keys  []string
			descs []string
		)
		for j := i; j < min(i+3, len(bindings)); j++ {
			keys = append(keys, bindings[j].Help().Key)
			descs = append(descs, bindings[j].Help().Desc)
		}
		// render a pair of columns, one for keys, one for descs
		pair := lipgloss.JoinHorizontal(lipgloss.Left,
			shortHelpKeyStyle.Render(strings.Join(keys, "\n")),
			shortHelpDescStyle.Render(strings.Join(descs, "\n")),
		)
		// check whether it exceeds the maximum width avail
		width += lipgloss.Width(pair)
		if width > maxWidth {
			break
		}
		pairs = append(pairs, pair)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pairs...)
}
