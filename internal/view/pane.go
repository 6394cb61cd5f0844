package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/hub/internal/tui"
	"github.com/leg100/reflow/wordwrap"
)

var errTornDown = errors.New("content view has been torn down")

// Pane is a placeholder content view for a server.
type Pane struct {
	Server Server

	mu       sync.Mutex
	visible  bool
	tornDown bool
	unread   int

	// invoked with the unread count whenever it changes.
	onUnread func(Server, int)
}

func (p *Pane) Load(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tornDown {
		return errTornDown
	}
	p.visible = true
	// viewing the server reads its messages
	p.setUnread(0)
	return nil
}

func (p *Pane) Hide(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tornDown {
		return errTornDown
	}
	p.visible = false
	return nil
}

func (p *Pane) Teardown(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.visible = false
	p.tornDown = true
	return nil
}

func (p *Pane) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.visible
}

func (p *Pane) TornDown() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.tornDown
}

// MarkRead resets the unread count.
func (p *Pane) MarkRead() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.setUnread(0)
}

// receive simulates the arrival of a message. Messages arriving while the
// pane is visible are read immediately.
func (p *Pane) receive() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.visible || p.tornDown {
		return
	}
	p.setUnread(p.unread + 1)
}

func (p *Pane) setUnread(n int) {
	if n == p.unread {
		return
	}
	p.unread = n
	if p.onUnread != nil {
		p.onUnread(p.Server, n)
	}
}

var (
	titleStyle = tui.Bold.Copy().Foreground(tui.IconColor)
	urlStyle   = tui.Regular.Copy().Foreground(tui.InactiveTabColor)
)

// View renders the pane within the given dimensions.
func (p *Pane) View(width, height int) string {
	if p.TornDown() {
		return ""
	}
	body := wordwrap.String(
		fmt.Sprintf("Connected to %s. Messages from this server are rendered here.", p.Server.Name),
		max(1, width-4),
	)
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(p.Server.Name),
		urlStyle.Render(p.Server.URL.String()),
		"",
		body,
	)
	return tui.RoundedBorders.Copy().
		Width(max(0, width-2)).
		Height(max(0, height-2)).
		Padding(0, 1).
		Render(content)
}
