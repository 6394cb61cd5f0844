package top

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/hub/internal/servertab"
	"github.com/leg100/hub/internal/view"
	"github.com/stretchr/testify/require"
)

type fakePane struct {
	mu   sync.Mutex
	read bool
}

func (f *fakePane) Load(context.Context) error     { return nil }
func (f *fakePane) Hide(context.Context) error     { return nil }
func (f *fakePane) Teardown(context.Context) error { return nil }
func (f *fakePane) View(int, int) string           { return "fake pane" }

func (f *fakePane) MarkRead() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.read = true
}

type fakeViews struct {
	panes map[string]*fakePane
}

func (f *fakeViews) Open(_ context.Context, server view.Server) *servertab.Promise {
	pane := &fakePane{}
	f.panes[server.Name] = pane
	return servertab.Resolved(pane)
}

func setup(t *testing.T, names ...string) (model, []view.Server, *fakeViews) {
	t.Helper()

	servers := make([]view.Server, len(names))
	for i, name := range names {
		server, err := view.ParseServer(name + "=https://" + name + ".example.com")
		require.NoError(t, err)
		servers[i] = server
	}
	views := &fakeViews{panes: make(map[string]*fakePane)}
	m, err := New(Options{Servers: servers, Views: views})
	require.NoError(t, err)
	return m, servers, views
}

func update(m model, msg tea.Msg) (model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(model), cmd
}
