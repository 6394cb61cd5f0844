package strip

import (
	"context"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/hub/internal/ipc"
	"github.com/leg100/hub/internal/platform"
	"github.com/leg100/hub/internal/resource"
	"github.com/leg100/hub/internal/servertab"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	mu    sync.Mutex
	state string
	calls int
}

func (f *fakeView) Load(context.Context) error     { return f.set("loaded") }
func (f *fakeView) Hide(context.Context) error     { return f.set("hidden") }
func (f *fakeView) Teardown(context.Context) error { return f.set("torn down") }

func (f *fakeView) set(state string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = state
	f.calls++
	return nil
}

func (f *fakeView) State() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// fakeHost relays registrations to a strip's binding table, as the host
// channel does in the running program.
type fakeHost struct {
	bindings ipc.Bindings
}

func (f *fakeHost) RegisterShortcut(index int) {
	f.bindings.Apply(resource.NewEvent(resource.UpdatedEvent, ipc.Binding{Shortcut: index + 1, Index: index}))
}

func (f *fakeHost) UnregisterShortcut(shortcut int) {
	f.bindings.Apply(resource.NewEvent(resource.DeletedEvent, ipc.Binding{Shortcut: shortcut}))
}

// setup constructs a strip with n tabs named tab0, tab1, etc., returning the
// strip and the tabs' views.
func setup(t *testing.T, n int) (*Model, []*fakeView, *fakeHost) {
	t.Helper()

	m := New(Options{Platform: platform.Other})
	host := &fakeHost{bindings: m.bindings}
	m.host = host

	views := make([]*fakeView, n)
	for i := 0; i < n; i++ {
		views[i] = &fakeView{}
		_, cmd := m.AddTab(fmt.Sprintf("tab%d", i), "T", servertab.Resolved(views[i]))
		run(t, cmd)
	}
	return &m, views, host
}

// run runs a command and any commands it batches, returning the messages
// produced.
func run(t *testing.T, cmd tea.Cmd) (msgs []tea.Msg) {
	t.Helper()

	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, cmd := range msg {
			msgs = append(msgs, run(t, cmd)...)
		}
	case nil:
	default:
		msgs = append(msgs, msg)
	}
	return msgs
}

func names(m *Model) (names []string) {
	for _, tab := range m.Tabs() {
		names = append(names, tab.Name)
	}
	return
}

// requireIndexed checks every tab's index matches its position.
func requireIndexed(t *testing.T, m *Model) {
	t.Helper()

	for i, tab := range m.Tabs() {
		require.Equal(t, i, tab.Index(), tab.Name)
		require.Equal(t, i+1, tab.DisplayIndex(), tab.Name)
		require.Equal(t, fmt.Sprintf("%s%d", m.prefix, i), tab.Identity(), tab.Name)
		require.Equal(t, servertab.ShortcutLabel(i, platform.Other), tab.Shortcut(), tab.Name)
	}
}
