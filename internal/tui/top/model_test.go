package top

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/hub/internal/app"
	"github.com/leg100/hub/internal/logging"
	"github.com/leg100/hub/internal/resource"
	"github.com/leg100/hub/internal/tui"
	"github.com/leg100/hub/internal/tui/strip"
	"github.com/leg100/hub/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_Unread(t *testing.T) {
	m, servers, _ := setup(t, "alpha", "beta")

	m, _ = update(m, resource.NewEvent(resource.UpdatedEvent, view.Unread{
		Server: servers[1].ID,
		Count:  3,
	}))

	tabs := m.strip.Tabs()
	require.Len(t, tabs, 2)
	assert.Equal(t, 0, tabs[0].Badge().Count())
	assert.Equal(t, 3, tabs[1].Badge().Count())
}

func TestModel_MarkRead(t *testing.T) {
	m, _, views := setup(t, "alpha", "beta")
	tab, ok := m.strip.Active()
	require.True(t, ok)

	m, _ = update(m, paneMsg{tab: tab.ID, pane: views.panes["alpha"]})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	assert.True(t, views.panes["alpha"].read)
	assert.False(t, views.panes["beta"].read)
}

func TestModel_Removed(t *testing.T) {
	m, servers, views := setup(t, "alpha")
	tab := m.strip.Tabs()[0]
	m, _ = update(m, paneMsg{tab: tab.ID, pane: views.panes["alpha"]})

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyCtrlW})
	assert.Len(t, m.strip.Tabs(), 0)

	m, _ = update(m, strip.RemovedMsg{ID: tab.ID})
	assert.NotContains(t, m.panes, tab.ID)
	assert.NotContains(t, m.tabs, servers[0].ID)
	assert.Equal(t, "closed all tabs", m.info)
}

func TestModel_Error(t *testing.T) {
	m, _, _ := setup(t, "alpha")

	m, _ = update(m, tui.NewErrorMsg(assert.AnError, "doing %s", "something"))
	assert.ErrorIs(t, m.err, assert.AnError)
	assert.Equal(t, "doing something: "+assert.AnError.Error(), m.err.Error())

	// any key clears the error
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.NoError(t, m.err)
	assert.True(t, m.showHelp)
}

func TestModel_MouseReorder(t *testing.T) {
	m, _, _ := setup(t, "alpha", "beta", "gamma")
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	waitForZones(t, m)

	// Each tab is four lines high: drag the first tab onto the third.
	m, _ = update(m, tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(m, tea.MouseMsg{X: 3, Y: 9, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = update(m, tea.MouseMsg{X: 3, Y: 9, Action: tea.MouseActionRelease})

	var names []string
	for _, tab := range m.strip.Tabs() {
		names = append(names, tab.Name)
	}
	assert.Equal(t, []string{"beta", "gamma", "alpha"}, names)

	active, ok := m.strip.Active()
	require.True(t, ok)
	assert.Equal(t, "alpha", active.Name)
}

func TestModel_Hover(t *testing.T) {
	m, _, _ := setup(t, "alpha", "beta", "gamma")
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	waitForZones(t, m)

	before := strings.Count(m.strip.View(), "beta")

	// hovering without a button held shows a tooltip naming the server
	m, _ = update(m, tea.MouseMsg{X: 3, Y: 5, Action: tea.MouseActionMotion})
	assert.Equal(t, before+1, strings.Count(m.strip.View(), "beta"))

	// moving off the strip hides it
	m, _ = update(m, tea.MouseMsg{X: 80, Y: 5, Action: tea.MouseActionMotion})
	assert.Equal(t, before, strings.Count(m.strip.View(), "beta"))
}

func TestModel_Warning(t *testing.T) {
	m, _, _ := setup(t, "alpha")
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	m, _ = update(m, resource.NewEvent(resource.CreatedEvent, logging.Message{Level: "INFO", Message: "connected"}))
	assert.NotContains(t, m.View(), "connected")

	m, _ = update(m, resource.NewEvent(resource.CreatedEvent, logging.Message{Level: "ERROR", Message: "opening content view"}))
	assert.Contains(t, m.View(), "ERROR: opening content view")

	// any key clears the warning
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.NotContains(t, m.View(), "opening content view")
}

func TestModel_WarningLoggedBeforeStart(t *testing.T) {
	logger := logging.NewLogger(logging.Options{})
	logger.Warn("slow server")
	logger.Info("starting")

	m, err := New(Options{Views: &fakeViews{panes: make(map[string]*fakePane)}, Logs: logger})
	require.NoError(t, err)
	assert.Equal(t, "slow server", m.warning.Message)
}

func TestQuit(t *testing.T) {
	tm := teatest.NewTestModel(t, mustModel(t, "alpha"), teatest.WithInitialTermSize(100, 30))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}

func TestServers(t *testing.T) {
	tm := setupTest(t, "alpha", "beta")

	waitFor(t, tm, "Connected to alpha", "beta")
}

func TestShortcut(t *testing.T) {
	tm := setupTest(t, "alpha", "beta")

	waitFor(t, tm, "Connected to alpha")

	// Switch to second tab
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Alt: true, Runes: []rune{'2'}})

	waitFor(t, tm, "Connected to beta")
}

func TestHelp(t *testing.T) {
	tm := setupTest(t, "alpha")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})

	waitFor(t, tm, "GENERAL")
}

// waitForZones renders the model and waits for each tab's zone to be
// recorded, which happens in the background.
func waitForZones(t *testing.T, m model) {
	t.Helper()

	m.View()
	require.Eventually(t, func() bool {
		for _, tab := range m.strip.Tabs() {
			if m.zones.Get(tab.Identity()).IsZero() {
				return false
			}
		}
		return true
	}, time.Second, 10*time.Millisecond)
}

func mustModel(t *testing.T, names ...string) model {
	m, _, _ := setup(t, names...)
	return m
}

func setupTest(t *testing.T, names ...string) *teatest.TestModel {
	t.Helper()

	var servers []view.Server
	for _, name := range names {
		server, err := view.ParseServer(name + "=https://" + name + ".example.com")
		require.NoError(t, err)
		servers = append(servers, server)
	}
	return StartTest(t, app.Config{Servers: servers}, 100, 30)
}

// waitFor waits until the output contains all of the strings.
func waitFor(t *testing.T, tm *teatest.TestModel, strs ...string) {
	t.Helper()

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			for _, s := range strs {
				if !bytes.Contains(bts, []byte(s)) {
					return false
				}
			}
			return true
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*5),
	)
}
