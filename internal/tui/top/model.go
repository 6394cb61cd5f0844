// Package top implements the top-level model of the TUI.
package top

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/leg100/hub/internal/ipc"
	"github.com/leg100/hub/internal/logging"
	"github.com/leg100/hub/internal/platform"
	"github.com/leg100/hub/internal/resource"
	"github.com/leg100/hub/internal/servertab"
	"github.com/leg100/hub/internal/tui"
	"github.com/leg100/hub/internal/tui/keys"
	"github.com/leg100/hub/internal/tui/strip"
	"github.com/leg100/hub/internal/version"
	"github.com/leg100/hub/internal/view"
	zone "github.com/lrstanley/bubblezone"
)

// ViewService opens content views for servers.
type ViewService interface {
	Open(ctx context.Context, server view.Server) *servertab.Promise
}

// pane is a content view that can render itself.
type pane interface {
	View(width, height int) string
	MarkRead()
}

// paneMsg is sent once a tab's content view has been constructed.
type paneMsg struct {
	tab  resource.ID
	pane pane
}

// LogSource lists the log messages emitted thus far.
type LogSource interface {
	Messages() []logging.Message
}

type Options struct {
	// Context scopes the opening of content views.
	Context  context.Context
	Servers  []view.Server
	Platform platform.Platform
	Views    ViewService
	Host     strip.Host
	Logger   logging.Interface
	Logs     LogSource
	Debug    bool
}

type model struct {
	strip strip.Model
	zones *zone.Manager

	// content views keyed by tab ID; absent until constructed.
	panes map[resource.ID]pane
	// tab ID keyed by server ID
	tabs map[resource.ID]resource.ID

	width  int
	height int

	showHelp bool

	// Either an error or an informational message is rendered in the footer.
	err  error
	info string
	// most recent warning or error logged, rendered in the footer in the
	// absence of the above.
	warning logging.Message

	logger logging.Interface
	dump   *os.File

	initCmds []tea.Cmd
}

// New constructs the top-level TUI model, with a tab for each server.
func New(opts Options) (model, error) {
	var dump *os.File
	if opts.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
		if err != nil {
			return model{}, err
		}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	zones := zone.New()

	m := model{
		strip: strip.New(strip.Options{
			Platform: opts.Platform,
			Host:     opts.Host,
			Zones:    zones,
			Logger:   opts.Logger,
		}),
		zones:  zones,
		panes:  make(map[resource.ID]pane),
		tabs:   make(map[resource.ID]resource.ID),
		logger: opts.Logger,
		dump:   dump,
	}
	for _, server := range opts.Servers {
		promise := opts.Views.Open(opts.Context, server)
		tab, cmd := m.strip.AddTab(server.Name, server.Icon(), promise)
		m.tabs[server.ID] = tab.ID
		m.initCmds = append(m.initCmds, cmd, awaitPane(opts.Context, tab, promise))
	}
	// Pick up any warning logged before the TUI started.
	if opts.Logs != nil {
		for _, msg := range opts.Logs.Messages() {
			m.setWarning(msg)
		}
	}
	return m, nil
}

func awaitPane(ctx context.Context, tab *servertab.Tab, pending servertab.PendingView) tea.Cmd {
	return func() tea.Msg {
		cv, err := pending.Await(ctx)
		if err != nil {
			return tui.NewErrorMsg(err, "opening server", "server", tab.Name)
		}
		p, ok := cv.(pane)
		if !ok {
			return nil
		}
		return paneMsg{tab: tab.ID, pane: p}
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.initCmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		// Pressing any key makes any info/error message in the footer disappear
		m.info = ""
		m.err = nil
		m.warning = logging.Message{}

		switch {
		case key.Matches(msg, keys.Global.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Global.Escape):
			m.showHelp = false
		case key.Matches(msg, keys.Global.Help):
			// '?' toggles help
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.Global.MarkRead):
			if p, ok := m.activePane(); ok {
				p.MarkRead()
			}
		default:
			// Send other keys to the strip.
			m.strip, cmd = m.strip.Update(msg)
			return m, cmd
		}
	case tea.MouseMsg:
		m.strip, cmd = m.strip.Update(msg)
		return m, cmd
	case resource.Event[ipc.Binding]:
		m.strip, cmd = m.strip.Update(msg)
		return m, cmd
	case resource.Event[logging.Message]:
		m.setWarning(msg.Payload)
	case resource.Event[view.Unread]:
		if id, ok := m.tabs[msg.Payload.Server]; ok {
			m.strip.SetBadge(id, msg.Payload.Count)
		}
	case paneMsg:
		m.panes[msg.tab] = msg.pane
	case strip.RemovedMsg:
		delete(m.panes, msg.ID)
		for server, tab := range m.tabs {
			if tab == msg.ID {
				delete(m.tabs, server)
			}
		}
		if len(m.strip.Tabs()) == 0 {
			m.info = "closed all tabs"
		}
	case tui.ErrorMsg:
		if msg.Error != nil {
			err := msg.Error
			msg := fmt.Sprintf(msg.Message, msg.Args...)

			// Both print error in footer as well as log it.
			m.err = fmt.Errorf("%s: %w", msg, err)
			m.logger.Error(msg, "error", err)
		}
	case tui.InfoMsg:
		m.info = string(msg)
	}
	return m, nil
}

func (m *model) setWarning(msg logging.Message) {
	switch msg.Level {
	case "WARN", "ERROR":
		m.warning = msg
	}
}

func (m model) activePane() (pane, bool) {
	tab, ok := m.strip.Active()
	if !ok {
		return nil, false
	}
	p, ok := m.panes[tab.ID]
	return p, ok
}

var (
	connectingStyle = tui.Padded.Copy().Foreground(tui.InactiveTabColor).Italic(true)
	errorStyle      = tui.Padded.Copy().Foreground(tui.ErrorColor)
	infoStyle       = tui.Padded.Copy().Foreground(tui.InfoColor)
	warningStyle    = tui.Padded.Copy().Foreground(tui.WarningColor)
	versionStyle    = tui.Padded.Copy().Foreground(tui.InactiveTabColor)
)

const footerHeight = 1

func (m model) View() string {
	contentWidth := max(0, m.width-m.strip.Width())
	contentHeight := max(0, m.height-footerHeight)

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Margin(1).Render(fullHelpView(
			helpSection{heading: "TABS", bindings: m.strip.Help()},
			helpSection{heading: "GENERAL", bindings: m.generalBindings()},
		))
	} else if tab, ok := m.strip.Active(); ok {
		if p, ok := m.panes[tab.ID]; ok {
			content = p.View(contentWidth, contentHeight)
		} else {
			content = connectingStyle.Render(fmt.Sprintf("Connecting to %s...", tab.Name))
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().
			Width(m.strip.Width()).
			Height(contentHeight).
			MaxHeight(contentHeight).
			Render(m.strip.View()),
		lipgloss.NewStyle().
			Width(contentWidth).
			MaxWidth(contentWidth).
			Height(contentHeight).
			MaxHeight(contentHeight).
			Render(content),
	)

	// Render any info/error message in the bottom left corner of the footer,
	// otherwise render help bindings.
	metadata := versionStyle.Render(version.Version)
	footerWidth := max(0, m.width-lipgloss.Width(metadata))
	var footer string
	if m.err != nil {
		footer = errorStyle.Render("Error: " + m.err.Error())
	} else if m.info != "" {
		footer = infoStyle.Render(m.info)
	} else if m.warning.Message != "" {
		footer = warningStyle.Render(fmt.Sprintf("%s: %s", m.warning.Level, m.warning.Message))
	} else {
		footer = tui.Padded.Render(tui.ShortHelpView(m.generalBindings(), footerWidth))
	}
	footer = lipgloss.JoinHorizontal(lipgloss.Top,
		tui.Regular.
			Inline(true).
			MaxWidth(footerWidth).
			Width(footerWidth).
			Render(footer),
		metadata,
	)

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, body, footer))
}

func (m model) generalBindings() []key.Binding {
	return []key.Binding{
		keys.Global.Help,
		keys.Global.MarkRead,
		keys.Global.Quit,
	}
}
