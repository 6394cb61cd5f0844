package top

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/hub/internal/app"
	"github.com/leg100/hub/internal/version"
	"github.com/peterbourgon/ff/v4"
	"github.com/stretchr/testify/require"
)

// Start parses the config, starts the TUI and blocks until the user exits.
func Start(stdout, stderr io.Writer, args []string) error {
	cfg, err := app.Parse(stderr, args)
	if errors.Is(err, ff.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}
	if cfg.Version {
		fmt.Fprintln(stdout, "hub", version.Version)
		return nil
	}

	app, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer app.Cleanup()

	// Subscribe before constructing the model, which registers shortcuts
	// with the host channel.
	ch, unsub := setupSubscriptions(app)
	defer unsub()

	m, err := newModel(cfg, app)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		// Use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
		// Report all motion, not only while a button is held, so that
		// hovering over a tab shows its tooltip.
		tea.WithMouseAllMotion(),
	)

	// Relay events to model in background
	go func() {
		for msg := range ch {
			p.Send(msg)
		}
	}()

	// Blocks until user quits
	_, err = p.Run()
	return err
}

// StartTest starts the TUI and returns a test model for testing purposes.
func StartTest(t *testing.T, cfg app.Config, width, height int) *teatest.TestModel {
	app, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(app.Cleanup)

	ch, unsub := setupSubscriptions(app)
	t.Cleanup(unsub)

	m, err := newModel(cfg, app)
	require.NoError(t, err)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(width, height))

	// Relay events to model in background
	go func() {
		for msg := range ch {
			tm.Send(msg)
		}
	}()

	t.Cleanup(func() {
		tm.Quit()
	})
	return tm
}

func newModel(cfg app.Config, app *app.App) (model, error) {
	return New(Options{
		Context:  app.Context(),
		Servers:  cfg.Servers,
		Platform: cfg.Platform,
		Views:    app.Views,
		Host:     app.Channel,
		Logger:   app.Logger,
		Logs:     app.Logger,
		Debug:    cfg.Debug,
	})
}

func setupSubscriptions(app *app.App) (chan tea.Msg, func()) {
	// Relay events to TUI. Deliberately set up subscriptions *before* any
	// events are triggered, to ensure the TUI receives all messages.
	ch := make(chan tea.Msg)
	wg := sync.WaitGroup{} // sync closure of subscriptions

	ctx, cancel := context.WithCancel(context.Background())

	{
		sub := app.Logger.Subscribe(ctx)
		wg.Add(1)
		go func() {
			for ev := range sub {
				ch <- ev
			}
			wg.Done()
		}()
	}
	{
		sub := app.Channel.Subscribe(ctx)
		wg.Add(1)
		go func() {
			for ev := range sub {
				ch <- ev
			}
			wg.Done()
		}()
	}
	{
		sub := app.Views.Subscribe(ctx)
		wg.Add(1)
		go func() {
			for ev := range sub {
				ch <- ev
			}
			wg.Done()
		}()
	}
	// cleanup function to be invoked when program is terminated.
	return ch, func() {
		cancel()
		// Wait for relays to finish before closing channel, to avoid sends
		// to a closed channel, which would result in a panic.
		wg.Wait()
		close(ch)
	}
}
