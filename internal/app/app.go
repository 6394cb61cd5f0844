// package app is responsible for configuring the application and
// constructing its services.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/leg100/hub/internal/ipc"
	"github.com/leg100/hub/internal/logging"
	"github.com/leg100/hub/internal/view"
)

// App holds the services shared by the TUI.
type App struct {
	Logger  *logging.Logger
	Channel *ipc.Channel
	Views   *view.Service

	// ctx is canceled upon cleanup
	ctx     context.Context
	cancel  context.CancelFunc
	logFile *os.File
}

// New constructs the application's services.
func New(cfg Config) (*App, error) {
	app := &App{}

	var writers []io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		app.logFile = f
		writers = append(writers, f)
	}
	app.Logger = logging.NewLogger(logging.Options{
		Level:             cfg.Logging.Level,
		AdditionalWriters: writers,
	})
	app.Logger.Info("starting hub", "servers", len(cfg.Servers), "platform", cfg.Platform)

	app.ctx, app.cancel = context.WithCancel(context.Background())
	app.Channel = ipc.NewChannel(app.Logger)
	app.Views = view.NewService(view.ServiceOptions{
		ConnectDelay: cfg.ConnectDelay,
		Logger:       app.Logger,
	})
	if cfg.SimulateUnread > 0 {
		go app.Views.Simulate(app.ctx, cfg.SimulateUnread)
	}
	return app, nil
}

// Context is canceled when the app is cleaned up.
func (a *App) Context() context.Context {
	return a.ctx
}

// Cleanup stops background work and closes subscriptions.
func (a *App) Cleanup() {
	a.cancel()
	a.Views.Shutdown()
	a.Channel.Shutdown()
	a.Logger.Shutdown()
	if a.logFile != nil {
		a.logFile.Close()
	}
}
