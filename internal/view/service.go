// Package view provides the content views bound to server tabs.
package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/leg100/hub/internal/logging"
	"github.com/leg100/hub/internal/pubsub"
	"github.com/leg100/hub/internal/resource"
	"github.com/leg100/hub/internal/servertab"
)

// Unread is the event payload announcing a server's unread count.
type Unread struct {
	Server resource.ID
	Count  int
}

type ServiceOptions struct {
	// ConnectDelay is how long a pane takes to construct.
	ConnectDelay time.Duration
	Logger       logging.Interface
}

// Service constructs panes and relays their unread counts.
type Service struct {
	*pubsub.Broker[Unread]

	delay  time.Duration
	logger logging.Interface

	mu    sync.Mutex
	panes []*Pane
}

func NewService(opts ServiceOptions) *Service {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	return &Service{
		Broker: pubsub.NewBroker[Unread](opts.Logger),
		delay:  opts.ConnectDelay,
		logger: opts.Logger,
	}
}

// Open constructs a pane for the server in the background, returning a
// promise that resolves once the pane is ready, or with an error if the
// server cannot be connected to.
func (s *Service) Open(ctx context.Context, server Server) *servertab.Promise {
	promise := servertab.NewPromise()
	go func() {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			promise.Resolve(nil, ctx.Err())
			return
		}
		pane, err := s.connect(server)
		if err != nil {
			s.logger.Error("opening content view", "server", server, "error", err)
			promise.Resolve(nil, err)
			return
		}
		promise.Resolve(pane, nil)
	}()
	return promise
}

func (s *Service) connect(server Server) (*Pane, error) {
	switch server.URL.Scheme {
	case "http", "https":
	default:
		return nil, fmt.Errorf("%s: unsupported scheme: %q", server, server.URL.Scheme)
	}
	pane := &Pane{
		Server: server,
		onUnread: func(srv Server, n int) {
			s.Publish(resource.UpdatedEvent, Unread{Server: srv.ID, Count: n})
		},
	}
	s.mu.Lock()
	s.panes = append(s.panes, pane)
	s.mu.Unlock()

	s.logger.Info("connected to server", "server", server, "url", server.URL)
	return pane, nil
}

// Simulate delivers a message to every pane at the given interval until the
// context is canceled.
func (s *Service) Simulate(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			panes := append([]*Pane(nil), s.panes...)
			s.mu.Unlock()

			for _, p := range panes {
				p.receive()
			}
		case <-ctx.Done():
			return
		}
	}
}
