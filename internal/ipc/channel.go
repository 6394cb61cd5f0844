// Package ipc is the channel between server tabs and the host, over which
// tabs announce which keyboard shortcut maps to which tab index.
package ipc

import (
	"github.com/leg100/hub/internal/logging"
	"github.com/leg100/hub/internal/pubsub"
	"github.com/leg100/hub/internal/resource"
)

// Binding maps a shortcut number, counting from 1, to a tab index.
type Binding struct {
	Shortcut int
	Index    int
}

// Channel sends shortcut registrations to the host. Sends are
// fire-and-forget: nothing is ever received in response.
type Channel struct {
	*pubsub.Broker[Binding]

	logger logging.Interface
}

func NewChannel(logger logging.Interface) *Channel {
	if logger == nil {
		logger = logging.Discard
	}
	return &Channel{
		Broker: pubsub.NewBroker[Binding](logger),
		logger: logger,
	}
}

// RegisterShortcut binds shortcut index+1 to the tab at index.
func (c *Channel) RegisterShortcut(index int) {
	b := Binding{Shortcut: index + 1, Index: index}
	c.logger.Debug("registering shortcut", "shortcut", b.Shortcut, "index", b.Index)
	c.Publish(resource.UpdatedEvent, b)
}

// UnregisterShortcut removes the binding for a shortcut, for when there is no
// longer a tab in its position.
func (c *Channel) UnregisterShortcut(shortcut int) {
	c.logger.Debug("unregistering shortcut", "shortcut", shortcut)
	c.Publish(resource.DeletedEvent, Binding{Shortcut: shortcut, Index: -1})
}
