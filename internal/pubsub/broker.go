package pubsub

import (
	"context"
	"sync"

	"github.com/leg100/hub/internal/resource"
)

// subBufferSize is the buffer size of the channel for each subscription.
const subBufferSize = 1024

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Broker allows clients to publish events and subscribe to events
type Broker[T any] struct {
	subs   map[chan resource.Event[T]]struct{} // subscriptions
	mu     sync.Mutex                          // sync access to map
	closed bool

	logger Logger
}

func NewBroker[T any](logger Logger) *Broker[T] {
	return &Broker[T]{
		subs:   make(map[chan resource.Event[T]]struct{}),
		logger: logger,
	}
}

// Subscribe subscribes the caller to a stream of events. The subscription is
// closed when the context is canceled or when the broker is shut down.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan resource.Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := make(chan resource.Event[T], subBufferSize)
	if b.closed {
		close(sub)
		return sub
	}
	b.subs[sub] = struct{}{}

	// when the context is canceled remove the subscriber
	go func() {
		<-ctx.Done()
		b.unsubscribe(sub)
	}()

	return sub
}

// Publish an event to subscribers. Subscribers whose buffer is full are
// dropped; the host channel is fire-and-forget and must never block the UI.
func (b *Broker[T]) Publish(t resource.EventType, payload T) {
	var full []chan resource.Event[T]

	b.mu.Lock()
	for sub := range b.subs {
		select {
		case sub <- resource.Event[T]{Type: t, Payload: payload}:
		default:
			full = append(full, sub)
		}
	}
	b.mu.Unlock()

	for _, sub := range full {
		if b.logger != nil {
			b.logger.Error("unsubscribing full subscriber", "queue_length", subBufferSize)
		}
		b.unsubscribe(sub)
	}
}

// Shutdown closes all subscriptions. Subsequent subscriptions are closed
// immediately.
func (b *Broker[T]) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs {
		close(sub)
		delete(b.subs, sub)
	}
	b.closed = true
}

func (b *Broker[T]) unsubscribe(sub chan resource.Event[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; !ok {
		// already unsubscribed
		return
	}
	close(sub)
	delete(b.subs, sub)
}
