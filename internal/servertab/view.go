package servertab

import (
	"context"
	"sync"
)

// ContentView renders a server's content. It is owned exclusively by the tab
// it is bound to.
type ContentView interface {
	// Load makes the view visible, loading its content if necessary.
	Load(ctx context.Context) error
	// Hide makes the view invisible.
	Hide(ctx context.Context) error
	// Teardown releases the view and detaches it from the visual tree.
	Teardown(ctx context.Context) error
}

// PendingView is a content view that is constructed asynchronously.
type PendingView interface {
	// Await blocks until the view is available or the context is canceled.
	Await(ctx context.Context) (ContentView, error)
}

// Promise is a PendingView that is resolved exactly once by its constructor.
type Promise struct {
	done chan struct{}
	once sync.Once

	view ContentView
	err  error
}

func NewPromise() *Promise {
	return &Promise{done: make(chan struct{})}
}

// Resolved returns a promise that has already been resolved with the view.
func Resolved(view ContentView) *Promise {
	p := NewPromise()
	p.Resolve(view, nil)
	return p
}

// Resolve resolves the promise with either a view or an error. Only the first
// call has any effect.
func (p *Promise) Resolve(view ContentView, err error) {
	p.once.Do(func() {
		p.view = view
		p.err = err
		close(p.done)
	})
}

func (p *Promise) Await(ctx context.Context) (ContentView, error) {
	select {
	case <-p.done:
		return p.view, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
