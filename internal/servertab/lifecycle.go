package servertab

import (
	"context"
	"fmt"
	"sync"

	"github.com/leg100/hub/internal/logging"
)

// State is the lifecycle state of a tab's content view.
type State int

const (
	Inactive State = iota
	Active
	Destroyed
)

func (s State) String() string {
	return [...]string{"inactive", "active", "destroyed"}[s]
}

// Lifecycle drives a tab's content view through its states. The view is
// resolved asynchronously, and operations may be invoked before it resolves
// and from different goroutines. Each operation records the requested state
// in a single slot, and whichever operation first gets to apply after the
// view resolves applies the most recently requested state; operations whose
// request has since been superseded return without touching the view.
type Lifecycle struct {
	name    string
	pending PendingView
	logger  logging.Interface

	mu        sync.Mutex
	requested State
	// seq numbers each request; applied is the seq of the last request
	// applied to the view.
	seq     uint64
	applied uint64
	current State
	// destroyed is set as soon as a destroy is requested.
	destroyed bool

	// serialises application of requests to the view.
	applying sync.Mutex
}

func newLifecycle(name string, pending PendingView, logger logging.Interface) *Lifecycle {
	if logger == nil {
		logger = logging.Discard
	}
	return &Lifecycle{
		name:    name,
		pending: pending,
		logger:  logger,
	}
}

// Activate makes the content view visible. Upon returning without error the
// view has been asked to load, unless a later request superseded it.
func (l *Lifecycle) Activate(ctx context.Context) error {
	return l.Request(Active)(ctx)
}

// Deactivate hides the content view.
func (l *Lifecycle) Deactivate(ctx context.Context) error {
	return l.Request(Inactive)(ctx)
}

// Destroy tears down the content view. Any lifecycle operation invoked after
// Destroy returns ErrIllegalState. If the context is canceled before the view
// resolves, the teardown still happens once it does.
func (l *Lifecycle) Destroy(ctx context.Context) error {
	return l.Request(Destroyed)(ctx)
}

// Request records a request for the content view to enter the given state,
// returning a function that blocks until the request has been applied or
// superseded. Requests take effect in the order they are recorded,
// regardless of the order in which the returned functions are called.
func (l *Lifecycle) Request(want State) func(context.Context) error {
	seq, err := l.enqueue(want)
	return func(ctx context.Context) error {
		if err != nil {
			return err
		}
		err := l.complete(ctx, seq)
		if err != nil && want == Destroyed && ctx.Err() != nil {
			go func() {
				if err := l.complete(context.WithoutCancel(ctx), seq); err != nil {
					l.logger.Error("tearing down content view", "tab", l.name, "error", err)
				}
			}()
		}
		return err
	}
}

// State returns the state last applied to the content view.
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.current
}

// IsDestroyed is true once Destroy has been invoked.
func (l *Lifecycle) IsDestroyed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.destroyed
}

func (l *Lifecycle) enqueue(want State) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.destroyed {
		return 0, fmt.Errorf("%s: %s after destroy: %w", l.name, want, ErrIllegalState)
	}
	l.seq++
	l.requested = want
	if want == Destroyed {
		l.destroyed = true
	}
	return l.seq, nil
}

func (l *Lifecycle) complete(ctx context.Context, seq uint64) error {
	view, err := l.pending.Await(ctx)
	if err != nil {
		return fmt.Errorf("%s: awaiting content view: %w", l.name, err)
	}
	return l.apply(ctx, view, seq)
}

func (l *Lifecycle) apply(ctx context.Context, view ContentView, seq uint64) error {
	l.applying.Lock()
	defer l.applying.Unlock()

	l.mu.Lock()
	if l.applied >= seq || l.current == Destroyed {
		// a later request has already been applied on our behalf
		l.mu.Unlock()
		return nil
	}
	want, latest := l.requested, l.seq
	l.mu.Unlock()

	var err error
	switch want {
	case Active:
		err = view.Load(ctx)
	case Inactive:
		err = view.Hide(ctx)
	case Destroyed:
		err = view.Teardown(ctx)
	}

	if err != nil {
		// Leave the request unapplied so that the next caller retries it.
		return fmt.Errorf("%s: applying %s: %w", l.name, want, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.applied = latest
	l.current = want
	l.logger.Debug("applied tab state", "tab", l.name, "state", want)
	return nil
}
