package servertab

import (
	"context"
	"sync"

	"github.com/leg100/hub/internal/platform"
)

// fakeView records the calls made to it.
type fakeView struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeView) Load(context.Context) error     { return f.record("load") }
func (f *fakeView) Hide(context.Context) error     { return f.record("hide") }
func (f *fakeView) Teardown(context.Context) error { return f.record("teardown") }

func (f *fakeView) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeView) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.err = err
}

func (f *fakeView) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.calls...)
}

// last returns the last call made, or an empty string if none were made.
func (f *fakeView) last() string {
	calls := f.Calls()
	if len(calls) == 0 {
		return ""
	}
	return calls[len(calls)-1]
}

type fakeRegistrar struct {
	indexes []int
}

func (f *fakeRegistrar) RegisterShortcut(index int) {
	f.indexes = append(f.indexes, index)
}

func newTestTab(pending PendingView, reg Registrar) *Tab {
	return New(Options{
		Name:           "chat.example.com",
		Icon:           "C",
		View:           pending,
		Platform:       platform.Other,
		Registrar:      reg,
		IdentityPrefix: "test-",
	})
}
