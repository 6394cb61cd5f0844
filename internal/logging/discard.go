package logging

// Interface is the logging interface accepted by components. Components that
// are handed no logger use Discard.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var Discard Interface = &noop{}

type noop struct{}

func (noop) Debug(msg string, args ...any) {}

func (noop) Info(msg string, args ...any) {}

func (noop) Warn(msg string, args ...any) {}

func (noop) Error(msg string, args ...any) {}
