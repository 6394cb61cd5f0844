package servertab

import (
	"fmt"
	"strconv"
)

// DropHint indicates where a dragged tab will land relative to the tab under
// the pointer.
type DropHint int

const (
	NoHint DropHint = iota
	AboveHint
	BelowHint
)

func (h DropHint) String() string {
	return [...]string{"none", "above", "below"}[h]
}

// DropEffect is the operation advertised to the drag source while a drag is
// over a tab.
type DropEffect string

const DropMove DropEffect = "move"

// DragSession is a single drag gesture. Payload is the text written to the
// drag-data channel when the drag starts: the source tab's index.
type DragSession struct {
	SourceIndex int
	Payload     string
}

// StartDrag starts a drag gesture with this tab as its source.
func (t *Tab) StartDrag() DragSession {
	return DragSession{
		SourceIndex: t.index,
		Payload:     strconv.Itoa(t.index),
	}
}

// ParsePayload parses the drag-data payload into the source tab's index.
func ParsePayload(payload string) (int, error) {
	index, err := strconv.Atoi(payload)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("drag payload %q is not a tab index: %w", payload, ErrInvariantViolation)
	}
	return index, nil
}

// DragEnter sets the drop hint for a drag entering the tab. The hint is left
// unchanged if an error is returned.
func (t *Tab) DragEnter(payload string) error {
	source, err := ParsePayload(payload)
	if err != nil {
		return err
	}
	if t.identity == "" {
		return fmt.Errorf("tab %s has no identity: %w", t.Name, ErrInvariantViolation)
	}
	// A tab dragged onto itself is hinted above.
	if source > t.index {
		t.hint = BelowHint
	} else {
		t.hint = AboveHint
	}
	return nil
}

// DragLeave clears the drop hint.
func (t *Tab) DragLeave() {
	t.hint = NoHint
}

// DragOver accepts the drag, advertising a move.
func (t *Tab) DragOver() DropEffect {
	return DropMove
}
