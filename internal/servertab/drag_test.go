package servertab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedTab(index int) *Tab {
	tab := newTestTab(Resolved(&fakeView{}), nil)
	tab.Reindex(index)
	return tab
}

func TestTab_DragEnter(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		payload string
		want    DropHint
	}{
		{"dragged from below", 3, "5", BelowHint},
		{"dragged from above", 3, "2", AboveHint},
		{"dragged onto itself", 3, "3", AboveHint},
		{"dragged from far below", 4, "7", BelowHint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := placedTab(tt.index)

			require.NoError(t, tab.DragEnter(tt.payload))
			assert.Equal(t, tt.want, tab.Hint())
		})
	}
}

func TestTab_DragEnterInvariantViolation(t *testing.T) {
	for _, payload := range []string{"", "two", "-1", "1.5"} {
		t.Run("payload "+payload, func(t *testing.T) {
			tab := placedTab(3)

			err := tab.DragEnter(payload)
			assert.ErrorIs(t, err, ErrInvariantViolation)
			assert.Equal(t, NoHint, tab.Hint())
		})
	}

	t.Run("unplaced tab", func(t *testing.T) {
		tab := newTestTab(Resolved(&fakeView{}), nil)

		err := tab.DragEnter("1")
		assert.ErrorIs(t, err, ErrInvariantViolation)
		assert.Equal(t, NoHint, tab.Hint())
	})
}

func TestTab_DragLeave(t *testing.T) {
	for _, payload := range []string{"", "0", "9"} {
		tab := placedTab(4)
		_ = tab.DragEnter(payload)

		tab.DragLeave()
		assert.Equal(t, NoHint, tab.Hint())
	}
}

func TestTab_DragEnterThenLeave(t *testing.T) {
	tab := placedTab(4)

	require.NoError(t, tab.DragEnter("7"))
	assert.Equal(t, BelowHint, tab.Hint())

	tab.DragLeave()
	assert.Equal(t, NoHint, tab.Hint())
}

func TestTab_DragOver(t *testing.T) {
	tab := placedTab(1)
	require.NoError(t, tab.DragEnter("0"))

	assert.Equal(t, DropMove, tab.DragOver())
	// no transition
	assert.Equal(t, AboveHint, tab.Hint())
}

func TestTab_StartDrag(t *testing.T) {
	source := placedTab(6)
	target := placedTab(2)

	session := source.StartDrag()
	assert.Equal(t, DragSession{SourceIndex: 6, Payload: "6"}, session)

	require.NoError(t, target.DragEnter(session.Payload))
	assert.Equal(t, BelowHint, target.Hint())
}
