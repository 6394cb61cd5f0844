package servertab

import (
	"strconv"
	"testing"

	"github.com/leg100/hub/internal/platform"
	"github.com/stretchr/testify/assert"
)

func TestShortcutLabel(t *testing.T) {
	for i := 0; i < 12; i++ {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			mac := ShortcutLabel(i, platform.Mac)
			other := ShortcutLabel(i, platform.Other)

			if i >= MaxShortcuts {
				assert.Empty(t, mac)
				assert.Empty(t, other)
				return
			}
			assert.Equal(t, "⌘"+strconv.Itoa(i+1), mac)
			assert.Equal(t, "Ctrl+"+strconv.Itoa(i+1), other)
		})
	}
}
