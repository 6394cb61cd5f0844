package resource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID_String(t *testing.T) {
	tab := NewID(Tab)
	srv := NewID(Server)

	t.Run("prefixed with kind", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(tab.String(), "tab-"))
		assert.True(t, strings.HasPrefix(srv.String(), "srv-"))
		assert.Len(t, tab.String(), len("tab-")+idShortLen)
	})

	t.Run("unique", func(t *testing.T) {
		assert.NotEqual(t, tab, NewID(Tab))
	})

	t.Run("global", func(t *testing.T) {
		assert.Equal(t, "global", GlobalID.String())
	})
}
