package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogHasBuiltins(t *testing.T) {
	c := DefaultCatalog()
	for _, et := range []string{TypeUsername, TypePassword, TypeLoginButton, TypeSuccessIndicator} {
		entry, ok := c.Get(et)
		require.True(t, ok, et)
		assert.NotEmpty(t, entry.Selectors, et)
	}
}

func TestCatalogRegisterOverrides(t *testing.T) {
	c := NewCatalog()
	c.Register("chatInput", PatternEntry{Selectors: []string{"#chat"}})
	c.Register("chatInput", PatternEntry{Selectors: []string{"#chat-v2"}})

	entry, ok := c.Get("chatInput")
	require.True(t, ok)
	assert.Equal(t, []string{"#chat-v2"}, entry.Selectors)
}

func TestCatalogCloneIsolated(t *testing.T) {
	orig := DefaultCatalog()
	clone := orig.Clone()

	clone.Register("chatInterface", PatternEntry{Selectors: []string{".chat"}})
	_, ok := orig.Get("chatInterface")
	assert.False(t, ok)

	// Мутация срезов копии не видна оригиналу.
	entry, _ := clone.Get(TypeUsername)
	require.NotEmpty(t, entry.Selectors)
	entry.Selectors[0] = "#mutated"
	origEntry, _ := orig.Get(TypeUsername)
	assert.NotEqual(t, "#mutated", origEntry.Selectors[0])
}

func TestCatalogTypesSorted(t *testing.T) {
	c := NewCatalog()
	c.Register("b", PatternEntry{})
	c.Register("a", PatternEntry{})
	c.Register("c", PatternEntry{})
	assert.Equal(t, []string{"a", "b", "c"}, c.Types())
}
