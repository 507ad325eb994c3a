package mizui

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Get(t *testing.T) {
	fsys := newMemFS(map[string]string{"page.mizui": "hello", "empty.mizui": ""})
	store := NewStore(fsys, NewMapCache())

	for range 3 {
		text, err := store.Get("page.mizui")
		require.NoError(t, err)
		assert.Equal(t, "hello", text)
	}
	assert.Equal(t, 1, fsys.readCount("page.mizui"))

	text, err := store.Get("empty.mizui")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestStore_NotFound(t *testing.T) {
	store := NewStore(newMemFS(nil), NewMapCache())

	_, err := store.Get("missing.mizui")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
	assert.Equal(t, "template not found: missing.mizui", err.Error())
}

func TestStore_CacheOutlivesFile(t *testing.T) {
	fsys := newMemFS(map[string]string{"page.mizui": "v1"})
	store := NewStore(fsys, NewMapCache())

	_, err := store.Get("page.mizui")
	require.NoError(t, err)
	fsys.write("page.mizui", "v2")

	text, err := store.Get("page.mizui")
	require.NoError(t, err)
	assert.Equal(t, "v1", text)
}

func TestMapCache_Concurrent(t *testing.T) {
	c := NewMapCache()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Set(string(rune('a'+i)), i)
			c.Get("a")
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, c.Len())
	v, ok := c.Get("c")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestLRUCache(t *testing.T) {
	_, err := NewLRUCache(0)
	require.Error(t, err)

	c, err := NewLRUCache(2)
	require.NoError(t, err)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "least recently used entry is evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestErrorKinds(t *testing.T) {
	err := &Error{Kind: KindSyntax, Identifier: "x", Line: 3, Delim: "{{"}

	assert.True(t, errors.Is(err, ErrSyntax))
	assert.False(t, errors.Is(err, ErrCompilation))
	assert.Equal(t, KindSyntax, KindOf(err))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, "render error", KindRenderInvocation.String())
	assert.Equal(t, "Component not found", KindComponentNotFound.Title())
	assert.Equal(t, "Unknown error", Kind(0).Title())
}
