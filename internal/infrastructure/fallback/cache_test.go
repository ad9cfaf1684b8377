package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	cache := NewCache(t.TempDir())

	type entry struct {
		ID   string
		Name string
	}

	ok, err := cache.Load("store-1", "things", &[]entry{})
	require.NoError(t, err)
	assert.False(t, ok, "missing file must not be an error")

	in := []entry{{ID: "1", Name: "um"}, {ID: "2", Name: "dois"}}
	require.NoError(t, cache.Store("store-1", "things", in))

	var out []entry
	ok, err = cache.Load("store-1", "things", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestCacheScopesByStore(t *testing.T) {
	cache := NewCache(t.TempDir())

	require.NoError(t, cache.Store("store-1", "things", []string{"a"}))
	require.NoError(t, cache.Store("store-2", "things", []string{"b"}))

	var first, second []string
	_, err := cache.Load("store-1", "things", &first)
	require.NoError(t, err)
	_, err = cache.Load("store-2", "things", &second)
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, first)
	assert.Equal(t, []string{"b"}, second)
	assert.ElementsMatch(t, []string{"store-1", "store-2"}, cache.StoreIDs())
}
