package cache

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

var _ RequestCacher = (*MemoryRequestCacher)(nil)
var _ RequestCacher = (*RedisRequestCacher)(nil)

func TestMemoryCacheKeepsNewestFirst(t *testing.T) {
	cacher := CreateMemoryCache(3)

	for _, v := range []string{"a", "b", "c", "d"} {
		require.NoError(t, cacher.Write("jane", []byte(v)))
	}

	entries, err := cacher.Read("jane")
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b"}, entries)
}

func TestMemoryCacheKeysAreIndependent(t *testing.T) {
	cacher := CreateMemoryCache(3)
	require.NoError(t, cacher.Write("jane", []byte("a")))

	entries, err := cacher.Read("john")
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = cacher.Read("jane")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, entries)
}
