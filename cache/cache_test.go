package cache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramen"
	"ramen/cache"
)

func compileDoc(t *testing.T, src string) *ramen.Document {
	t.Helper()
	return ramen.Compile(context.Background(), "t.ramen", []byte(src), ramen.Options{})
}

func TestSnapshotRoundTrip(t *testing.T) {
	doc := compileDoc(t, "a\nb\na -> ghost")
	require.False(t, doc.Success())

	out := cache.Snapshot(doc)
	assert.False(t, out.Success)
	assert.Equal(t, doc.Located(), out.Located())
}

func TestKeyTracksContent(t *testing.T) {
	a := compileDoc(t, "a")
	b := compileDoc(t, "a")
	c := compileDoc(t, "b")

	assert.Equal(t, cache.Key(a), cache.Key(b))
	assert.NotEqual(t, cache.Key(a), cache.Key(c))
}

func TestDiskCachePutGet(t *testing.T) {
	dc, err := cache.Open(t.TempDir())
	require.NoError(t, err)

	doc := compileDoc(t, "Empty {}")
	key := cache.Key(doc)

	_, hit, err := dc.Get(key)
	require.NoError(t, err)
	assert.False(t, hit, "cold cache must miss")

	require.NoError(t, dc.Put(key, cache.Snapshot(doc)))

	got, hit, err := dc.Get(key)
	require.NoError(t, err)
	require.True(t, hit)
	assert.False(t, got.Success)
	assert.Equal(t, doc.Located(), got.Located())
}

func TestDiskCacheOverwrite(t *testing.T) {
	dc, err := cache.Open(t.TempDir())
	require.NoError(t, err)

	doc := compileDoc(t, "a")
	key := cache.Key(doc)
	require.NoError(t, dc.Put(key, cache.Snapshot(doc)))
	require.NoError(t, dc.Put(key, cache.Snapshot(doc)))

	got, hit, err := dc.Get(key)
	require.NoError(t, err)
	require.True(t, hit)
	assert.True(t, got.Success)
}

func TestDiskCacheDrop(t *testing.T) {
	dc, err := cache.Open(t.TempDir())
	require.NoError(t, err)

	doc := compileDoc(t, "a")
	require.NoError(t, dc.Put(cache.Key(doc), cache.Snapshot(doc)))
	require.NoError(t, dc.Drop())

	_, hit, err := dc.Get(cache.Key(doc))
	require.NoError(t, err)
	assert.False(t, hit, "dropped entries must miss")
}

func TestNilCacheIsNoop(t *testing.T) {
	var dc *cache.DiskCache
	doc := compileDoc(t, "a")

	require.NoError(t, dc.Put(cache.Key(doc), cache.Snapshot(doc)))
	_, hit, err := dc.Get(cache.Key(doc))
	require.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, dc.Drop())
}
