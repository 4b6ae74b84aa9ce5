package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/kyraymege/bookmarkd/internal/client/api"
)

func openTestCache(t *testing.T) *BookmarkCache {
	t.Helper()
	cache, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestEmptyCache(t *testing.T) {
	cache := openTestCache(t)

	list, err := cache.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReplaceAndList(t *testing.T) {
	cache := openTestCache(t)
	ctx := context.Background()

	first := []api.Bookmark{
		{ID: "b2", Title: "Zig", Link: "https://ziglang.org"},
		{ID: "b1", Title: "Go", Link: "https://go.dev", Description: "the language"},
	}
	require.NoError(t, cache.Replace(ctx, first))

	list, err := cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Go", list[0].Title)
	assert.Equal(t, "Zig", list[1].Title)

	// A refresh replaces the previous contents entirely.
	second := []api.Bookmark{{ID: "b3", Title: "Rust"}}
	require.NoError(t, cache.Replace(ctx, second))

	list, err = cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b3", list[0].ID)
}
