package dedup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndIsSeen(t *testing.T) {
	dir := t.TempDir()
	cache := NewProfileCache(dir)

	url := "https://example.com/in/alice/"
	assert.False(t, cache.IsSeen(url))

	cache.Add([]string{url})
	assert.True(t, cache.IsSeen(url))

	// Reloading from disk keeps the entry.
	reloaded := NewProfileCache(dir)
	assert.True(t, reloaded.IsSeen(url))
}

func TestExpiredEntriesAreDropped(t *testing.T) {
	dir := t.TempDir()
	stale := time.Now().UnixMilli() - thirtyDaysMs - 1000
	entries := []seenEntry{
		{URL: "https://example.com/in/old/", Timestamp: stale},
		{URL: "https://example.com/in/new/", Timestamp: time.Now().UnixMilli()},
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seen_profiles.json"), data, 0644))

	cache := NewProfileCache(dir)
	assert.False(t, cache.IsSeen("https://example.com/in/old/"))
	assert.True(t, cache.IsSeen("https://example.com/in/new/"))
}
