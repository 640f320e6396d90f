package dedup

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type seenEntry struct {
	URL       string `json:"url"`
	Timestamp int64  `json:"timestamp"`
}

// ProfileCache remembers which profiles were already harvested recently,
// so repeated runs can skip them when skip_seen is enabled.
type ProfileCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
}

const thirtyDaysMs = int64(30 * 24 * 60 * 60 * 1000)

// NewProfileCache creates or loads a profile cache
func NewProfileCache(cacheDir string) *ProfileCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	filepath := filepath.Join(cacheDir, "seen_profiles.json")
	cache := &ProfileCache{
		filePath: filepath,
		seen:     make(map[string]int64),
	}
	cache.load()
	return cache
}

// IsSeen checks if a profile URL is in the cache. Expired entries are
// dropped when the cache is loaded from disk, not re-checked here.
func (pc *ProfileCache) IsSeen(url string) bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	_, exists := pc.seen[url]
	return exists
}

func (pc *ProfileCache) Add(urls []string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, url := range urls {
		if _, exists := pc.seen[url]; !exists {
			pc.seen[url] = now
			changed = true
		}
	}

	if changed {
		pc.save()
	}
}

// load reads the cache from disk, dropping entries past the expiry window
func (pc *ProfileCache) load() {
	data, err := os.ReadFile(pc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read seen_profiles.json: %v", err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse seen_profiles.json: %v", err)
		return
	}

	thirtyDaysAgo := time.Now().UnixMilli() - thirtyDaysMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > thirtyDaysAgo {
			pc.seen[e.URL] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously harvested profiles (%d expired and removed)", loaded, len(entries)-loaded)
}

// save writes the current cache to disk
func (pc *ProfileCache) save() {
	entries := make([]seenEntry, 0, len(pc.seen))
	for url, ts := range pc.seen {
		entries = append(entries, seenEntry{URL: url, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen profiles: %v", err)
		return
	}
	if err := os.WriteFile(pc.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write seen_profiles.json: %v", err)
	}
}
