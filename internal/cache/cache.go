// Package cache stores per-file lint results keyed by content hash, so
// unchanged diagrams are not re-analyzed across CLI runs.
package cache

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/blake3"

	"github.com/emresnme/merdia/pkg/models"
)

// Cache provides file-based caching for lint results.
type Cache struct {
	dir     string
	ttl     time.Duration
	enabled bool
}

// entry is one cached lint result.
type entry struct {
	Hash      string         `json:"hash"`
	Timestamp time.Time      `json:"timestamp"`
	Issues    []models.Issue `json:"issues"`
}

// New creates a cache rooted at dir. A disabled cache is a valid value
// whose operations are all no-ops.
func New(dir string, ttlHours int, enabled bool) (*Cache, error) {
	if !enabled {
		return &Cache{enabled: false}, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &Cache{
		dir:     dir,
		ttl:     time.Duration(ttlHours) * time.Hour,
		enabled: true,
	}, nil
}

// HashBytes computes a BLAKE3 hash of content and returns it as a hex
// string.
func HashBytes(data []byte) string {
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Get retrieves the cached issues for path when the stored content hash
// matches and the entry has not expired.
func (c *Cache) Get(path, contentHash string) ([]models.Issue, bool) {
	if !c.enabled {
		return nil, false
	}

	data, err := os.ReadFile(c.keyPath(path))
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, false
	}

	if e.Hash != contentHash {
		return nil, false
	}

	if time.Since(e.Timestamp) > c.ttl {
		os.Remove(c.keyPath(path))
		return nil, false
	}

	return e.Issues, true
}

// Put stores the lint result for path under its content hash.
func (c *Cache) Put(path, contentHash string, issues []models.Issue) error {
	if !c.enabled {
		return nil
	}

	data, err := json.Marshal(entry{
		Hash:      contentHash,
		Timestamp: time.Now(),
		Issues:    issues,
	})
	if err != nil {
		return err
	}

	return os.WriteFile(c.keyPath(path), data, 0o600)
}

// Invalidate removes the entry for path.
func (c *Cache) Invalidate(path string) error {
	if !c.enabled {
		return nil
	}
	err := os.Remove(c.keyPath(path))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes all cache entries.
func (c *Cache) Clear() error {
	if !c.enabled {
		return nil
	}
	return os.RemoveAll(c.dir)
}

// keyPath converts a file path to a cache file path. The key is hashed so
// path separators and case never leak into filenames.
func (c *Cache) keyPath(path string) string {
	hash := blake3.Sum256([]byte(path))
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".json")
}
