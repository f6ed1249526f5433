package internal

import (
	"crypto/md5"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	tt "github.com/jlint-dev/jlint/internal/types"
)

const cacheFileName = "jlint-cache.gob"

// CacheEntry stores one file's lint result keyed by a content+config hash.
type CacheEntry struct {
	Hash      string
	Issues    []tt.Issue
	CreatedAt time.Time
}

// Cache persists lint results between runs so unchanged files are not
// re-parsed. Entries are invalidated by hashing the file content together
// with the configuration fingerprint.
type Cache struct {
	dir     string
	mutex   sync.RWMutex
	entries map[string]CacheEntry
}

// NewCache opens (or creates) a cache directory and loads any saved entries.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	c := &Cache{
		dir:     dir,
		entries: make(map[string]CacheEntry),
	}
	if err := c.load(); err != nil {
		// A corrupt cache file is not fatal; start fresh.
		c.entries = make(map[string]CacheEntry)
	}
	return c, nil
}

// Get returns the cached issues for filename when the hash still matches.
func (c *Cache) Get(filename, hash string) ([]tt.Issue, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, ok := c.entries[filename]
	if !ok || entry.Hash != hash {
		return nil, false
	}
	return entry.Issues, true
}

// Set records the issues for filename under the given hash.
func (c *Cache) Set(filename, hash string, issues []tt.Issue) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[filename] = CacheEntry{
		Hash:      hash,
		Issues:    issues,
		CreatedAt: time.Now(),
	}
}

// Save writes the cache to disk.
func (c *Cache) Save() error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	f, err := os.Create(filepath.Join(c.dir, cacheFileName))
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(c.entries); err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	return nil
}

func (c *Cache) load() error {
	f, err := os.Open(filepath.Join(c.dir, cacheFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	return gob.NewDecoder(f).Decode(&c.entries)
}

// EnableCache attaches a persistent result cache to the engine.
func (e *Engine) EnableCache(dir string) error {
	cache, err := NewCache(dir)
	if err != nil {
		return err
	}
	e.cache = cache
	return nil
}

// SaveCache persists the attached cache, if any.
func (e *Engine) SaveCache() error {
	if e.cache == nil {
		return nil
	}
	return e.cache.Save()
}

// sourceHash fingerprints file content plus every configuration knob that
// can change lint output.
func (e *Engine) sourceHash(source []byte) string {
	h := md5.New()
	h.Write(source)
	fmt.Fprintf(h, "|%s|%d|%d", e.cfg.IndentStyle, e.cfg.IndentWidth, e.cfg.MaxLineLength)

	names := make([]string, 0, len(e.cfg.Rules))
	for name := range e.cfg.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(h, "|%s=%s", name, e.cfg.Rules[name].Severity)
	}
	ignored := make([]string, 0, len(e.ignoredRules))
	for name := range e.ignoredRules {
		ignored = append(ignored, name)
	}
	sort.Strings(ignored)
	for _, name := range ignored {
		fmt.Fprintf(h, "|ignore:%s", name)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
