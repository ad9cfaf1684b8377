package fallback

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Cache is the degraded last-resort store used when Postgres is
// unreachable. One JSON file per (store, collection) keeps every entry
// tenant-scoped; it is never the source of truth.
type Cache struct {
	dir string
	mu  sync.Mutex
}

func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

func (c *Cache) path(storeID, collection string) string {
	return filepath.Join(c.dir, storeID, collection+".json")
}

// Load reads the collection into v. A missing file is not an error: v is
// left untouched and ok is false.
func (c *Cache) Load(storeID, collection string, v any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path(storeID, collection))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read fallback cache: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode fallback cache: %w", err)
	}
	return true, nil
}

func (c *Cache) Store(storeID, collection string, v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode fallback cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(c.dir, storeID), 0o755); err != nil {
		return fmt.Errorf("create fallback cache dir: %w", err)
	}
	if err := os.WriteFile(c.path(storeID, collection), data, 0o644); err != nil {
		return fmt.Errorf("write fallback cache: %w", err)
	}
	return nil
}

// StoreIDs lists the tenants that have cached data.
func (c *Cache) StoreIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, entry.Name())
		}
	}
	return ids
}
