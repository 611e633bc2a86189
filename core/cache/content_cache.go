package cache

import (
	"sync"

	"traitscope/core/logger"
	"traitscope/core/models"
)

// ContentCache tracks source file content hashes so the watch loop can
// skip regeneration when a write did not change the bytes.
type ContentCache struct {
	entries map[string]*models.CacheEntry
	mutex   sync.RWMutex
}

var (
	globalCache *ContentCache
	cacheOnce   sync.Once
)

// GetCache returns the process-wide content cache.
func GetCache() *ContentCache {
	cacheOnce.Do(func() {
		globalCache = NewContentCache()
		logger.Debug("Initialized global content cache")
	})
	return globalCache
}

func NewContentCache() *ContentCache {
	return &ContentCache{
		entries: make(map[string]*models.CacheEntry),
	}
}

// HasContentChanged reports whether the file's content differs from the
// cached entry, refreshing the entry when it does. An unseen file always
// counts as changed.
func (cc *ContentCache) HasContentChanged(filePath string) (bool, error) {
	cc.mutex.Lock()
	defer cc.mutex.Unlock()

	if existing, ok := cc.entries[filePath]; ok {
		valid, err := existing.IsValid()
		if err != nil {
			return false, err
		}
		if valid {
			logger.Debug("Content unchanged for %s", filePath)
			return false, nil
		}
	}

	entry, err := models.NewCacheEntry(filePath)
	if err != nil {
		return false, err
	}
	cc.entries[filePath] = entry

	logger.Debug("Content changed for %s", filePath)
	return true, nil
}

// InvalidateFile drops the cached entry so the next check counts as
// changed.
func (cc *ContentCache) InvalidateFile(filePath string) {
	cc.mutex.Lock()
	defer cc.mutex.Unlock()

	if _, ok := cc.entries[filePath]; ok {
		delete(cc.entries, filePath)
		logger.Debug("Invalidated cache entry for %s", filePath)
	}
}

func (cc *ContentCache) Clear() {
	cc.mutex.Lock()
	defer cc.mutex.Unlock()

	cc.entries = make(map[string]*models.CacheEntry)
}

func (cc *ContentCache) Len() int {
	cc.mutex.RLock()
	defer cc.mutex.RUnlock()

	return len(cc.entries)
}
