package imaging

import (
	"fmt"
	"image"
	"os"
	"sync"
	"time"
)

// ImageCache provides thread-safe caching of decoded images, keyed by
// file path plus modification time.
//
// A cached entry is only served while the file's current mtime matches
// the one recorded at decode; a rewritten file is transparently
// re-read. Entries stay in memory until Evict() or Clear(), so long
// running processes handling many images should clean up periodically.
//
// The cache is passed by reference into whichever component needs it;
// there is no package-level instance.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]cacheEntry
}

type cacheEntry struct {
	img     image.Image
	modTime time.Time
}

// NewImageCache creates a new empty image cache, ready for concurrent
// use.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]cacheEntry),
	}
}

// Load returns the decoded image at path, reading from disk when the
// cache holds no fresh entry for it.
//
// The cache keys on the exact path string, so relative and absolute
// spellings of one file occupy separate entries.
func (c *ImageCache) Load(path string) (image.Image, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.RLock()
	if e, ok := c.images[path]; ok && e.modTime.Equal(stat.ModTime()) {
		c.mu.RUnlock()
		return e.img, nil
	}
	c.mu.RUnlock()

	img, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = cacheEntry{img: img, modTime: stat.ModTime()}
	c.mu.Unlock()

	return img, nil
}

// Evict removes the entry for path, if any. The next Load for the path
// reads from disk.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear removes all entries, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]cacheEntry)
	c.mu.Unlock()
}
