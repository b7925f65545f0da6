package sonar

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
)

// Cache provides thread-safe caching of loaded frames to avoid redundant
// disk reads and image-to-intensity conversion.
//
// Frames are keyed by the exact path string used to load them. Cached
// frames remain in memory until explicitly removed via Evict or Clear;
// calibration sweeps that reprocess the same recording benefit the most.
type Cache struct {
	mu     sync.RWMutex
	frames map[string]*Frame
}

// NewCache creates an empty frame cache, ready for concurrent use.
func NewCache() *Cache {
	return &Cache{
		frames: make(map[string]*Frame),
	}
}

// Load retrieves a frame from the cache or decodes it from disk.
//
// Supported formats are PNG, JPEG and GIF. 16-bit grayscale PNG is the
// native recording format; other color models are converted per
// FromImage.
func (c *Cache) Load(path string) (*Frame, error) {
	c.mu.RLock()
	if f, ok := c.frames[path]; ok {
		c.mu.RUnlock()
		return f, nil
	}
	c.mu.RUnlock()

	f, err := LoadFrame(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.frames[path] = f
	c.mu.Unlock()

	return f, nil
}

// Evict removes a single frame from the cache by its path.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.frames, path)
	c.mu.Unlock()
}

// Clear removes all cached frames, freeing the associated memory.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.frames = make(map[string]*Frame)
	c.mu.Unlock()
}

// LoadFrame decodes a single image file into an intensity frame without
// caching.
func LoadFrame(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frame: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}

	return FromImage(img), nil
}
