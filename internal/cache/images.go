package cache

import (
	"crypto/sha256"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gabun/headicons/internal/catalog"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// ImageCache provides disk + memory caching for icon images. Local files are
// read in place; remote images are kept on disk under cacheDir.
type ImageCache struct {
	cacheDir string
	svgSize  int
	memory   sync.Map // src -> *ebiten.Image
	failed   sync.Map // src -> error
	loading  sync.Map // src -> *loadEntry (in-flight dedup with waiters)
	sem      chan struct{}
}

// loadEntry tracks in-flight loads and their waiters.
type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(*ebiten.Image)
}

// NewImageCache creates a new image cache with the given disk directory.
// SVGs are rasterized with their longer side at svgSize pixels.
func NewImageCache(cacheDir string, svgSize int) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		cacheDir: cacheDir,
		svgSize:  svgSize,
		sem:      make(chan struct{}, 6),
	}, nil
}

// Get returns a cached image if available, or nil.
func (ic *ImageCache) Get(src string) *ebiten.Image {
	if v, ok := ic.memory.Load(src); ok {
		return v.(*ebiten.Image)
	}
	return nil
}

// Err returns the error of the last failed load of src, if any.
func (ic *ImageCache) Err(src string) error {
	if v, ok := ic.failed.Load(src); ok {
		return v.(error)
	}
	return nil
}

// LoadAsync starts loading an image in the background.
// The callback is called with the image when ready (may be called from a goroutine).
// Failed loads are remembered and not retried until Clear.
func (ic *ImageCache) LoadAsync(src string, callback func(*ebiten.Image)) {
	if src == "" {
		return
	}
	if v, ok := ic.memory.Load(src); ok {
		callback(v.(*ebiten.Image))
		return
	}
	if _, failed := ic.failed.Load(src); failed {
		return
	}

	entry := &loadEntry{}
	entry.callbacks = append(entry.callbacks, callback)

	if existing, loaded := ic.loading.LoadOrStore(src, entry); loaded {
		existingEntry := existing.(*loadEntry)
		existingEntry.mu.Lock()
		existingEntry.callbacks = append(existingEntry.callbacks, callback)
		existingEntry.mu.Unlock()
		return
	}

	go func() {
		defer ic.loading.Delete(src)

		ic.sem <- struct{}{}
		defer func() { <-ic.sem }()

		img, err := ic.LoadDecodedImage(src)
		if err != nil {
			log.Printf("Failed to load image %s: %v", src, err)
			ic.failed.Store(src, err)
			return
		}

		eimg := ebiten.NewImageFromImage(img)
		ic.memory.Store(src, eimg)

		entry.mu.Lock()
		cbs := make([]func(*ebiten.Image), len(entry.callbacks))
		copy(cbs, entry.callbacks)
		entry.mu.Unlock()

		for _, cb := range cbs {
			cb(eimg)
		}
	}()
}

// LoadDecodedImage reads and decodes src without touching the in-memory
// ebiten cache.
func (ic *ImageCache) LoadDecodedImage(src string) (image.Image, error) {
	data, err := ic.readSource(src)
	if err != nil {
		return nil, err
	}
	return Decode(data, src, ic.svgSize)
}

func (ic *ImageCache) readSource(src string) ([]byte, error) {
	if !catalog.IsRemote(src) {
		return os.ReadFile(src)
	}

	diskPath := ic.diskPath(src)
	if data, err := os.ReadFile(diskPath); err == nil {
		return data, nil
	}

	resp, err := httpClient.Get(src)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(diskPath, data, 0o644); err != nil {
		log.Printf("Failed to write image cache %s: %v", diskPath, err)
	}
	return data, nil
}

func (ic *ImageCache) diskPath(src string) string {
	h := sha256.Sum256([]byte(src))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// CacheDir returns the disk cache directory path.
func (ic *ImageCache) CacheDir() string {
	return ic.cacheDir
}

// Clear forgets every image and failure held in memory.
func (ic *ImageCache) Clear() {
	ic.memory = sync.Map{}
	ic.failed = sync.Map{}
}

// ClearDisk removes all cached images from disk and memory, leaving an
// empty cache directory behind.
func (ic *ImageCache) ClearDisk() error {
	ic.Clear()
	if err := os.RemoveAll(ic.cacheDir); err != nil {
		return err
	}
	return os.MkdirAll(ic.cacheDir, 0o755)
}
