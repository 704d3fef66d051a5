package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// createTestImage writes a solid-color PNG into dir and returns its
// path.
func createTestImage(t *testing.T, dir, name string, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, t.TempDir(), "a.png", 40, 30, color.NRGBA{255, 0, 0, 255})

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", b.Dx(), b.Dy())
	}

	// Same path, unchanged file: same cached object.
	again, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if again != img {
		t.Error("unchanged file should be served from cache")
	}
}

func TestImageCache_Load_MissingFile(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestImageCache_InvalidatesOnRewrite(t *testing.T) {
	cache := NewImageCache()
	dir := t.TempDir()
	path := createTestImage(t, dir, "a.png", 40, 30, color.NRGBA{255, 0, 0, 255})

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Rewrite the file and force a distinct mtime; coarse filesystem
	// timestamps would otherwise make this flaky.
	createTestImage(t, dir, "a.png", 12, 8, color.NRGBA{0, 255, 0, 255})
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("failed to bump mtime: %v", err)
	}

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after rewrite failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Errorf("stale entry served: got %dx%d, want 12x8", b.Dx(), b.Dy())
	}
}

func TestImageCache_Evict(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, t.TempDir(), "a.png", 10, 10, color.NRGBA{0, 0, 255, 255})

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)

	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if first == second {
		t.Error("Evict should force a re-read from disk")
	}

	// Evicting an unknown path is a no-op.
	cache.Evict("/never/loaded.png")
}

func TestImageCache_Clear(t *testing.T) {
	cache := NewImageCache()
	dir := t.TempDir()
	a := createTestImage(t, dir, "a.png", 10, 10, color.NRGBA{1, 1, 1, 255})
	b := createTestImage(t, dir, "b.png", 10, 10, color.NRGBA{2, 2, 2, 255})

	firstA, _ := cache.Load(a)
	firstB, _ := cache.Load(b)

	cache.Clear()

	secondA, err := cache.Load(a)
	if err != nil {
		t.Fatalf("Load after Clear failed: %v", err)
	}
	secondB, err := cache.Load(b)
	if err != nil {
		t.Fatalf("Load after Clear failed: %v", err)
	}
	if firstA == secondA || firstB == secondB {
		t.Error("Clear should drop every entry")
	}
}

func TestImageCache_ConcurrentLoad(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, t.TempDir(), "a.png", 20, 20, color.NRGBA{9, 9, 9, 255})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				t.Errorf("concurrent Load failed: %v", err)
			}
		}()
	}
	wg.Wait()
}
