package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// supportedExtensions lists the raster formats picked up during
// directory enumeration, lowercased without the dot.
var supportedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
}

// ImageInfo is a read-only snapshot of one image file. It is built
// once per response and never mutated afterwards.
type ImageInfo struct {
	// Path is the file path exactly as it was resolved.
	Path string `json:"path"`

	// Name is the base name of the file.
	Name string `json:"name"`

	// Width and Height are pixel dimensions of the decoded image.
	Width  int `json:"width"`
	Height int `json:"height"`

	// SizeBytes is the encoded size on disk.
	SizeBytes int64 `json:"size_bytes"`

	// AverageColor is the image's mean color as "#rrggbb".
	AverageColor string `json:"average_color"`
}

// ListImages enumerates the supported images directly inside dir
// (non-recursive).
//
// Files that fail to stat or decode are skipped, so one corrupt file
// cannot sink the whole listing; an unreadable directory is the only
// terminal error.
func ListImages(cache *ImageCache, dir string) ([]ImageInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	images := make([]ImageInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		if !supportedExtensions[ext] {
			continue
		}
		info, err := GetImageInfo(cache, filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		images = append(images, *info)
	}

	return images, nil
}

// GetImageInfo loads the image at path and returns its metadata
// snapshot. Unlike ListImages, failures propagate to the caller.
func GetImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Path:         path,
		Name:         filepath.Base(path),
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		SizeBytes:    stat.Size(),
		AverageColor: averageColor(img),
	}, nil
}

// averageColor collapses img to a single pixel with the triangle
// kernel and reports it as a hex string.
func averageColor(img image.Image) string {
	px := imaging.Resize(img, 1, 1, imaging.Linear).NRGBAAt(0, 0)
	c := colorful.Color{
		R: float64(px.R) / 255.0,
		G: float64(px.G) / 255.0,
		B: float64(px.B) / 255.0,
	}
	return c.Hex()
}
