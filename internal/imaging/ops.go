package imaging

import (
	"bytes"
	"fmt"
)

// ResizeFile decodes the image at path, scales it to exactly
// width x height, and re-encodes it over the original file in its
// extension-derived format.
//
// Concurrent calls against the same path are not serialized; the last
// writer wins.
func ResizeFile(cache *ImageCache, path string, width, height int) error {
	img, err := cache.Load(path)
	if err != nil {
		return err
	}

	resized, err := Resize(img, width, height)
	if err != nil {
		return err
	}

	if err := EncodeFile(path, resized); err != nil {
		return err
	}
	cache.Evict(path)
	return nil
}

// ResizeBytes decodes an in-memory image buffer, scales it to exactly
// width x height, and returns the result encoded as PNG.
func ResizeBytes(data []byte, width, height int) ([]byte, error) {
	img, err := DecodeBytes(data)
	if err != nil {
		return nil, err
	}

	resized, err := Resize(img, width, height)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := EncodeTo(&buf, resized, "png"); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// CropFile decodes the image at path, resolves region against its
// dimensions, and re-encodes the cropped result over the original
// file. It returns the pixel rect that was applied.
//
// Like ResizeFile, concurrent writers to one path are not serialized.
func CropFile(cache *ImageCache, path string, region FractionalRect) (PixelRect, error) {
	img, err := cache.Load(path)
	if err != nil {
		return PixelRect{}, err
	}

	bounds := img.Bounds()
	rect, err := region.Normalize(bounds.Dx(), bounds.Dy())
	if err != nil {
		return PixelRect{}, err
	}

	cropped, err := Crop(img, rect)
	if err != nil {
		return PixelRect{}, err
	}

	if err := EncodeFile(path, cropped); err != nil {
		return PixelRect{}, err
	}
	cache.Evict(path)
	return rect, nil
}

// SaveAs re-encodes the image at src into the format implied by dst's
// extension, applying that format's dimension constraint first. An
// already-compliant image is encoded without resampling. It returns
// the dimensions of the written image.
func SaveAs(cache *ImageCache, src, dst string) (width, height int, err error) {
	img, err := cache.Load(src)
	if err != nil {
		return 0, 0, err
	}

	constrained, err := Constrain(img, FormatForPath(dst))
	if err != nil {
		return 0, 0, err
	}

	if err := EncodeFile(dst, constrained); err != nil {
		return 0, 0, err
	}

	bounds := constrained.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}
