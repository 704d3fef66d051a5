package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrInvalidDimensions reports a zero or negative resize target.
var ErrInvalidDimensions = errors.New("invalid target dimensions")

// Resize scales img to exactly width x height pixels using the triangle
// (bilinear) kernel. The source image is left untouched.
func Resize(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return imaging.Resize(img, width, height, imaging.Linear), nil
}

// Crop extracts rect from img without resampling, preserving pixel
// values. rect must already be normalized against img's dimensions;
// Crop rejects empty and out-of-bounds rects rather than clamping them.
func Crop(img image.Image, rect PixelRect) (image.Image, error) {
	if rect.W <= 0 || rect.H <= 0 {
		return nil, fmt.Errorf("%w: empty rect %dx%d", ErrInvalidRegion, rect.W, rect.H)
	}

	bounds := img.Bounds()
	if rect.X < 0 || rect.Y < 0 || rect.X+rect.W > bounds.Dx() || rect.Y+rect.H > bounds.Dy() {
		return nil, fmt.Errorf("%w: rect (%d,%d %dx%d) outside image %dx%d",
			ErrInvalidRegion, rect.X, rect.Y, rect.W, rect.H, bounds.Dx(), bounds.Dy())
	}

	return imaging.Crop(img, image.Rect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H)), nil
}
