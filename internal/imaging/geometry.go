package imaging

import (
	"errors"
	"fmt"
)

// ErrInvalidRegion reports a crop region that cannot be resolved
// against the source image.
var ErrInvalidRegion = errors.New("invalid crop region")

// FractionalRect describes a crop region as proportions of the source
// image dimensions, making the request resolution-independent. Every
// field must lie in [0.0, 1.0].
type FractionalRect struct {
	X float64 `json:"x"`      // Left edge as a fraction of image width
	Y float64 `json:"y"`      // Top edge as a fraction of image height
	W float64 `json:"width"`  // Region width as a fraction of image width
	H float64 `json:"height"` // Region height as a fraction of image height
}

// PixelRect is a crop region resolved to integer pixel coordinates.
// A normalized rect satisfies X+W <= imageWidth and Y+H <= imageHeight.
type PixelRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"width"`
	H int `json:"height"`
}

// Normalize resolves the fractional rect against source dimensions.
//
// Each fraction is scaled by its dimension and rounded half-up, i.e.
// truncated after adding 0.5. A region that would overflow the right or
// bottom edge keeps its origin and loses width or height instead; the
// origin is never shifted inward, so an oversized request crops less
// rather than cropping elsewhere.
//
// Fractions outside [0.0, 1.0] and non-positive source dimensions fail
// with ErrInvalidRegion before any pixel math runs.
func (r FractionalRect) Normalize(width, height int) (PixelRect, error) {
	if width <= 0 || height <= 0 {
		return PixelRect{}, fmt.Errorf("%w: source dimensions %dx%d", ErrInvalidRegion, width, height)
	}
	for _, v := range [4]float64{r.X, r.Y, r.W, r.H} {
		if v < 0.0 || v > 1.0 {
			return PixelRect{}, fmt.Errorf("%w: fraction %v outside [0.0, 1.0]", ErrInvalidRegion, v)
		}
	}

	p := PixelRect{
		X: int(r.X*float64(width) + 0.5),
		Y: int(r.Y*float64(height) + 0.5),
		W: int(r.W*float64(width) + 0.5),
		H: int(r.H*float64(height) + 0.5),
	}

	// Clamp width and height, never the origin.
	if p.X+p.W > width {
		p.W = width - p.X
	}
	if p.Y+p.H > height {
		p.H = height - p.Y
	}

	return p, nil
}
