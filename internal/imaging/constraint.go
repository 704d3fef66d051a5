package imaging

import (
	"image"
	"math"
	"path/filepath"
	"strings"
)

// FormatConstraint limits the output dimensions a format can encode.
type FormatConstraint struct {
	// MaxSide is the largest value either dimension may take.
	MaxSide int
}

// formatConstraints maps format identifiers to their hard limits.
// ICO directory entries store each dimension in a single byte, which
// caps both sides at 256.
var formatConstraints = map[string]FormatConstraint{
	"ico": {MaxSide: 256},
}

// FormatForPath derives a format identifier from a path's extension,
// case-insensitive, with "jpg" folded into "jpeg". An extension-less
// path yields the empty string.
func FormatForPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "jpg" {
		ext = "jpeg"
	}
	return ext
}

// Constrain rescales img when the target format caps its dimensions.
//
// Formats without a constraint, and images already inside the limit,
// pass through untouched so a compliant save never resamples. An
// oversized image has both dimensions scaled by maxSide / max(w, h),
// rounded half-up with a floor of one pixel, which preserves the
// aspect ratio and brings the longer side to exactly the limit.
func Constrain(img image.Image, format string) (image.Image, error) {
	c, ok := formatConstraints[format]
	if !ok {
		return img, nil
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= c.MaxSide {
		return img, nil
	}

	scale := float64(c.MaxSide) / float64(longest)
	newW := int(math.Round(float64(w) * scale))
	newH := int(math.Round(float64(h) * scale))
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	return Resize(img, newW, newH)
}
