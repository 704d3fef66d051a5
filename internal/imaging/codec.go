package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"

	"github.com/anthonynsimon/bild/imgio"
	ico "github.com/biessek/golang-ico"
	"golang.org/x/image/bmp"
)

// jpegQuality applies to every JPEG encode.
const jpegQuality = 95

// DecodeFile reads and decodes the image at path. The format is sniffed
// from the byte stream, not the extension; supported inputs are PNG,
// JPEG, GIF, and BMP.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// DecodeBytes decodes an image from an in-memory buffer, guessing the
// format from its magic bytes.
func DecodeBytes(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// EncodeTo writes img to w in the given format. Format identifiers are
// the lowercased extensions FormatForPath produces.
func EncodeTo(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return imgio.PNGEncoder()(w, img)
	case "jpeg":
		return imgio.JPEGEncoder(jpegQuality)(w, img)
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "ico":
		return ico.Encode(w, img)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

// EncodeFile encodes img to path; the destination extension selects
// the format.
func EncodeFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	if err := EncodeTo(f, img, FormatForPath(path)); err != nil {
		f.Close()
		return fmt.Errorf("failed to save image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
