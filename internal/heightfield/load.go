package heightfield

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/mokiat/goexr/exr"
	"golang.org/x/image/bmp"

	"github.com/verdictzero/GANDER-B/internal/engine/texture"
)

// ErrUnsupportedFormat is returned when a path's extension is not in the
// accepted set. The check runs before any file access.
var ErrUnsupportedFormat = errors.New("unsupported heightmap format")

// ValidationError reports a non-square image on an import path.
type ValidationError struct {
	Width  int
	Height int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("heightmap must be square, got %dx%d", e.Width, e.Height)
}

// supportedExts is the full set of accepted heightmap extensions.
var supportedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".exr":  true,
	".tga":  true,
}

// Load reads, validates and normalizes a heightmap image file.
// Unknown extensions fail with ErrUnsupportedFormat before any decode
// attempt; non-square images fail with *ValidationError.
func Load(path string) (*Field, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExts[ext] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading heightmap: %w", err)
	}

	img, err := decode(data, ext)
	if err != nil {
		return nil, fmt.Errorf("decoding heightmap %s: %w", filepath.Base(path), err)
	}

	if err := ValidateSquare(img); err != nil {
		return nil, err
	}

	return normalize(img, ext == ".exr" || isDeepColor(img)), nil
}

// decode picks the decoder for an already-gated extension.
func decode(data []byte, ext string) (image.Image, error) {
	switch ext {
	case ".png":
		return png.Decode(bytes.NewReader(data))
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(data))
	case ".bmp":
		return bmp.Decode(bytes.NewReader(data))
	case ".tga":
		return texture.DecodeTGA(data)
	case ".exr":
		return exr.Decode(bytes.NewReader(data))
	}
	return nil, ErrUnsupportedFormat
}

// ValidateSquare rejects non-square images. Only import paths call this;
// procedural synthesis may produce any aspect.
func ValidateSquare(img image.Image) error {
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return &ValidationError{Width: b.Dx(), Height: b.Dy()}
	}
	return nil
}

// Normalize converts a decoded image into a height field. Deep-color
// sources (16-bit grayscale or RGBA) keep their full precision; anything
// else is quantized to 8 bits with the red channel used as height.
func Normalize(img image.Image) *Field {
	return normalize(img, isDeepColor(img))
}

func normalize(img image.Image, hdr bool) *Field {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	f := &Field{width: w, height: h, samples: make([]float32, w*h), hdr: hdr}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if hdr {
				f.samples[y*w+x] = float32(r) / 65535
			} else {
				f.samples[y*w+x] = float32(r>>8) / 255
			}
		}
	}
	return f
}

func isDeepColor(img image.Image) bool {
	switch img.ColorModel() {
	case color.Gray16Model, color.RGBA64Model, color.NRGBA64Model:
		return true
	}
	return false
}
