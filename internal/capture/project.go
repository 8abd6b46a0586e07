package capture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/verdictzero/GANDER-B/internal/engine/texture"
	"github.com/verdictzero/GANDER-B/internal/heightfield"
)

// ErrUnsupportedImage is returned when a projection path's extension is
// not in the accepted set. Checked before any file access.
var ErrUnsupportedImage = errors.New("unsupported projection image format")

// projectionExts is the accepted set of projection image extensions.
var projectionExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tga":  true,
}

// LoadProjection reads a square image for draping over the terrain.
// All validation runs before the caller touches render state, so a
// rejected image leaves the current projection intact. Non-square
// images fail with *heightfield.ValidationError.
func LoadProjection(path string) (*image.RGBA, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !projectionExts[ext] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedImage, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading projection image: %w", err)
	}

	var img image.Image
	switch ext {
	case ".png":
		img, err = png.Decode(bytes.NewReader(data))
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case ".bmp":
		img, err = bmp.Decode(bytes.NewReader(data))
	case ".tga":
		img, err = texture.DecodeTGA(data)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding projection image %s: %w", filepath.Base(path), err)
	}

	if err := heightfield.ValidateSquare(img); err != nil {
		return nil, err
	}

	return texture.ImageToRGBA(img), nil
}
