// Package capture bakes the current terrain view to PNG files and
// loads projection images for draping over the terrain.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// flipPixels converts bottom-up RGBA pixel rows, as read back from GL,
// into a top-down image.
func flipPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcY := height - 1 - y
		srcOffset := srcY * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}

// timestampedPath builds the output filename for a capture taken now.
func timestampedPath(dir, prefix string, now time.Time) string {
	name := fmt.Sprintf("%s_%s.png", prefix, now.Format("2006-01-02_15-04-05"))
	if dir != "" {
		return filepath.Join(dir, name)
	}
	return name
}

// savePNG writes the image, creating the output directory if needed.
func savePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
