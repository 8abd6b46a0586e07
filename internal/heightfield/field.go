// Package heightfield loads, validates and synthesizes the scalar height
// fields the terrain mesh is sampled from.
package heightfield

// Field is an immutable grid of normalized height samples in [0,1].
// A new load or synthesis produces a fresh Field; nothing mutates one
// in place.
type Field struct {
	width   int
	height  int
	samples []float32
	hdr     bool
}

// FromSamples wraps an existing sample slice as a Field.
// The slice is row-major, width*height long, and is not copied.
func FromSamples(width, height int, samples []float32) *Field {
	return &Field{width: width, height: height, samples: samples}
}

// Width returns the number of samples per row.
func (f *Field) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f *Field) Height() int {
	return f.height
}

// HDR reports whether the field came from a floating-point/16-bit source
// and therefore carries more than 8 bits of height precision.
func (f *Field) HDR() bool {
	return f.hdr
}

// At returns the normalized height at pixel (x, y).
// Out-of-range coordinates clamp to the nearest edge pixel, so callers
// may sample one past the border without any bounds bookkeeping.
func (f *Field) At(x, y int) float32 {
	if x < 0 {
		x = 0
	}
	if x >= f.width {
		x = f.width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= f.height {
		y = f.height - 1
	}
	return f.samples[y*f.width+x]
}
