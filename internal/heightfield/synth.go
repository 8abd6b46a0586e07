package heightfield

import (
	gomath "math"
	"math/rand"
)

// SynthesizeTest builds a square test field from layered sinusoids and a
// radial mountain falloff, with uniform per-pixel jitter on top. The
// jitter makes repeated calls differ; only mesh generation downstream is
// deterministic for a fixed field.
func SynthesizeTest(size int) *Field {
	if size < 1 {
		size = 1
	}
	f := &Field{width: size, height: size, samples: make([]float32, size*size)}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx := float64(x) / float64(size)
			fy := float64(y) / float64(size)

			h := 0.45
			h += 0.18 * gomath.Sin(fx*4*gomath.Pi) * gomath.Cos(fy*4*gomath.Pi)
			h += 0.08 * gomath.Sin(fx*11*gomath.Pi+1.3) * gomath.Sin(fy*9*gomath.Pi)

			// Central mountain: linear falloff from the field center
			dx := fx - 0.5
			dy := fy - 0.5
			d := gomath.Sqrt(dx*dx + dy*dy)
			if peak := 1 - d*2.6; peak > 0 {
				h += 0.3 * peak
			}

			h += (rand.Float64() - 0.5) * 0.02

			f.samples[y*size+x] = clamp01(float32(h))
		}
	}
	return f
}

// SynthesizeFlat builds a constant field of the given value.
func SynthesizeFlat(width, height int, value float32) *Field {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	f := &Field{width: width, height: height, samples: make([]float32, width*height)}
	v := clamp01(value)
	for i := range f.samples {
		f.samples[i] = v
	}
	return f
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
