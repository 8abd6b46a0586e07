package terrain

import (
	"github.com/verdictzero/GANDER-B/internal/heightfield"
	"github.com/verdictzero/GANDER-B/pkg/math"
)

// ChunkMesh holds CPU-side mesh data for one chunk, ready for GPU
// upload. Positions are world-space.
type ChunkMesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
	Indices   []uint32
}

// Chunk is one independently built mesh covering a square sub-region of
// the terrain lattice. It keeps no reference to the height field it was
// sampled from.
type Chunk struct {
	CX, CZ int
	// Offset is the world-space anchor of the chunk's minimum corner.
	Offset math.Vec3
	Mesh   ChunkMesh
}

// sampleHeight returns the normalized height for a global lattice
// coordinate. Both policies clamp rather than wrap, so lattice points
// outside the field degenerate into edge-repeated samples.
func sampleHeight(f *heightfield.Field, c Config, gx, gz int) float32 {
	if c.SizingMode == FixedFootprint {
		// Proportional stretch of the field onto the fixed footprint.
		lattice := float32(c.latticePerSide())
		px := int(float32(gx) / lattice * float32(f.Width()))
		pz := int(float32(gz) / lattice * float32(f.Height()))
		return f.At(px, pz)
	}
	// Native 1:1 pixel-to-vertex mapping.
	return f.At(gx, gz)
}

// buildChunk samples the shared height field for chunk (cx, cz). Every
// per-vertex quantity is keyed on the global lattice coordinate, so the
// values computed for a shared-edge lattice point are bit-identical no
// matter which chunk computed them.
func buildChunk(f *heightfield.Field, c Config, cx, cz int, origin float32) *Chunk {
	edge := c.ChunkEdgeVertices
	stride := edge + 1
	spacing := c.Spacing()
	scale := c.HeightScale
	uvDenom := float32(c.latticePerSide() - 1)

	mesh := ChunkMesh{
		Positions: make([]math.Vec3, 0, stride*stride),
		Normals:   make([]math.Vec3, 0, stride*stride),
		UVs:       make([]math.Vec2, 0, stride*stride),
		Indices:   make([]uint32, 0, edge*edge*6),
	}

	for lz := 0; lz <= edge; lz++ {
		gz := cz*edge + lz
		for lx := 0; lx <= edge; lx++ {
			gx := cx*edge + lx

			h := sampleHeight(f, c, gx, gz)
			mesh.Positions = append(mesh.Positions, math.Vec3{
				X: float32(gx)*spacing + origin,
				Y: h * scale,
				Z: float32(gz)*spacing + origin,
			})

			mesh.UVs = append(mesh.UVs, math.Vec2{
				X: float32(gx) / uvDenom,
				Y: float32(gz) / uvDenom,
			})

			// Central difference over the same clamped sampler; edge
			// lattice points reuse the border sample.
			left := sampleHeight(f, c, gx-1, gz) * scale
			right := sampleHeight(f, c, gx+1, gz) * scale
			down := sampleHeight(f, c, gx, gz-1) * scale
			up := sampleHeight(f, c, gx, gz+1) * scale
			mesh.Normals = append(mesh.Normals, math.Vec3{
				X: left - right,
				Y: 2 * spacing,
				Z: down - up,
			}.Normalize())
		}
	}

	// Two triangles per lattice quad, wound counter-clockwise seen from
	// above (+Y).
	for lz := 0; lz < edge; lz++ {
		for lx := 0; lx < edge; lx++ {
			a := uint32(lz*stride + lx)
			b := a + 1
			cc := a + uint32(stride)
			d := cc + 1
			mesh.Indices = append(mesh.Indices, a, cc, b, b, cc, d)
		}
	}

	return &Chunk{
		CX: cx,
		CZ: cz,
		Offset: math.Vec3{
			X: float32(cx*edge)*spacing + origin,
			Z: float32(cz*edge)*spacing + origin,
		},
		Mesh: mesh,
	}
}
