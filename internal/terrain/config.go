// Package terrain partitions a height field into a grid of mesh chunks
// and owns the lifecycle of the generated grid.
package terrain

import (
	"errors"
	"fmt"
)

// SizingMode selects how the terrain's world footprint is derived.
type SizingMode int

const (
	// FixedFootprint keeps the total world edge length constant and
	// derives the vertex spacing to fit it. This is the default mode.
	FixedFootprint SizingMode = iota
	// NativeSpacing keeps the vertex spacing constant; the footprint
	// grows with the height field resolution (one pixel per vertex).
	NativeSpacing
)

func (m SizingMode) String() string {
	switch m {
	case FixedFootprint:
		return "fixed-footprint"
	case NativeSpacing:
		return "native-spacing"
	}
	return fmt.Sprintf("SizingMode(%d)", int(m))
}

// Config describes one terrain grid. Any change to it invalidates the
// whole grid; there is no partial rebuild.
type Config struct {
	// ChunkEdgeVertices is the number of quads along one chunk edge.
	// A chunk has (ChunkEdgeVertices+1)^2 lattice points.
	ChunkEdgeVertices int
	// VertexSpacing is the world distance between lattice points under
	// NativeSpacing. Ignored under FixedFootprint.
	VertexSpacing float32
	// HeightScale converts normalized height samples to world units.
	HeightScale float32
	// ChunksPerSide is the grid dimension; the grid holds its square.
	ChunksPerSide int
	// SizingMode selects the footprint policy.
	SizingMode SizingMode
	// FootprintSize is the total world edge length under FixedFootprint.
	FootprintSize float32
}

// DefaultConfig returns the preview defaults: a 4x4 grid of 64-quad
// chunks stretched over a 512-unit footprint.
func DefaultConfig() Config {
	return Config{
		ChunkEdgeVertices: 64,
		VertexSpacing:     1.0,
		HeightScale:       20.0,
		ChunksPerSide:     4,
		SizingMode:        FixedFootprint,
		FootprintSize:     512.0,
	}
}

// Validate rejects configurations the generator cannot build. Values
// outside the UI slider ranges are fine as long as they are positive;
// clamping to presentation ranges is the panel's job, not ours.
func (c Config) Validate() error {
	if c.ChunkEdgeVertices < 1 {
		return errors.New("chunk edge vertex count must be positive")
	}
	if c.ChunksPerSide < 1 {
		return errors.New("chunks per side must be positive")
	}
	if c.HeightScale <= 0 {
		return errors.New("height scale must be positive")
	}
	switch c.SizingMode {
	case FixedFootprint:
		if c.FootprintSize <= 0 {
			return errors.New("footprint size must be positive")
		}
	case NativeSpacing:
		if c.VertexSpacing <= 0 {
			return errors.New("vertex spacing must be positive")
		}
	default:
		return fmt.Errorf("unknown sizing mode %d", int(c.SizingMode))
	}
	return nil
}

// Spacing returns the active world distance between lattice points.
func (c Config) Spacing() float32 {
	if c.SizingMode == FixedFootprint {
		return c.FootprintSize / float32(c.ChunksPerSide*c.ChunkEdgeVertices)
	}
	return c.VertexSpacing
}

// Footprint returns the total world edge length. Under NativeSpacing it
// depends on the height field dimension; render state never enters into
// it.
func (c Config) Footprint(fieldDim int) float32 {
	if c.SizingMode == FixedFootprint {
		return c.FootprintSize
	}
	return float32(fieldDim) * c.VertexSpacing
}

// latticePerSide is the number of lattice points along the full grid
// edge, shared edges counted once.
func (c Config) latticePerSide() int {
	return c.ChunksPerSide*c.ChunkEdgeVertices + 1
}
