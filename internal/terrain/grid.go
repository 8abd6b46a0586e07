package terrain

import (
	"errors"
	gomath "math"
	"time"

	"go.uber.org/zap"

	"github.com/verdictzero/GANDER-B/internal/heightfield"
	"github.com/verdictzero/GANDER-B/internal/logger"
	"github.com/verdictzero/GANDER-B/pkg/math"
)

// ErrMissingInput is returned when regeneration is requested without a
// height field. The prior grid is left untouched.
var ErrMissingInput = errors.New("no height field to generate from")

// Bounds is the axis-aligned world-space box of a grid.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Grid is the full set of chunks covering one terrain instance. All
// chunks in a grid were built from the same height field and config
// snapshot.
type Grid struct {
	ChunksPerSide int
	Config        Config
	Bounds        Bounds

	chunks []*Chunk
}

// Chunk returns the chunk at grid coordinates (cx, cz), or nil when out
// of range or after Destroy.
func (g *Grid) Chunk(cx, cz int) *Chunk {
	if cx < 0 || cz < 0 || cx >= g.ChunksPerSide || cz >= g.ChunksPerSide {
		return nil
	}
	idx := cz*g.ChunksPerSide + cx
	if idx >= len(g.chunks) {
		return nil
	}
	return g.chunks[idx]
}

// Chunks returns the chunks in row-major (cz, cx) order.
func (g *Grid) Chunks() []*Chunk {
	return g.chunks
}

// Destroy releases the grid's mesh data chunk by chunk, in build order.
// The grid is unusable afterwards.
func (g *Grid) Destroy() {
	for i, ch := range g.chunks {
		ch.Mesh = ChunkMesh{}
		g.chunks[i] = nil
	}
	g.chunks = nil
}

// Manager owns the active grid and rebuilds it from a height field and
// config. Single-threaded by contract: there is exactly one mutator of
// grid state at a time, and a rebuild runs to completion.
type Manager struct {
	grid *Grid

	// OnRelease, when set, runs against the outgoing grid before its
	// mesh data is dropped. The renderer hooks GPU buffer deletion here.
	OnRelease func(*Grid)
}

// NewManager returns a manager with no active grid.
func NewManager() *Manager {
	return &Manager{}
}

// Grid returns the active grid, or nil before the first regeneration.
func (m *Manager) Grid() *Grid {
	return m.grid
}

// Regenerate tears down the previous grid and builds a fresh one from
// the given field and config. Full rebuild, no delta path: a new height
// field and a single config field change cost the same. On error the
// previous grid stays active.
func (m *Manager) Regenerate(f *heightfield.Field, cfg Config) (*Grid, error) {
	if f == nil {
		return nil, ErrMissingInput
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if m.grid != nil {
		if m.OnRelease != nil {
			m.OnRelease(m.grid)
		}
		m.grid.Destroy()
		m.grid = nil
	}

	start := time.Now()

	// FixedFootprint grids straddle the origin; NativeSpacing grids
	// keep their natural origin at the first pixel.
	var origin float32
	if cfg.SizingMode == FixedFootprint {
		origin = -cfg.Footprint(f.Width()) / 2
	}

	grid := &Grid{
		ChunksPerSide: cfg.ChunksPerSide,
		Config:        cfg,
		chunks:        make([]*Chunk, 0, cfg.ChunksPerSide*cfg.ChunksPerSide),
	}

	minY := float32(gomath.MaxFloat32)
	maxY := float32(-gomath.MaxFloat32)
	for cz := 0; cz < cfg.ChunksPerSide; cz++ {
		for cx := 0; cx < cfg.ChunksPerSide; cx++ {
			ch := buildChunk(f, cfg, cx, cz, origin)
			for _, p := range ch.Mesh.Positions {
				if p.Y < minY {
					minY = p.Y
				}
				if p.Y > maxY {
					maxY = p.Y
				}
			}
			grid.chunks = append(grid.chunks, ch)
		}
	}

	extent := float32(cfg.ChunksPerSide*cfg.ChunkEdgeVertices) * cfg.Spacing()
	grid.Bounds = Bounds{
		Min: math.Vec3{X: origin, Y: minY, Z: origin},
		Max: math.Vec3{X: origin + extent, Y: maxY, Z: origin + extent},
	}

	m.grid = grid
	logger.Info("terrain grid rebuilt",
		zap.Int("chunks", len(grid.chunks)),
		zap.Int("chunk_edge", cfg.ChunkEdgeVertices),
		zap.String("sizing", cfg.SizingMode.String()),
		zap.Float32("footprint", cfg.Footprint(f.Width())),
		zap.Duration("took", time.Since(start)),
	)
	return grid, nil
}
