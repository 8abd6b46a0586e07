// Package config handles terrain preview configuration loading and
// management.
package config

import (
	"github.com/verdictzero/GANDER-B/internal/terrain"
)

// Config holds all preview settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Capture  CaptureConfig  `yaml:"capture"`
	Input    InputConfig    `yaml:"input"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds the terrain grid defaults. The control panel may
// override any of these at runtime; these are the startup values.
type TerrainConfig struct {
	ChunkEdgeVertices int     `yaml:"chunk_edge_vertices"`
	VertexSpacing     float32 `yaml:"vertex_spacing"`
	HeightScale       float32 `yaml:"height_scale"`
	ChunksPerSide     int     `yaml:"chunks_per_side"`
	SizingMode        string  `yaml:"sizing_mode"` // "fixed" or "native"
	FootprintSize     float32 `yaml:"footprint_size"`
}

// CaptureConfig holds offscreen bake settings. The target size is
// independent of the window resolution.
type CaptureConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	OutputDir string `yaml:"output_dir"`
	Prefix    string `yaml:"prefix"`
}

// InputConfig holds the file paths the excluded control panel would
// normally supply interactively.
type InputConfig struct {
	Heightmap  string `yaml:"heightmap"`
	Projection string `yaml:"projection"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			ChunkEdgeVertices: 64,
			VertexSpacing:     1.0,
			HeightScale:       20.0,
			ChunksPerSide:     4,
			SizingMode:        "fixed",
			FootprintSize:     512.0,
		},
		Capture: CaptureConfig{
			Width:     1024,
			Height:    1024,
			OutputDir: "captures",
			Prefix:    "bake",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ToTerrain converts the YAML-facing terrain section into the
// generator's config type. Unknown sizing mode strings fall back to the
// fixed-footprint default.
func (t TerrainConfig) ToTerrain() terrain.Config {
	mode := terrain.FixedFootprint
	if t.SizingMode == "native" {
		mode = terrain.NativeSpacing
	}
	return terrain.Config{
		ChunkEdgeVertices: t.ChunkEdgeVertices,
		VertexSpacing:     t.VertexSpacing,
		HeightScale:       t.HeightScale,
		ChunksPerSide:     t.ChunksPerSide,
		SizingMode:        mode,
		FootprintSize:     t.FootprintSize,
	}
}
