package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagHeightmap   = flag.String("heightmap", "", "Heightmap image to load on startup")
	flagProjection  = flag.String("project", "", "Image to project across the terrain")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagChunks      = flag.Int("chunks", 0, "Chunks per side of the terrain grid")
	flagChunkEdge   = flag.Int("chunk-edge", 0, "Vertices per chunk edge")
	flagHeightScale = flag.Float64("height-scale", 0, "World height of a full-range sample")
	flagNative      = flag.Bool("native-spacing", false, "Use 1:1 pixel-to-vertex sizing instead of a fixed footprint")
	flagCaptureSize = flag.Int("capture-size", 0, "Offscreen bake target size in pixels")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagHeightmap != "" {
		cfg.Input.Heightmap = *flagHeightmap
	}
	if *flagProjection != "" {
		cfg.Input.Projection = *flagProjection
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagChunks > 0 {
		cfg.Terrain.ChunksPerSide = *flagChunks
	}
	if *flagChunkEdge > 0 {
		cfg.Terrain.ChunkEdgeVertices = *flagChunkEdge
	}
	if *flagHeightScale > 0 {
		cfg.Terrain.HeightScale = float32(*flagHeightScale)
	}
	if *flagNative {
		cfg.Terrain.SizingMode = "native"
	}
	if *flagCaptureSize > 0 {
		cfg.Capture.Width = *flagCaptureSize
		cfg.Capture.Height = *flagCaptureSize
	}
}
