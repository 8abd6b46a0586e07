package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verdictzero/GANDER-B/internal/terrain"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test terrain defaults
	if cfg.Terrain.ChunkEdgeVertices != 64 {
		t.Errorf("expected chunk edge 64, got %d", cfg.Terrain.ChunkEdgeVertices)
	}
	if cfg.Terrain.ChunksPerSide != 4 {
		t.Errorf("expected 4 chunks per side, got %d", cfg.Terrain.ChunksPerSide)
	}
	if cfg.Terrain.SizingMode != "fixed" {
		t.Errorf("expected sizing mode 'fixed', got %s", cfg.Terrain.SizingMode)
	}
	if cfg.Terrain.FootprintSize != 512.0 {
		t.Errorf("expected footprint 512, got %f", cfg.Terrain.FootprintSize)
	}

	// Test capture defaults
	if cfg.Capture.Width != 1024 || cfg.Capture.Height != 1024 {
		t.Errorf("expected 1024x1024 capture target, got %dx%d", cfg.Capture.Width, cfg.Capture.Height)
	}
	if cfg.Capture.Prefix != "bake" {
		t.Errorf("expected capture prefix 'bake', got %s", cfg.Capture.Prefix)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlData := `
graphics:
  width: 1920
  height: 1080
terrain:
  chunks_per_side: 8
  sizing_mode: native
  vertex_spacing: 2.0
capture:
  width: 2048
  height: 2048
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yamlData), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Terrain.ChunksPerSide != 8 {
		t.Errorf("expected 8 chunks per side, got %d", cfg.Terrain.ChunksPerSide)
	}
	if cfg.Terrain.SizingMode != "native" {
		t.Errorf("expected sizing mode 'native', got %s", cfg.Terrain.SizingMode)
	}
	if cfg.Capture.Width != 2048 {
		t.Errorf("expected capture width 2048, got %d", cfg.Capture.Width)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}

	// Values absent from the file keep their defaults.
	if cfg.Terrain.ChunkEdgeVertices != 64 {
		t.Errorf("expected chunk edge default 64, got %d", cfg.Terrain.ChunkEdgeVertices)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync default to survive a partial file")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.Terrain.HeightScale = 35.5
	cfg.Capture.OutputDir = "out"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Terrain.HeightScale != 35.5 {
		t.Errorf("expected height scale 35.5, got %f", loaded.Terrain.HeightScale)
	}
	if loaded.Capture.OutputDir != "out" {
		t.Errorf("expected output dir 'out', got %s", loaded.Capture.OutputDir)
	}
}

func TestToTerrain(t *testing.T) {
	tc := Default().Terrain
	got := tc.ToTerrain()
	if got.SizingMode != terrain.FixedFootprint {
		t.Errorf("expected fixed footprint mode, got %v", got.SizingMode)
	}
	if got.ChunkEdgeVertices != 64 || got.ChunksPerSide != 4 {
		t.Errorf("terrain config fields not carried over: %+v", got)
	}

	tc.SizingMode = "native"
	if got := tc.ToTerrain(); got.SizingMode != terrain.NativeSpacing {
		t.Errorf("expected native spacing mode, got %v", got.SizingMode)
	}

	// Unknown strings fall back to the default mode.
	tc.SizingMode = "bogus"
	if got := tc.ToTerrain(); got.SizingMode != terrain.FixedFootprint {
		t.Errorf("expected fallback to fixed footprint, got %v", got.SizingMode)
	}
}
