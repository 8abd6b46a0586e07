package capture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verdictzero/GANDER-B/internal/heightfield"
)

func TestFlipPixels(t *testing.T) {
	// 2x2 image, bottom-up rows: bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255, // GL row 0 = image bottom
		0, 0, 255, 255, 0, 0, 255, 255, // GL row 1 = image top
	}

	img, err := flipPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("flipPixels: %v", err)
	}

	top := img.RGBAAt(0, 0)
	if top.B != 255 || top.R != 0 {
		t.Errorf("top-left after flip = %v, want blue", top)
	}
	bottom := img.RGBAAt(0, 1)
	if bottom.R != 255 || bottom.B != 0 {
		t.Errorf("bottom-left after flip = %v, want red", bottom)
	}
}

func TestFlipPixelsSizeMismatch(t *testing.T) {
	if _, err := flipPixels(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected error for short pixel buffer")
	}
}

func TestTimestampedPath(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	path := timestampedPath("out", "terrain", now)

	want := filepath.Join("out", "terrain_2026-03-14_09-26-53.png")
	if path != want {
		t.Errorf("timestampedPath = %q, want %q", path, want)
	}

	bare := timestampedPath("", "terrain", now)
	if bare != "terrain_2026-03-14_09-26-53.png" {
		t.Errorf("timestampedPath without dir = %q", bare)
	}
}

func TestSavePNGCreatesDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "captures", "shot.png")

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := savePNG(path, img); err != nil {
		t.Fatalf("savePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening saved PNG: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding saved PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 4 {
		t.Errorf("saved PNG size = %v, want 4x4", decoded.Bounds())
	}
}

func writeTestPNG(t *testing.T, path string, width, height int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating test PNG: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
}

func TestLoadProjection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.png")
	writeTestPNG(t, path, 32, 32)

	img, err := LoadProjection(path)
	if err != nil {
		t.Fatalf("LoadProjection: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("projection size = %v, want 32x32", img.Bounds())
	}
}

func TestLoadProjectionRejectsNonSquare(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.png")
	writeTestPNG(t, path, 64, 32)

	_, err := LoadProjection(path)
	var verr *heightfield.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Width != 64 || verr.Height != 32 {
		t.Errorf("ValidationError = %dx%d, want 64x32", verr.Width, verr.Height)
	}
}

func TestLoadProjectionRejectsUnknownExtension(t *testing.T) {
	_, err := LoadProjection("overlay.gif")
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Fatalf("expected ErrUnsupportedImage, got %v", err)
	}
	if !strings.Contains(err.Error(), ".gif") {
		t.Errorf("error should name the extension: %v", err)
	}
}

func TestLoadProjectionMissingFile(t *testing.T) {
	_, err := LoadProjection(filepath.Join(t.TempDir(), "absent.png"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
