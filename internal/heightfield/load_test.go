package heightfield

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writePNG encodes img to a temp file and returns its path.
func writePNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", name, err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("encoding %s: %v", name, err)
	}
	return path
}

func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8((x * 7) % 256), G: 99, B: 3, A: 255})
		}
	}
	return img
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	// The extension gate runs before any file access, so the path need
	// not exist.
	_, err := Load("terrain.gif")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(.gif) error = %v, want ErrUnsupportedFormat", err)
	}

	_, err = Load("no_extension")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(no ext) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		t.Error("missing file should not report unsupported format")
	}
}

func TestLoadUsesRedChannel(t *testing.T) {
	path := writePNG(t, "grad.png", gradientImage(16, 16))

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Width() != 16 || f.Height() != 16 {
		t.Fatalf("size = %dx%d, want 16x16", f.Width(), f.Height())
	}
	if f.HDR() {
		t.Error("8-bit PNG should not produce an HDR field")
	}

	for x := 0; x < 16; x++ {
		want := float32((x*7)%256) / 255
		if got := f.At(x, 3); got != want {
			t.Errorf("At(%d,3) = %v, want %v", x, got, want)
		}
	}
}

func TestLoadDeterministic(t *testing.T) {
	path := writePNG(t, "grad.png", gradientImage(32, 32))

	a, err := Load(path)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	b, err := Load(path)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("At(%d,%d) differs between loads: %v vs %v", x, y, a.At(x, y), b.At(x, y))
			}
		}
	}
}

func TestLoadRejectsNonSquare(t *testing.T) {
	path := writePNG(t, "wide.png", gradientImage(300, 200))

	_, err := Load(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Load(300x200) error = %v, want *ValidationError", err)
	}
	if verr.Width != 300 || verr.Height != 200 {
		t.Errorf("ValidationError = %dx%d, want 300x200", verr.Width, verr.Height)
	}
}

func TestLoadAcceptsSquare(t *testing.T) {
	path := writePNG(t, "square.png", gradientImage(256, 256))

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load(256x256): %v", err)
	}
	if f.Width() != 256 || f.Height() != 256 {
		t.Errorf("size = %dx%d, want 256x256", f.Width(), f.Height())
	}
}

func TestValidateSquare(t *testing.T) {
	if err := ValidateSquare(image.NewNRGBA(image.Rect(0, 0, 64, 64))); err != nil {
		t.Errorf("ValidateSquare(64x64) = %v, want nil", err)
	}
	if err := ValidateSquare(image.NewNRGBA(image.Rect(0, 0, 64, 63))); err == nil {
		t.Error("ValidateSquare(64x63) = nil, want error")
	}
}

func TestNormalizeDeepColor(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 4, 4))
	img.SetGray16(1, 2, color.Gray16{Y: 12345})

	f := Normalize(img)
	if !f.HDR() {
		t.Fatal("16-bit grayscale should produce an HDR field")
	}

	want := float32(12345) / 65535
	if got := f.At(1, 2); got != want {
		t.Errorf("At(1,2) = %v, want %v", got, want)
	}
}

func TestNormalizeQuantizes8Bit(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 10, B: 10, A: 255})

	f := Normalize(img)
	if f.HDR() {
		t.Error("8-bit source should not produce an HDR field")
	}
	if got, want := f.At(0, 0), float32(200)/255; got != want {
		t.Errorf("At(0,0) = %v, want %v", got, want)
	}
}
