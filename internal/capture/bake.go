package capture

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/verdictzero/GANDER-B/internal/engine/framebuffer"
	"github.com/verdictzero/GANDER-B/internal/logger"
)

// Baker renders the terrain into an offscreen square framebuffer and
// persists the result as a timestamped PNG. The capture resolution is
// fixed at creation and independent of the window size.
type Baker struct {
	outputDir string
	prefix    string
	size      int32
	fb        *framebuffer.Framebuffer
}

// NewBaker creates a baker with a size x size offscreen target. Needs a
// current GL context.
func NewBaker(outputDir, prefix string, size int) (*Baker, error) {
	if size < 1 {
		return nil, fmt.Errorf("capture size must be positive, got %d", size)
	}

	fb, err := framebuffer.New(int32(size), int32(size))
	if err != nil {
		return nil, fmt.Errorf("capture target: %w", err)
	}

	return &Baker{
		outputDir: outputDir,
		prefix:    prefix,
		size:      int32(size),
		fb:        fb,
	}, nil
}

// Size returns the capture edge length in pixels.
func (b *Baker) Size() int {
	return int(b.size)
}

// Bake redirects one draw into the offscreen target, reads it back and
// writes a timestamped PNG. The render callback receives the target
// aspect ratio (always 1 for the square capture target). The pixel
// readback only returns after the draw has fully completed, so the
// saved frame is never partial. A failed write is reported as an error;
// the session carries on.
func (b *Baker) Bake(render func(aspect float32)) (string, error) {
	restore := b.fb.BindWithViewport()
	b.fb.Clear(0.12, 0.14, 0.18, 1.0)
	render(1.0)
	pixels := b.fb.ReadPixels()
	restore()

	img, err := flipPixels(pixels, int(b.size), int(b.size))
	if err != nil {
		return "", err
	}

	path := timestampedPath(b.outputDir, b.prefix, time.Now())
	if err := savePNG(path, img); err != nil {
		return "", fmt.Errorf("writing capture: %w", err)
	}

	logger.Info("capture written",
		zap.String("path", path),
		zap.Int("size", int(b.size)),
	)
	return path, nil
}

// Destroy releases the offscreen target.
func (b *Baker) Destroy() {
	if b.fb != nil {
		b.fb.Destroy()
		b.fb = nil
	}
}
