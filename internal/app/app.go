// Package app runs the terrain preview session: the frame loop, the
// hotkeys and the glue between heightfield, terrain, renderer and
// capture.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/verdictzero/GANDER-B/internal/capture"
	"github.com/verdictzero/GANDER-B/internal/config"
	"github.com/verdictzero/GANDER-B/internal/engine/camera"
	"github.com/verdictzero/GANDER-B/internal/engine/input"
	"github.com/verdictzero/GANDER-B/internal/engine/renderer"
	"github.com/verdictzero/GANDER-B/internal/engine/window"
	"github.com/verdictzero/GANDER-B/internal/heightfield"
	"github.com/verdictzero/GANDER-B/internal/logger"
	"github.com/verdictzero/GANDER-B/internal/terrain"
	"github.com/verdictzero/GANDER-B/pkg/math"
)

const windowTitle = "GANDER-B Terrain Preview"

// syntheticFieldSize is the edge length of the built-in test heightmap.
const syntheticFieldSize = 257

// App owns the preview session state. A failed load or bake updates the
// status line and leaves the last good field and grid in place.
type App struct {
	cfg *config.Config

	win   *window.Window
	rend  *renderer.Renderer
	in    *input.Input
	cam   *camera.Camera
	baker *capture.Baker

	manager *terrain.Manager
	field   *heightfield.Field

	status    string
	mouseLook bool
	running   bool
}

// New builds the session: window, GL, renderer, camera and the capture
// target, wired to an empty terrain manager.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:     cfg,
		in:      input.New(),
		cam:     camera.New(),
		manager: terrain.NewManager(),
	}

	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	a.win = win

	rend, err := renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	a.rend = rend

	baker, err := capture.NewBaker(cfg.Capture.OutputDir, cfg.Capture.Prefix, cfg.Capture.Width)
	if err != nil {
		rend.Close()
		win.Close()
		return nil, fmt.Errorf("creating capture target: %w", err)
	}
	a.baker = baker

	// GPU buffers of an outgoing grid die with it.
	a.manager.OnRelease = func(*terrain.Grid) {
		a.rend.ReleaseGrid()
	}

	return a, nil
}

// Close tears the session down in reverse creation order.
func (a *App) Close() {
	if a.baker != nil {
		a.baker.Destroy()
	}
	if a.rend != nil {
		a.rend.Close()
	}
	if a.win != nil {
		a.win.Close()
	}
}

// Run executes the frame loop until quit.
func (a *App) Run() error {
	// Startup terrain: configured heightmap if given, synthetic otherwise.
	if path := a.cfg.Input.Heightmap; path != "" {
		a.loadHeightmap(path)
	}
	if a.field == nil {
		a.field = heightfield.SynthesizeTest(syntheticFieldSize)
		a.setStatus("synthetic terrain ready")
	}
	a.regenerate()

	if path := a.cfg.Input.Projection; path != "" {
		a.applyProjection(path)
	}

	a.running = true
	last := time.Now()
	for a.running {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if a.in.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		forward, right, up := a.in.MoveAxes()
		a.cam.HandleMove(forward, right, up, dt)

		viewProj := a.cam.ProjectionMatrix(a.rend.Aspect()).Mul(a.cam.ViewMatrix())
		a.rend.Begin()
		a.rend.Draw(viewProj)
		a.win.SwapBuffers()
	}

	return nil
}

func (a *App) handleEvents() {
	for _, e := range a.in.Events() {
		switch e.Type {
		case input.EventQuit:
			a.running = false

		case input.EventWindowResize:
			a.rend.Resize(e.Width, e.Height)

		case input.EventKeyDown:
			a.handleKey(e.Key)

		case input.EventMouseDown:
			if e.Button == sdl.BUTTON_RIGHT {
				a.mouseLook = true
				a.win.SetRelativeMouseMode(true)
			}

		case input.EventMouseUp:
			if e.Button == sdl.BUTTON_RIGHT {
				a.mouseLook = false
				a.win.SetRelativeMouseMode(false)
			}

		case input.EventMouseMove:
			if a.mouseLook {
				a.cam.HandleLook(float32(e.RelX), float32(e.RelY))
			}

		case input.EventFileDrop:
			a.loadHeightmap(e.Path)
			a.regenerate()
		}
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false

	case sdl.SCANCODE_TAB:
		if a.cam.Mode() == camera.Perspective {
			a.cam.SetMode(camera.TopDown)
		} else {
			a.cam.SetMode(camera.Perspective)
		}
		a.setStatus(fmt.Sprintf("camera: %s", a.cam.Mode()))

	case sdl.SCANCODE_F:
		if a.rend.ToggleWireframe() {
			a.setStatus("wireframe on")
		} else {
			a.setStatus("wireframe off")
		}

	case sdl.SCANCODE_B:
		a.bake()

	case sdl.SCANCODE_R:
		a.field = heightfield.SynthesizeTest(syntheticFieldSize)
		a.setStatus("synthetic terrain ready")
		a.regenerate()

	case sdl.SCANCODE_P:
		if path := a.cfg.Input.Projection; path != "" {
			a.applyProjection(path)
		} else {
			a.setStatus("no projection image configured")
		}
	}
}

// loadHeightmap replaces the active field on success; on failure the
// previous field stays active.
func (a *App) loadHeightmap(path string) {
	f, err := heightfield.Load(path)
	if err != nil {
		logger.Warn("heightmap load failed", zap.String("path", path), zap.Error(err))
		a.setStatus(fmt.Sprintf("load failed: %v", err))
		return
	}
	a.field = f
	a.setStatus(fmt.Sprintf("heightmap loaded: %dx%d", f.Width(), f.Height()))
}

// regenerate rebuilds the grid from the active field and reframes the
// top-down camera on the new footprint.
func (a *App) regenerate() {
	grid, err := a.manager.Regenerate(a.field, a.cfg.Terrain.ToTerrain())
	if err != nil {
		logger.Warn("terrain regeneration failed", zap.Error(err))
		a.setStatus(fmt.Sprintf("generation failed: %v", err))
		return
	}

	a.rend.UploadGrid(grid)

	b := grid.Bounds
	center := math.Vec3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
	a.cam.FrameFootprint(center, b.Max.X-b.Min.X)

	a.setStatus(fmt.Sprintf("terrain generated: %d chunks", len(grid.Chunks())))
}

// applyProjection drapes an image over the terrain. Validation failures
// leave the current projection untouched.
func (a *App) applyProjection(path string) {
	img, err := capture.LoadProjection(path)
	if err != nil {
		logger.Warn("projection load failed", zap.String("path", path), zap.Error(err))
		a.setStatus(fmt.Sprintf("projection failed: %v", err))
		return
	}
	a.rend.SetProjection(img)
	a.setStatus("projection applied")
}

// bake renders the framed top-down view into the offscreen target and
// saves it. The on-screen camera mode is restored afterwards.
func (a *App) bake() {
	prev := a.cam.Mode()
	a.cam.SetMode(camera.TopDown)
	defer a.cam.SetMode(prev)

	path, err := a.baker.Bake(func(aspect float32) {
		viewProj := a.cam.ProjectionMatrix(aspect).Mul(a.cam.ViewMatrix())
		a.rend.Draw(viewProj)
	})
	if err != nil {
		logger.Warn("bake failed", zap.Error(err))
		a.setStatus(fmt.Sprintf("bake failed: %v", err))
		return
	}
	a.setStatus(fmt.Sprintf("bake saved: %s", path))
}

// Status returns the most recent status line.
func (a *App) Status() string {
	return a.status
}

// setStatus logs the status line and mirrors it in the window title,
// which stands in for the excluded control-panel UI.
func (a *App) setStatus(status string) {
	a.status = status
	logger.Info(status)
	if a.win != nil {
		a.win.SetTitle(windowTitle + " | " + status)
	}
}
