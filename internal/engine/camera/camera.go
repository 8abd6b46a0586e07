// Package camera provides the preview camera with its two projection
// modes: free-fly perspective and orthographic top-down.
package camera

import (
	gomath "math"

	"github.com/verdictzero/GANDER-B/pkg/math"
)

// Mode selects the active projection.
type Mode int

const (
	// Perspective is the free-fly viewing mode.
	Perspective Mode = iota
	// TopDown is the orthographic capture mode, framing the terrain
	// footprint exactly.
	TopDown
)

func (m Mode) String() string {
	if m == TopDown {
		return "top-down"
	}
	return "perspective"
}

// Camera holds both mode states at once, so switching back restores the
// previous free-fly pose. Mode switches never touch terrain data.
type Camera struct {
	mode Mode

	// Free-fly state
	Position math.Vec3
	Yaw      float32 // radians, 0 = looking -Z
	Pitch    float32 // radians, clamped short of the poles

	// Projection parameters
	FOV  float32 // vertical field of view, radians
	Near float32
	Far  float32

	// Sensitivity
	MoveSpeed       float32 // world units per second
	LookSensitivity float32 // radians per pixel

	// Top-down framing, set from the grid footprint
	center    math.Vec3
	footprint float32
	height    float32
}

// New creates a camera with preview defaults, hovering near the origin.
func New() *Camera {
	return &Camera{
		Position:        math.Vec3{X: 0, Y: 80, Z: 160},
		Pitch:           -0.35,
		FOV:             float32(60.0 * gomath.Pi / 180.0),
		Near:            0.1,
		Far:             4096.0,
		MoveSpeed:       120.0,
		LookSensitivity: 0.0035,
		footprint:       512.0,
		height:          600.0,
	}
}

// Mode returns the active mode.
func (c *Camera) Mode() Mode {
	return c.mode
}

// SetMode switches projection modes. The free-fly pose survives a round
// trip through top-down.
func (c *Camera) SetMode(m Mode) {
	c.mode = m
}

// FrameFootprint centers the top-down view on the grid and sizes the
// orthographic projection to exactly frame the given world edge length.
func (c *Camera) FrameFootprint(center math.Vec3, footprint float32) {
	c.center = center
	c.footprint = footprint
	// High enough that no plausible height scale clips the terrain.
	c.height = center.Y + footprint
}

// Footprint returns the world edge length the top-down mode frames.
func (c *Camera) Footprint() float32 {
	return c.footprint
}

// Forward returns the free-fly view direction.
func (c *Camera) Forward() math.Vec3 {
	cy := float32(gomath.Cos(float64(c.Yaw)))
	sy := float32(gomath.Sin(float64(c.Yaw)))
	cp := float32(gomath.Cos(float64(c.Pitch)))
	sp := float32(gomath.Sin(float64(c.Pitch)))
	return math.Vec3{X: -sy * cp, Y: sp, Z: -cy * cp}
}

// Right returns the free-fly strafe direction on the XZ plane.
func (c *Camera) Right() math.Vec3 {
	cy := float32(gomath.Cos(float64(c.Yaw)))
	sy := float32(gomath.Sin(float64(c.Yaw)))
	return math.Vec3{X: cy, Y: 0, Z: -sy}
}

// HandleLook applies a mouse delta to the free-fly orientation. Ignored
// in top-down mode, whose transform is fixed by the footprint.
func (c *Camera) HandleLook(deltaX, deltaY float32) {
	if c.mode != Perspective {
		return
	}
	c.Yaw -= deltaX * c.LookSensitivity
	c.Pitch -= deltaY * c.LookSensitivity

	const maxPitch = 1.55
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// HandleMove pans the free-fly position. forward/right/up are -1..1
// axis inputs, dt the frame time in seconds.
func (c *Camera) HandleMove(forward, right, up, dt float32) {
	if c.mode != Perspective {
		return
	}
	step := c.MoveSpeed * dt
	c.Position = c.Position.
		Add(c.Forward().Scale(forward * step)).
		Add(c.Right().Scale(right * step)).
		Add(math.Vec3{Y: up * step})
}

// ViewMatrix returns the view matrix for the active mode.
func (c *Camera) ViewMatrix() math.Mat4 {
	if c.mode == TopDown {
		eye := math.Vec3{X: c.center.X, Y: c.height, Z: c.center.Z}
		target := math.Vec3{X: c.center.X, Y: c.center.Y, Z: c.center.Z}
		// Looking straight down; -Z ("north") is up on screen.
		return math.LookAt(eye, target, math.Vec3{X: 0, Y: 0, Z: -1})
	}
	return math.LookAt(c.Position, c.Position.Add(c.Forward()), math.Vec3{X: 0, Y: 1, Z: 0})
}

// ProjectionMatrix returns the projection for the active mode. In
// top-down mode the vertical extent equals the footprint exactly, so a
// square target frames the whole grid edge to edge.
func (c *Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	if c.mode == TopDown {
		half := c.footprint / 2
		return math.Ortho(-half*aspect, half*aspect, -half, half, c.Near, c.height*2+c.footprint)
	}
	return math.Perspective(c.FOV, aspect, c.Near, c.Far)
}
