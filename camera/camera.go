// Package camera provides the view transform from screen pixels onto the
// noise plane, and the rotation/zoom animation that drives it.
package camera

import "math"

// Motion holds the animation coefficients.
type Motion struct {
	RotationRate float64 // rotation += RotationRate*sin(t*RotationFreq)
	RotationFreq float64
	ZoomSpeed    float64 // initial speed; the sign flips at the zoom bounds
	ZoomFreq     float64 // zoom += speed*cos(t*ZoomFreq)
	MinZoom      float32
	MaxZoom      float32
}

// DefaultMotion returns the stock animation coefficients.
func DefaultMotion() Motion {
	return Motion{
		RotationRate: 0.01,
		RotationFreq: 0.5,
		ZoomSpeed:    0.001,
		ZoomFreq:     0.3,
		MinZoom:      0.5,
		MaxZoom:      2.0,
	}
}

// Camera is the animated view onto the noise plane.
type Camera struct {
	// Rotation of the plane in radians
	Rotation float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// ZoomSpeed is signed; it ping-pongs between the zoom bounds
	ZoomSpeed float32

	motion Motion
}

// New creates an unrotated camera at 1:1 zoom.
func New(m Motion) *Camera {
	return &Camera{
		Zoom:      1.0,
		ZoomSpeed: float32(m.ZoomSpeed),
		motion:    m,
	}
}

// Animate advances rotation and zoom for clock time t. Once zoom leaves
// [MinZoom, MaxZoom] the zoom speed is negated, so zoom oscillates.
func (c *Camera) Animate(t float64) {
	c.Rotation += float32(c.motion.RotationRate * math.Sin(t*c.motion.RotationFreq))
	c.Zoom += float32(float64(c.ZoomSpeed) * math.Cos(t*c.motion.ZoomFreq))
	if c.Zoom > c.motion.MaxZoom || c.Zoom < c.motion.MinZoom {
		c.ZoomSpeed = -c.ZoomSpeed
	}
}

// Reset restores the initial rotation, zoom and zoom speed.
func (c *Camera) Reset() {
	c.Rotation = 0
	c.Zoom = 1.0
	c.ZoomSpeed = float32(c.motion.ZoomSpeed)
}

// View is a precomputed screen-to-plane transform for one frame.
type View struct {
	centerX, centerY float64
	unit             float64 // plane units per pixel
	cos, sin         float64
}

// NewView builds the transform for a width x height surface. scale is the
// plane distance per pixel at zoom 1.
func NewView(width, height int, scale float64, zoom, rotation float32) View {
	r := float64(rotation)
	return View{
		centerX: float64(width) / 2,
		centerY: float64(height) / 2,
		unit:    scale / float64(zoom),
		cos:     math.Cos(r),
		sin:     math.Sin(r),
	}
}

// View returns the transform for the camera's current state.
func (c *Camera) View(width, height int, scale float64) View {
	return NewView(width, height, scale, c.Zoom, c.Rotation)
}

// ToPlane centers, scales and rotates pixel (x, y) onto the noise plane.
func (v View) ToPlane(x, y int) (rx, ry float64) {
	nx := (float64(x) - v.centerX) * v.unit
	ny := (float64(y) - v.centerY) * v.unit
	rx = nx*v.cos - ny*v.sin
	ry = nx*v.sin + ny*v.cos
	return rx, ry
}
