package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Camera is an orthographic projection for a canvas rendered in camera space.
// Screen space is y-up with the origin at the bottom-left of the viewport.
type Camera struct {
	Position dmath.Vec2 // world point shown at the viewport center
	Zoom     float64    // screen pixels per world unit
	Viewport dmath.Vec2 // screen size in pixels
}

// NewCamera centers the camera on pos.
func NewCamera(pos dmath.Vec2, zoom, width, height float64) *Camera {
	return &Camera{
		Position: pos,
		Zoom:     zoom,
		Viewport: dmath.Vec2{X: width, Y: height},
	}
}

func (c *Camera) zoom() float64 {
	if c.Zoom == 0 {
		return 1
	}
	return c.Zoom
}

// WorldToScreen projects a world point onto the screen.
func (c *Camera) WorldToScreen(p dmath.Vec2) dmath.Vec2 {
	z := c.zoom()
	return dmath.Vec2{
		X: (p.X-c.Position.X)*z + c.Viewport.X/2,
		Y: (p.Y-c.Position.Y)*z + c.Viewport.Y/2,
	}
}

// ScreenToWorld unprojects a screen point.
func (c *Camera) ScreenToWorld(p dmath.Vec2) dmath.Vec2 {
	z := c.zoom()
	return dmath.Vec2{
		X: (p.X-c.Viewport.X/2)/z + c.Position.X,
		Y: (p.Y-c.Viewport.Y/2)/z + c.Position.Y,
	}
}

// Matrix is WorldToScreen as an affine transform.
func (c *Camera) Matrix() Affine {
	z := c.zoom()
	return Affine{
		A:  z,
		D:  z,
		Tx: c.Viewport.X/2 - c.Position.X*z,
		Ty: c.Viewport.Y/2 - c.Position.Y*z,
	}
}

// WorldToScreenPoint projects through cam, or returns the point unchanged for an overlay canvas.
func WorldToScreenPoint(cam *Camera, p dmath.Vec2) dmath.Vec2 {
	if cam == nil {
		return p
	}
	return cam.WorldToScreen(p)
}

// ScreenToWorldPoint is the inverse of WorldToScreenPoint.
func ScreenToWorldPoint(cam *Camera, p dmath.Vec2) dmath.Vec2 {
	if cam == nil {
		return p
	}
	return cam.ScreenToWorld(p)
}

// WorldToScreenMatrix is the camera matrix, or identity for an overlay canvas.
func WorldToScreenMatrix(cam *Camera) Affine {
	if cam == nil {
		return Identity()
	}
	return cam.Matrix()
}
