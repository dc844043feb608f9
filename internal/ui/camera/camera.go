// Package camera maps between screen pixels and world space for the board
// view. It only does arithmetic; input polling stays with the caller.
package camera

import "github.com/mitchelldurbincs/HexConquest/internal/common"

// Camera pans by dragging and zooms around the viewport center
type Camera struct {
	X, Y          float64
	Width, Height float64
	zoom          float64

	MinZoom  float64
	MaxZoom  float64
	ZoomStep float64

	dragging               bool
	dragStartX, dragStartY float64
}

// New creates a camera centered on the world origin at zoom 1
func New(width, height int, minZoom, maxZoom, zoomStep float64) *Camera {
	return &Camera{
		Width:    float64(width),
		Height:   float64(height),
		zoom:     common.Clamp(1, minZoom, maxZoom),
		MinZoom:  minZoom,
		MaxZoom:  maxZoom,
		ZoomStep: zoomStep,
	}
}

// Zoom returns the current scale factor
func (c *Camera) Zoom() float64 { return c.zoom }

// ApplyWheel changes zoom by one step per wheel notch, within limits
func (c *Camera) ApplyWheel(delta float64) {
	c.zoom = common.Clamp(c.zoom+delta*c.ZoomStep, c.MinZoom, c.MaxZoom)
}

// Resize updates the viewport after a window change
func (c *Camera) Resize(width, height int) {
	c.Width, c.Height = float64(width), float64(height)
}

// StartDrag anchors a pan at the given screen point
func (c *Camera) StartDrag(sx, sy float64) {
	c.dragging = true
	c.dragStartX = sx - c.X
	c.dragStartY = sy - c.Y
}

// UpdateDrag pans so the anchor stays under the pointer
func (c *Camera) UpdateDrag(sx, sy float64) {
	if !c.dragging {
		return
	}
	c.X = sx - c.dragStartX
	c.Y = sy - c.dragStartY
}

// StopDrag ends the pan
func (c *Camera) StopDrag() { c.dragging = false }

// Dragging reports whether a pan is in progress
func (c *Camera) Dragging() bool { return c.dragging }

// Offset is the screen position of the world origin
func (c *Camera) Offset() (float64, float64) {
	return c.X + c.Width/2, c.Y + c.Height/2
}

// ScreenToWorld converts a pointer position into world space
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	ox, oy := c.Offset()
	return (sx - ox) / c.zoom, (sy - oy) / c.zoom
}

// WorldToScreen converts a world point into pixels
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	ox, oy := c.Offset()
	return wx*c.zoom + ox, wy*c.zoom + oy
}
