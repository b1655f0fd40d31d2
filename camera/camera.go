package camera

import (
	"github.com/tTrmc/Orbit-Simulator/parameter"
	"github.com/tTrmc/Orbit-Simulator/vmath"
)

// Camera maps world coordinates (meters) to screen coordinates (cells) under
// continuous pan and zoom. It owns no physics state; input handlers mutate it
// and the renderer reads it.
//
// The transform is affine: sx = x*scale + width/2 - offset.x, and the Y axis
// additionally carries a fixed aspect factor so circular orbits read as
// circles in non-square terminal cells. ScreenToWorld is the exact algebraic
// inverse for the same scale/offset snapshot.
type Camera struct {
	scale   float64
	aspectY float64
	offset  vmath.Vec2

	width, height int

	dragging         bool
	dragAnchorScreen vmath.Vec2
	dragAnchorOffset vmath.Vec2
}

// New creates a camera over a width x height cell viewport at the given
// initial scale, centered on the world origin
func New(width, height int, scale float64) *Camera {
	return &Camera{
		scale:   scale,
		aspectY: parameter.CellAspectY,
		width:   width,
		height:  height,
	}
}

// Scale returns the current cells-per-meter scale
func (c *Camera) Scale() float64 {
	return c.scale
}

// Dragging reports whether a pan gesture is in progress
func (c *Camera) Dragging() bool {
	return c.dragging
}

// Resize updates the viewport dimensions after a terminal resize
func (c *Camera) Resize(width, height int) {
	c.width = width
	c.height = height
}

// WorldToScreen converts a world position to screen cells
func (c *Camera) WorldToScreen(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: p.X*c.scale + float64(c.width)/2 - c.offset.X,
		Y: p.Y*c.scale*c.aspectY + float64(c.height)/2 - c.offset.Y,
	}
}

// ScreenToWorld converts a screen position to world coordinates
func (c *Camera) ScreenToWorld(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: (p.X + c.offset.X - float64(c.width)/2) / c.scale,
		Y: (p.Y + c.offset.Y - float64(c.height)/2) / (c.scale * c.aspectY),
	}
}

// BeginDrag starts a direct-manipulation pan anchored at screenPos
func (c *Camera) BeginDrag(screenPos vmath.Vec2) {
	c.dragging = true
	c.dragAnchorScreen = screenPos
	c.dragAnchorOffset = c.offset
}

// UpdateDrag moves the view so the world point under the cursor at drag
// start keeps tracking the cursor. No-op unless a drag is in progress.
func (c *Camera) UpdateDrag(screenPos vmath.Vec2) {
	if !c.dragging {
		return
	}
	c.offset = c.dragAnchorOffset.Sub(screenPos.Sub(c.dragAnchorScreen))
}

// EndDrag finishes the pan gesture
func (c *Camera) EndDrag() {
	c.dragging = false
}

// ZoomAt multiplies the scale by factor while keeping the world point under
// screenPos fixed: the world position under the cursor is captured before the
// scale change, re-projected after it, and the offset corrected by the
// resulting screen drift. Non-positive factors are rejected as a no-op, and
// the new scale is clamped to [ScaleMin, ScaleMax] so it stays strictly
// positive under extreme zoom-out.
func (c *Camera) ZoomAt(screenPos vmath.Vec2, factor float64) {
	if factor <= 0 {
		return
	}

	newScale := c.scale * factor
	if newScale < parameter.ScaleMin {
		newScale = parameter.ScaleMin
	}
	if newScale > parameter.ScaleMax {
		newScale = parameter.ScaleMax
	}
	if newScale == c.scale {
		return
	}

	worldBefore := c.ScreenToWorld(screenPos)
	c.scale = newScale
	screenAfter := c.WorldToScreen(worldBefore)
	c.offset = c.offset.Add(screenAfter.Sub(screenPos))
}
