package gesturecam

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the pose the controller drives: world position, zoom, anchor
// mode, and viewport size. Zoom is expressed in world units per screen pixel
// (larger = wider view) and is kept uniform (X == Y) by the controller.
//
// Position and Zoom are exported for reading; mutate them through the
// controller so limit clamping and valid-limit recomputation are applied.
type Camera struct {
	// Position is the camera's world-space position point. Its meaning
	// depends on Anchor: the viewport center for AnchorCenter, the top-left
	// corner for AnchorTopLeft.
	Position Vec2
	// Zoom is the scale factor in world units per screen pixel.
	Zoom Vec2
	// Anchor selects how the visible rectangle relates to Position.
	Anchor Anchor
	// Viewport is the visible size in screen pixels.
	Viewport Vec2

	scrollTween *scrollAnim
}

// NewCamera creates a Camera with zoom 1 and the given viewport size.
func NewCamera(viewport Vec2) *Camera {
	return &Camera{
		Zoom:     Vec2{X: 1, Y: 1},
		Anchor:   AnchorCenter,
		Viewport: viewport,
	}
}

// anchorOffset is the screen point that maps to Position.
func (c *Camera) anchorOffset() Vec2 {
	if c.Anchor == AnchorCenter {
		return Vec2{X: c.Viewport.X / 2, Y: c.Viewport.Y / 2}
	}
	return Vec2{}
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	o := c.anchorOffset()
	wx = c.Position.X + (sx-o.X)*c.Zoom.X
	wy = c.Position.Y + (sy-o.Y)*c.Zoom.Y
	return
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	o := c.anchorOffset()
	sx = (wx-c.Position.X)/c.Zoom.X + o.X
	sy = (wy-c.Position.Y)/c.Zoom.Y + o.Y
	return
}

// VisibleBounds returns the world-space rectangle the camera currently shows.
func (c *Camera) VisibleBounds() Rect {
	o := c.anchorOffset()
	return Rect{
		X:      c.Position.X - o.X*c.Zoom.X,
		Y:      c.Position.Y - o.Y*c.Zoom.Y,
		Width:  c.Viewport.X * c.Zoom.X,
		Height: c.Viewport.Y * c.Zoom.Y,
	}
}

// ScrollTo animates the camera to the given world position over duration
// seconds. The animation is advanced by Controller.Update and cancelled by
// any new gesture; each animated position passes through the limit engine.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.Position.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Position.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// cancelScroll drops any active scroll animation.
func (c *Camera) cancelScroll() {
	c.scrollTween = nil
}

// advanceScroll steps the scroll tween and returns the new position.
// ok is false when no animation is active.
func (c *Camera) advanceScroll(dt float32) (pos Vec2, ok bool) {
	if c.scrollTween == nil {
		return Vec2{}, false
	}
	pos = c.Position
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		pos.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		pos.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
	return pos, true
}
