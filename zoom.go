package gesturecam

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// zoomAnim is an active zoom-to tween. Zoom is uniform, so one tween drives
// both axes.
type zoomAnim struct {
	tween *gween.Tween
	focus Vec2
}

// setZoom clamps z uniformly into [MinZoom, MaxZoom], records whether the
// clamp pinned at either end, and recomputes the derived limit rectangles.
func (c *Controller) setZoom(z Vec2) {
	v := z.X
	switch {
	case v <= c.cfg.MinZoom:
		v = c.cfg.MinZoom
		c.zoomedToMin, c.zoomedToMax = true, false
	case v >= c.cfg.MaxZoom:
		v = c.cfg.MaxZoom
		c.zoomedToMax, c.zoomedToMin = true, false
	default:
		c.zoomedToMin, c.zoomedToMax = false, false
	}
	c.cam.Zoom = Vec2{X: v, Y: v}
	c.calculateValidLimits()
}

// zoomAt applies newZoom while keeping the world point under the screen
// coordinate focus stationary. Any active fling is cancelled first. When the
// clamp pins at MinZoom or MaxZoom the reposition is skipped: the requested
// delta was not fully applied, so compensating would drift the camera.
func (c *Controller) zoomAt(newZoom Vec2, focus Vec2) {
	c.cancelFling()

	delta := newZoom.Sub(c.cam.Zoom)
	if c.cam.Anchor == AnchorCenter {
		focus = Vec2{X: focus.X - c.cam.Viewport.X/2, Y: focus.Y - c.cam.Viewport.Y/2}
	}
	if newZoom.X < c.cfg.MinZoom {
		newZoom.X = c.cfg.MinZoom
	}
	if newZoom.Y < c.cfg.MinZoom {
		newZoom.Y = c.cfg.MinZoom
	}
	c.setZoom(newZoom)
	if !c.zoomedToMin && !c.zoomedToMax {
		c.setPosition(Vec2{
			X: c.cam.Position.X - focus.X*delta.X,
			Y: c.cam.Position.Y - focus.Y*delta.Y,
		})
	} else if c.sink != nil {
		c.sink.EmitGesture(GestureEvent{Kind: GestureZoomPinned, Position: c.cam.Position, Zoom: c.cam.Zoom})
	}
}

// cameraFocus returns the screen coordinate of the camera position itself:
// the zoom anchor used when ZoomAtPoint is disabled. Zooming there leaves
// the camera position unchanged.
func (c *Controller) cameraFocus() Vec2 {
	return c.cam.anchorOffset()
}

// zoomFocus picks the zoom anchor: the gesture point when ZoomAtPoint is
// enabled, the camera position otherwise.
func (c *Controller) zoomFocus(at Vec2) Vec2 {
	if c.cfg.ZoomAtPoint {
		return at
	}
	return c.cameraFocus()
}

// ZoomedToMin reports whether the last zoom change pinned at MinZoom.
func (c *Controller) ZoomedToMin() bool { return c.zoomedToMin }

// ZoomedToMax reports whether the last zoom change pinned at MaxZoom.
func (c *Controller) ZoomedToMax() bool { return c.zoomedToMax }

// SetZoom sets the zoom directly, clamped into range, anchored on the
// camera position.
func (c *Controller) SetZoom(zoom float64) {
	c.zoomAt(Vec2{X: zoom, Y: zoom}, c.cameraFocus())
}

// ZoomTo animates the zoom to the given value over duration seconds,
// anchored on the camera position. Advanced by Update; cancelled by any new
// press or zoom gesture.
func (c *Controller) ZoomTo(zoom float64, duration float32, easeFn ease.TweenFunc) {
	c.zoomTween = &zoomAnim{
		tween: gween.New(float32(c.cam.Zoom.X), float32(zoom), duration, easeFn),
		focus: c.cameraFocus(),
	}
}

// advanceZoomTween steps an active zoom animation.
func (c *Controller) advanceZoomTween(dt float64) {
	if c.zoomTween == nil {
		return
	}
	val, done := c.zoomTween.tween.Update(float32(dt))
	focus := c.zoomTween.focus
	if done {
		c.zoomTween = nil
	}
	c.zoomAt(Vec2{X: float64(val), Y: float64(val)}, focus)
}
