package gesturecam

import "math"

// limitSentinel is the half-extent of the effectively-unbounded limit
// rectangle used while elastic mode is active. The real base limits are kept
// alongside so out-of-bounds checks still run against them.
const limitSentinel = 1e7

// sentinelRect returns the effectively-unbounded limit rectangle.
func sentinelRect() Rect {
	return Rect{X: -limitSentinel, Y: -limitSentinel, Width: 2 * limitSentinel, Height: 2 * limitSentinel}
}

// limitState holds the developer-configured base limits, the effective
// limits the position is clamped against (base, or sentinel-widened in
// elastic mode), and the valid camera-position rectangles derived from each.
type limitState struct {
	base      Rect
	effective Rect
	valid     Rect // derived from base; the real constraint
	validWide Rect // derived from effective; permissive in elastic mode
}

// deriveValid computes the rectangle camera positions must stay within so
// the full viewport, under the given anchor mode and zoom, renders inside
// base. Anchor modes other than center and top-left pass base through
// unchanged.
func deriveValid(base Rect, anchor Anchor, viewport, zoom Vec2) Rect {
	switch anchor {
	case AnchorCenter:
		return Rect{
			X:      base.X + viewport.X/2*zoom.X,
			Y:      base.Y + viewport.Y/2*zoom.Y,
			Width:  base.Width - viewport.X*zoom.X,
			Height: base.Height - viewport.Y*zoom.Y,
		}
	case AnchorTopLeft:
		return Rect{
			X:      base.X,
			Y:      base.Y,
			Width:  base.Width - viewport.X*zoom.X,
			Height: base.Height - viewport.Y*zoom.Y,
		}
	default:
		return base
	}
}

// clampToRect clamps p into r per axis. If r is narrower than zero on an
// axis (the base limits are smaller than the visible area), the midpoint is
// used for that axis.
func clampToRect(p Vec2, r Rect) Vec2 {
	if r.Width < 0 {
		p.X = r.X + r.Width/2
	} else {
		p.X = math.Max(r.X, math.Min(p.X, r.X+r.Width))
	}
	if r.Height < 0 {
		p.Y = r.Y + r.Height/2
	} else {
		p.Y = math.Max(r.Y, math.Min(p.Y, r.Y+r.Height))
	}
	return p
}

// calculateValidLimits recomputes both derived rectangles. Called on every
// zoom change, viewport resize, base-limit change, and stop-on-limit toggle.
func (c *Controller) calculateValidLimits() {
	c.limits.valid = deriveValid(c.limits.base, c.cam.Anchor, c.cam.Viewport, c.cam.Zoom)
	c.limits.validWide = deriveValid(c.limits.effective, c.cam.Anchor, c.cam.Viewport, c.cam.Zoom)
}

// setPosition is the single mutation path for the camera position. The
// position is clamped into the wide valid rectangle (a hard clamp when
// StopOnLimit, effectively unbounded otherwise) and the limit target — the
// elastic-return attractor — is always the position clamped into the real
// valid rectangle.
func (c *Controller) setPosition(p Vec2) {
	c.limitTarget = clampToRect(p, c.limits.valid)
	c.cam.Position = clampToRect(p, c.limits.validWide)
}

// outOfLimitX reports whether the camera position is outside the valid
// rectangle on the X axis.
func (c *Controller) outOfLimitX() bool {
	p := c.cam.Position.X
	return p < c.limits.valid.X || p > c.limits.valid.X+c.limits.valid.Width
}

// outOfLimitY reports whether the camera position is outside the valid
// rectangle on the Y axis.
func (c *Controller) outOfLimitY() bool {
	p := c.cam.Position.Y
	return p < c.limits.valid.Y || p > c.limits.valid.Y+c.limits.valid.Height
}

// SetLimits replaces the developer-configured base limit rectangle.
func (c *Controller) SetLimits(r Rect) {
	c.limits.base = r
	if c.cfg.StopOnLimit {
		c.limits.effective = r
	}
	c.calculateValidLimits()
	c.setPosition(c.cam.Position)
}

// Limits returns the developer-configured base limit rectangle.
func (c *Controller) Limits() Rect {
	return c.limits.base
}

// ValidLimit returns the derived rectangle camera positions are constrained
// to under the current anchor mode, viewport size, and zoom.
func (c *Controller) ValidLimit() Rect {
	return c.limits.valid
}

// LimitTarget returns the elastic-return attractor: the camera position
// clamped into the valid limit rectangle.
func (c *Controller) LimitTarget() Vec2 {
	return c.limitTarget
}

// SetStopOnLimit toggles between hard clamping and elastic return. Setting
// the current value is a no-op. Switching to true snaps the effective limits
// back to the base rectangle; switching to false widens them to the sentinel
// range so positions may overshoot while the limit target keeps tracking the
// real limits.
func (c *Controller) SetStopOnLimit(v bool) {
	if v == c.cfg.StopOnLimit {
		return
	}
	c.cfg.StopOnLimit = v
	if v {
		c.limits.effective = c.limits.base
	} else {
		c.limits.effective = sentinelRect()
	}
	c.calculateValidLimits()
	c.setPosition(c.cam.Position)
}

// SetViewportSize updates the camera's visible size and recomputes the
// derived limit rectangles. Call this from the host's resize notification.
func (c *Controller) SetViewportSize(size Vec2) {
	c.cam.Viewport = size
	c.calculateValidLimits()
	c.setPosition(c.cam.Position)
}
