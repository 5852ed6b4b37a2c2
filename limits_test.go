package gesturecam

import (
	"math"
	"testing"
)

func newTestController(cfg Config) *Controller {
	cam := NewCamera(Vec2{X: 800, Y: 600})
	return NewController(cam, Rect{X: 0, Y: 0, Width: 4000, Height: 4000}, cfg)
}

func TestDeriveValid_CenterAnchor(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 4000, Height: 4000}
	valid := deriveValid(base, AnchorCenter, Vec2{X: 800, Y: 600}, Vec2{X: 1, Y: 1})
	want := Rect{X: 400, Y: 300, Width: 3200, Height: 3400}
	if valid != want {
		t.Errorf("valid = %+v, want %+v", valid, want)
	}
}

func TestDeriveValid_TopLeftAnchor(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 4000, Height: 4000}
	valid := deriveValid(base, AnchorTopLeft, Vec2{X: 800, Y: 600}, Vec2{X: 1, Y: 1})
	want := Rect{X: 0, Y: 0, Width: 3200, Height: 3400}
	if valid != want {
		t.Errorf("valid = %+v, want %+v", valid, want)
	}
}

func TestDeriveValid_ZoomScalesOffsets(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 4000, Height: 4000}
	valid := deriveValid(base, AnchorCenter, Vec2{X: 800, Y: 600}, Vec2{X: 2, Y: 2})
	want := Rect{X: 800, Y: 600, Width: 2400, Height: 2800}
	if valid != want {
		t.Errorf("valid = %+v, want %+v", valid, want)
	}
}

// Any position clamped into the valid rectangle must keep the full viewport
// inside the base limits, for every anchor mode.
func TestValidLimitKeepsViewportInsideBase(t *testing.T) {
	base := Rect{X: -500, Y: -200, Width: 5000, Height: 3000}
	viewport := Vec2{X: 800, Y: 600}

	for _, anchor := range []Anchor{AnchorCenter, AnchorTopLeft} {
		for _, zoom := range []float64{0.5, 1, 2} {
			z := Vec2{X: zoom, Y: zoom}
			valid := deriveValid(base, anchor, viewport, z)

			cam := NewCamera(viewport)
			cam.Anchor = anchor
			cam.Zoom = z

			// Probe positions well outside the base and clamp them in.
			probes := []Vec2{
				{X: -9999, Y: -9999}, {X: 9999, Y: 9999},
				{X: 0, Y: 9999}, {X: 9999, Y: 0}, {X: 100, Y: 100},
			}
			for _, p := range probes {
				cam.Position = clampToRect(p, valid)
				vis := cam.VisibleBounds()
				const eps = 1e-6
				if vis.X < base.X-eps || vis.Y < base.Y-eps ||
					vis.X+vis.Width > base.X+base.Width+eps ||
					vis.Y+vis.Height > base.Y+base.Height+eps {
					t.Errorf("anchor %v zoom %v probe %v: visible %+v escapes base %+v",
						anchor, zoom, p, vis, base)
				}
			}
		}
	}
}

func TestClampToRect_CentersWhenTooSmall(t *testing.T) {
	// Base smaller than the visible area: width goes negative, camera centers.
	r := Rect{X: 0, Y: 0, Width: -700, Height: 100}
	p := clampToRect(Vec2{X: 42, Y: 500}, r)
	if !approxEqual(p.X, -350, epsilon) {
		t.Errorf("X = %f, want -350 (midpoint)", p.X)
	}
	if !approxEqual(p.Y, 100, epsilon) {
		t.Errorf("Y = %f, want 100 (clamped)", p.Y)
	}
}

func TestSetPosition_HardClamp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StopOnLimit = true
	c := newTestController(cfg)

	c.setPosition(Vec2{X: -9999, Y: 9999})
	valid := c.ValidLimit()
	p := c.Camera().Position
	if !valid.Contains(p.X, p.Y) {
		t.Errorf("position %v escaped valid limit %+v", p, valid)
	}
	if p != (Vec2{X: valid.X, Y: valid.Y + valid.Height}) {
		t.Errorf("position = %v, want corner clamp", p)
	}
}

func TestSetPosition_ElasticTargetsClamp(t *testing.T) {
	c := newTestController(DefaultConfig()) // StopOnLimit false

	want := Vec2{X: -777, Y: 200}
	c.setPosition(want)
	if c.Camera().Position != want {
		t.Errorf("elastic position = %v, want unclamped %v", c.Camera().Position, want)
	}
	valid := c.ValidLimit()
	target := c.LimitTarget()
	if target != clampToRect(want, valid) {
		t.Errorf("limitTarget = %v, want %v", target, clampToRect(want, valid))
	}
}

func TestElasticReturnMonotonic(t *testing.T) {
	c := newTestController(DefaultConfig())
	c.setPosition(Vec2{X: -777, Y: 300})
	target := c.LimitTarget()

	prev := math.Abs(c.Camera().Position.X - target.X)
	for i := 0; i < 200; i++ {
		c.Update(1.0 / 60)
		d := math.Abs(c.Camera().Position.X - target.X)
		if d > prev+epsilon {
			t.Fatalf("tick %d: distance grew from %f to %f", i, prev, d)
		}
		prev = d
	}
	if prev > 0.01 {
		t.Errorf("after 200 ticks, still %f away from limit target", prev)
	}
	if c.Camera().Position.Y != 300 {
		t.Errorf("in-bounds axis moved: Y = %f, want 300", c.Camera().Position.Y)
	}
}

func TestSetStopOnLimitIdempotent(t *testing.T) {
	c := newTestController(DefaultConfig())
	c.setPosition(Vec2{X: -777, Y: 300})
	before := c.Camera().Position

	c.SetStopOnLimit(false) // already false: must not re-clamp or recompute
	if c.Camera().Position != before {
		t.Errorf("no-op toggle moved position to %v", c.Camera().Position)
	}

	c.SetStopOnLimit(true)
	p := c.Camera().Position
	valid := c.ValidLimit()
	if !valid.Contains(p.X, p.Y) {
		t.Errorf("enabling StopOnLimit left position %v outside %+v", p, valid)
	}

	c.SetStopOnLimit(true) // no-op again
	if c.Camera().Position != p {
		t.Errorf("no-op toggle moved position to %v", c.Camera().Position)
	}
}

func TestSetViewportSizeRecomputesOffsets(t *testing.T) {
	c := newTestController(DefaultConfig())
	before := c.ValidLimit()
	base := c.Limits()

	c.SetViewportSize(Vec2{X: 1600, Y: 600})
	after := c.ValidLimit()

	if c.Limits() != base {
		t.Errorf("base limits changed: %+v", c.Limits())
	}
	// Only the viewport-dependent offset term moves: X by +400, width by -800.
	if !approxEqual(after.X, before.X+400, epsilon) || !approxEqual(after.Width, before.Width-800, epsilon) {
		t.Errorf("valid X/Width = %f/%f, want %f/%f", after.X, after.Width, before.X+400, before.Width-800)
	}
	if after.Y != before.Y || after.Height != before.Height {
		t.Errorf("Y axis changed without a height change: %+v -> %+v", before, after)
	}
}

func TestSetLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StopOnLimit = true
	c := newTestController(cfg)

	c.SetLimits(Rect{X: 1000, Y: 1000, Width: 2000, Height: 2000})
	p := c.Camera().Position
	valid := c.ValidLimit()
	if !valid.Contains(p.X, p.Y) {
		t.Errorf("position %v not re-clamped into new limits %+v", p, valid)
	}
}
