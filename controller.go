package gesturecam

import "math"

// resampleInterval is the minimum width of the fling velocity sampling
// window. Motion samples are folded into the window until it has been open
// at least this long, then the window shifts. Velocity is therefore
// estimated from the last ~20ms of movement, not the whole gesture: a fast
// swipe that ends in a long static hold releases with near-zero velocity.
const resampleInterval = 0.02

// gesturePhase is the controller's explicit gesture state.
//
// Transitions:
//
//	idle     --press-->                    tracking
//	tracking --second press-->             multi
//	tracking --release, qualified-->       flying
//	tracking --release, not qualified-->   idle
//	multi    --release (pointers remain)-> multi   (fling stays suppressed)
//	multi    --last release-->             idle
//	flying   --press-->                    tracking (fling cancelled)
//	flying   --duration exhausted-->       idle
type gesturePhase uint8

const (
	phaseIdle     gesturePhase = iota // no pointers down, no fling
	phaseTracking                     // one pointer down, fling candidate
	phaseMulti                        // multi-touch seen this session; never flings
	phaseFlying                       // inertial motion after release
)

// Controller turns decoded input events into camera position and zoom
// changes: pan, pinch zoom, wheel/trackpad zoom, inertial fling, and
// limit clamping with elastic return.
//
// It has exactly two entry points — HandleEvent for each input event and
// Update once per frame — and expects both to be called from the same
// goroutine, in delivery order. All camera mutation flows through the
// controller's internal position and zoom setters.
type Controller struct {
	cam *Camera
	cfg Config

	touches touchRegistry
	phase   gesturePhase

	// Fling velocity sampling window.
	start   Vec2    // window start position
	end     Vec2    // window end position
	elapsed float64 // time the current window has been open
	window  float64 // duration of the last closed window

	lastPinchDistance float64

	fling       flingState
	limits      limitState
	limitTarget Vec2

	zoomedToMin bool
	zoomedToMax bool

	zoomTween *zoomAnim
	sink      EventSink
}

// NewController creates a controller driving cam, constrained to the given
// base limit rectangle.
func NewController(cam *Camera, limits Rect, cfg Config) *Controller {
	c := &Controller{cam: cam, cfg: cfg}
	c.limits.base = limits
	if cfg.StopOnLimit {
		c.limits.effective = limits
	} else {
		c.limits.effective = sentinelRect()
	}
	c.calculateValidLimits()
	c.setPosition(cam.Position)
	return c
}

// Camera returns the camera this controller drives.
func (c *Controller) Camera() *Camera {
	return c.cam
}

// Config returns the current tuning options.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig replaces the tuning options. StopOnLimit changes are routed
// through SetStopOnLimit so the effective limits stay consistent.
func (c *Controller) SetConfig(cfg Config) {
	stop := cfg.StopOnLimit
	cfg.StopOnLimit = c.cfg.StopOnLimit
	c.cfg = cfg
	c.SetStopOnLimit(stop)
}

// SetEventSink installs a sink for gesture lifecycle notifications.
// Pass nil to remove it.
func (c *Controller) SetEventSink(sink EventSink) {
	c.sink = sink
}

// emit sends a lifecycle notification if a sink is installed.
func (c *Controller) emit(kind GestureKind, velocity Vec2) {
	if c.sink == nil {
		return
	}
	c.sink.EmitGesture(GestureEvent{
		Kind:     kind,
		Position: c.cam.Position,
		Zoom:     c.cam.Zoom,
		Velocity: velocity,
	})
}

// HandleEvent processes one decoded input event. Events the controller does
// not recognize are ignored.
func (c *Controller) HandleEvent(ev Event) {
	switch e := ev.(type) {
	case PressEvent:
		c.handlePress(e)
	case ReleaseEvent:
		c.handleRelease(e)
	case MotionEvent:
		c.handleMotion(e)
	case WheelEvent:
		c.handleWheel(e)
	case PanGestureEvent:
		c.handlePanGesture(e)
	case MagnifyEvent:
		c.handleMagnify(e)
	}
}

// handlePress starts or extends a gesture session. The first pointer of a
// sequence resets the velocity window and pinch distance; a second pointer
// permanently suppresses fling for the session. Any in-progress fling or
// animation is cancelled.
func (c *Controller) handlePress(e PressEvent) {
	if e.Pointer == 0 {
		if !c.cfg.HandleMouseEvents {
			return
		}
		if e.Button != MouseButtonLeft {
			// A concurrent non-primary click must not keep the pan/pinch
			// session alive.
			if !c.cfg.MoveWhileZooming {
				c.touches.unregister(0)
			}
			return
		}
	}

	c.cancelFling()
	c.cam.cancelScroll()
	c.zoomTween = nil

	c.touches.register(e.Pointer, e.Position)
	if c.touches.count() > 1 {
		if c.phase != phaseMulti {
			c.phase = phaseMulti
			c.emit(GesturePinchBegan, Vec2{})
		}
	} else {
		c.start = e.Position
		c.end = e.Position
		c.elapsed = 0
		c.window = 0
		c.lastPinchDistance = 0
		c.phase = phaseTracking
		c.emit(GesturePanBegan, Vec2{})
	}
}

// handleRelease ends a pointer's participation in the session and, for a
// qualifying single-pointer release, starts a fling.
func (c *Controller) handleRelease(e ReleaseEvent) {
	if e.Pointer == 0 && !c.cfg.HandleMouseEvents {
		return
	}
	if e.Pointer == 0 && e.Button != MouseButtonLeft {
		return
	}

	if c.window > 0 && c.phase == phaseTracking && c.cfg.FlingAction {
		if c.qualifyFling(c.start, c.end, c.window) {
			c.phase = phaseFlying
			c.emit(GestureFlingBegan, c.fling.velocity)
		}
	}

	c.touches.unregister(e.Pointer)
	if c.touches.count() == 0 && c.phase != phaseFlying {
		c.phase = phaseIdle
		c.emit(GestureEnded, Vec2{})
	}
}

// handleMotion pans with one pointer and drives pinch zoom with two.
func (c *Controller) handleMotion(e MotionEvent) {
	if e.Pointer == 0 && !c.cfg.HandleMouseEvents {
		return
	}
	prev, tracked := c.touches.get(e.Pointer)
	if !tracked {
		// Hover motion or an unknown pointer; nothing to do.
		return
	}

	// Shift the velocity sampling window once it has been open long enough.
	if c.elapsed > resampleInterval && c.phase == phaseTracking && c.cfg.FlingAction {
		c.start = c.end
		c.end = e.Position
		c.window = c.elapsed
		c.elapsed = 0
	}

	// Small jitter must not perturb pinch-distance tracking.
	if math.Hypot(e.Position.X-prev.X, e.Position.Y-prev.Y) > float64(c.cfg.ZoomSensitivity) {
		c.touches.register(e.Pointer, e.Position)
	}

	if c.touches.count() >= 2 {
		c.handlePinch(e)
		return
	}

	// One active pointer: pan. Screen delta is scaled into world units by
	// the zoom so panning speed tracks the finger at any zoom level.
	z := c.cam.Zoom
	s := c.cfg.PanSensitivity
	p := c.cam.Position
	c.setPosition(Vec2{
		X: p.X - e.Delta.X*s*z.X,
		Y: p.Y - e.Delta.Y*s*z.Y,
	})
}

// handlePinch processes motion while two or more pointers are active: the
// pinch distance between the first two tracked pointers drives zoom steps.
func (c *Controller) handlePinch(e MotionEvent) {
	if c.cfg.MoveWhileZooming {
		// Two fingers move together, so pan at half rate.
		z := c.cam.Zoom
		s := c.cfg.PanSensitivity
		p := c.cam.Position
		c.setPosition(Vec2{
			X: p.X - e.Delta.X/2*s*z.X,
			Y: p.Y - e.Delta.Y/2*s*z.Y,
		})
	}

	a, b := c.touches.firstTwo()
	dist := math.Hypot(b.pos.X-a.pos.X, b.pos.Y-a.pos.Y)

	if c.lastPinchDistance == 0 {
		// First sample of this pinch; no zoom delta yet.
		c.lastPinchDistance = dist
		return
	}
	if math.Abs(dist-c.lastPinchDistance) <= float64(c.cfg.ZoomSensitivity) {
		return
	}

	z := c.cam.Zoom
	inc := c.cfg.ZoomIncrement.Mul(z)
	var target Vec2
	if dist < c.lastPinchDistance {
		target = z.Sub(inc)
	} else {
		target = z.Add(inc)
	}

	midpoint := Vec2{X: (a.pos.X + b.pos.X) / 2, Y: (a.pos.Y + b.pos.Y) / 2}
	c.zoomAt(target, c.zoomFocus(midpoint))
	c.lastPinchDistance = dist
}

// handleWheel zooms by MouseZoomIncrement per wheel tick, anchored at the
// pointer when ZoomAtPoint is enabled. Wheel-up means zoom in, which in
// world-units-per-pixel terms is a smaller zoom value.
func (c *Controller) handleWheel(e WheelEvent) {
	if !c.cfg.HandleMouseEvents || e.Ticks == 0 {
		return
	}
	z := c.cam.Zoom
	target := Vec2{
		X: z.X - z.X*c.cfg.MouseZoomIncrement.X*e.Ticks,
		Y: z.Y - z.Y*c.cfg.MouseZoomIncrement.Y*e.Ticks,
	}
	c.zoomAt(target, c.zoomFocus(e.Position))
}

// handlePanGesture interprets a two-finger trackpad pan: direct panning, or
// wheel-equivalent zooming when the vertical delta dominates.
func (c *Controller) handlePanGesture(e PanGestureEvent) {
	if c.cfg.TrackpadPanBehavior == TrackpadPan {
		p := c.cam.Position
		c.setPosition(Vec2{
			X: p.X + e.Delta.X*c.cfg.TrackpadPanSpeed,
			Y: p.Y + e.Delta.Y*c.cfg.TrackpadPanSpeed,
		})
		return
	}
	if math.Abs(e.Delta.Y) <= math.Abs(e.Delta.X) {
		return
	}
	c.handleWheel(WheelEvent{Position: e.Position, Ticks: -e.Delta.Y})
}

// handleMagnify zooms by the continuous trackpad magnify factor.
func (c *Controller) handleMagnify(e MagnifyEvent) {
	z := c.cam.Zoom
	delta := 1 - e.Factor
	target := Vec2{X: z.X + z.X*delta, Y: z.Y + z.Y*delta}
	c.zoomAt(target, c.zoomFocus(e.Position))
}

// Update advances the controller by dt seconds. Call once per frame. It
// integrates an active fling, interpolates the camera back inside the limits
// while idle in elastic mode, and steps scroll/zoom animations.
func (c *Controller) Update(dt float64) {
	if c.phase == phaseTracking || c.phase == phaseMulti {
		c.elapsed += dt
	}

	if c.fling.flying {
		c.stepFling(dt)
	} else if !c.cfg.StopOnLimit && c.touches.count() == 0 {
		c.elasticReturn()
	}

	if pos, ok := c.cam.advanceScroll(float32(dt)); ok {
		c.setPosition(pos)
	}
	c.advanceZoomTween(dt)
}

// elasticReturn moves the camera linearly toward the limit target. With
// ReturnSpeed in (0, 1] each tick closes a fixed fraction of the remaining
// distance, so the approach is monotonic and never overshoots.
func (c *Controller) elasticReturn() {
	p := c.cam.Position
	t := c.limitTarget
	if p == t {
		return
	}
	c.setPosition(Vec2{
		X: p.X + (t.X-p.X)*c.cfg.ReturnSpeed,
		Y: p.Y + (t.Y-p.Y)*c.cfg.ReturnSpeed,
	})
}

// ActivePointers returns the number of currently tracked pointers.
func (c *Controller) ActivePointers() int {
	return c.touches.count()
}
