package gesturecam

import "math"

const (
	// timeEpsilon substitutes for zero or negative time deltas so velocity
	// and duration math never divides by zero.
	timeEpsilon = 1e-4
	// bounceStopTime is the window a flying axis is forced to stop within
	// once the position has left the valid limits on that axis.
	bounceStopTime = 0.2
)

// flingState is the kinematic state of an active fling: per-axis velocity
// and deceleration, and the remaining flight time.
type flingState struct {
	velocity  Vec2
	decel     Vec2
	remaining float64
	flying    bool
}

// qualifyFling decides whether the displacement from start to end over dt
// seconds starts a fling, and if so initializes the fling state. The
// MinFlingVelocity threshold is inclusive. Per-axis deceleration is derived
// from the shared estimated duration so both axes come to rest at the same
// instant.
//
// Velocity carries the camera, so its sign is start-end: the camera keeps
// moving opposite to the finger, like the pan it continues.
func (c *Controller) qualifyFling(start, end Vec2, dt float64) bool {
	if dt <= 0 {
		dt = timeEpsilon
	}
	initial := math.Hypot(end.X-start.X, end.Y-start.Y) / dt
	if initial < c.cfg.MinFlingVelocity {
		return false
	}
	duration := initial / c.cfg.Deceleration
	if duration <= 0 {
		duration = timeEpsilon
	}
	vx := (start.X - end.X) / dt
	vy := (start.Y - end.Y) / dt
	c.fling = flingState{
		velocity:  Vec2{X: vx, Y: vy},
		decel:     Vec2{X: vx / duration, Y: vy / duration},
		remaining: duration,
		flying:    true,
	}
	return true
}

// stepFling advances an active fling by dt seconds: integrate position,
// then decelerate. An axis that has left the valid limits has its
// deceleration overridden to velocity/bounceStopTime, damping the overshoot
// to a stop instead of coasting further out.
func (c *Controller) stepFling(dt float64) {
	c.fling.remaining -= dt
	if c.fling.remaining <= 0 {
		c.endFling()
		return
	}

	dec := c.fling.decel
	if c.outOfLimitX() {
		dec.X = c.fling.velocity.X / bounceStopTime
	}
	if c.outOfLimitY() {
		dec.Y = c.fling.velocity.Y / bounceStopTime
	}

	p := c.cam.Position
	c.setPosition(Vec2{
		X: p.X + c.fling.velocity.X*dt,
		Y: p.Y + c.fling.velocity.Y*dt,
	})
	c.fling.velocity.X -= dec.X * dt
	c.fling.velocity.Y -= dec.Y * dt
}

// endFling terminates a fling that ran out its duration.
func (c *Controller) endFling() {
	wasFlying := c.fling.flying
	c.fling = flingState{}
	if c.phase == phaseFlying {
		c.phase = phaseIdle
	}
	if wasFlying && c.sink != nil {
		c.sink.EmitGesture(GestureEvent{Kind: GestureFlingEnded, Position: c.cam.Position, Zoom: c.cam.Zoom})
	}
}

// cancelFling stops an active fling immediately: velocities zeroed, no
// remaining flight time. Safe to call when no fling is active.
func (c *Controller) cancelFling() {
	if !c.fling.flying {
		return
	}
	c.endFling()
}

// Flying reports whether a fling is in progress.
func (c *Controller) Flying() bool {
	return c.fling.flying
}

// FlingVelocity returns the current fling velocity, or the zero vector when
// no fling is active.
func (c *Controller) FlingVelocity() Vec2 {
	return c.fling.velocity
}
