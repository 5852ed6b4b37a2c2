package gesturecam

// Config holds the controller's tuning options. Fields are read on every
// event; change them directly except where a setter exists on Controller
// (SetStopOnLimit, SetLimits, SetViewportSize), which must run side effects.
type Config struct {
	// StopOnLimit hard-clamps the camera position into the valid limit
	// rectangle. When false the camera may overshoot and is pulled back
	// elastically at ReturnSpeed. Toggle via Controller.SetStopOnLimit.
	StopOnLimit bool
	// ReturnSpeed is the per-tick lerp factor toward the limit target while
	// out of bounds and idle. Range [0.01, 1].
	ReturnSpeed float64
	// PanSensitivity scales one-finger pan movement. Range [0.1, 1.0].
	PanSensitivity float64
	// FlingAction enables inertial scrolling after a fast release.
	FlingAction bool
	// MinFlingVelocity is the minimum release velocity, in screen pixels per
	// second, for a fling to start. The threshold is inclusive.
	MinFlingVelocity float64
	// Deceleration is the fling slowdown in pixels per second squared.
	// Range [1, 10000].
	Deceleration float64
	// MinZoom and MaxZoom bound the camera zoom factor.
	MinZoom float64
	MaxZoom float64
	// ZoomSensitivity is the pinch-distance change, in pixels, required
	// before a zoom step is applied. It also gates registry updates so touch
	// jitter does not perturb the pinch distance.
	ZoomSensitivity int
	// ZoomIncrement is the relative zoom step per pinch threshold crossing;
	// the applied delta is ZoomIncrement * current zoom.
	ZoomIncrement Vec2
	// ZoomAtPoint keeps the point under the gesture stationary while
	// zooming. When false, zooming is anchored on the camera position.
	ZoomAtPoint bool
	// MoveWhileZooming pans the camera by half the motion delta during a
	// two-finger pinch.
	MoveWhileZooming bool
	// HandleMouseEvents lets the primary mouse button pan (as pointer 0) and
	// the wheel zoom.
	HandleMouseEvents bool
	// MouseZoomIncrement is the relative zoom step per wheel tick.
	MouseZoomIncrement Vec2
	// TrackpadPanBehavior selects zooming or direct panning for two-finger
	// trackpad gestures.
	TrackpadPanBehavior TrackpadPanBehavior
	// TrackpadPanSpeed scales direct trackpad panning.
	TrackpadPanSpeed float64
}

// DefaultConfig returns the documented default tuning.
func DefaultConfig() Config {
	return Config{
		StopOnLimit:         false,
		ReturnSpeed:         0.1,
		PanSensitivity:      1.0,
		FlingAction:         true,
		MinFlingVelocity:    100,
		Deceleration:        2500,
		MinZoom:             0.1,
		MaxZoom:             10,
		ZoomSensitivity:     5,
		ZoomIncrement:       Vec2{X: 0.05, Y: 0.05},
		ZoomAtPoint:         true,
		MoveWhileZooming:    false,
		HandleMouseEvents:   true,
		MouseZoomIncrement:  Vec2{X: 0.05, Y: 0.05},
		TrackpadPanBehavior: TrackpadZoom,
		TrackpadPanSpeed:    1.0,
	}
}
