package gesturecam

// Event is a decoded input event consumed by Controller.HandleEvent.
// The host (or the Poller adapter) is responsible for producing them; the
// controller never reads devices itself. Unrecognized Event implementations
// are ignored.
type Event interface {
	isInputEvent()
}

// PressEvent reports a pointer going down: a touch beginning or a mouse
// button press. Pointer 0 is reserved for the mouse.
type PressEvent struct {
	Pointer   int
	Position  Vec2 // screen pixels
	Button    MouseButton
	Modifiers KeyModifiers
}

// ReleaseEvent reports a pointer going up.
type ReleaseEvent struct {
	Pointer   int
	Position  Vec2
	Button    MouseButton
	Modifiers KeyModifiers
}

// MotionEvent reports pointer movement while the pointer is down: a touch
// drag or mouse motion. Delta is the movement since the previous event in
// screen pixels.
type MotionEvent struct {
	Pointer   int
	Position  Vec2
	Delta     Vec2
	Modifiers KeyModifiers
}

// WheelEvent reports discrete mouse-wheel movement. Ticks is positive for
// wheel-up (zoom in) and negative for wheel-down.
type WheelEvent struct {
	Position  Vec2
	Ticks     float64
	Modifiers KeyModifiers
}

// PanGestureEvent reports a two-finger trackpad pan gesture.
type PanGestureEvent struct {
	Position Vec2
	Delta    Vec2
}

// MagnifyEvent reports a trackpad magnify (pinch) gesture. Factor is the
// relative magnification for this update; 1.0 means no change.
type MagnifyEvent struct {
	Position Vec2
	Factor   float64
}

func (PressEvent) isInputEvent()      {}
func (ReleaseEvent) isInputEvent()    {}
func (MotionEvent) isInputEvent()     {}
func (WheelEvent) isInputEvent()      {}
func (PanGestureEvent) isInputEvent() {}
func (MagnifyEvent) isInputEvent()    {}
