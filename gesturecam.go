package gesturecam

// Vec2 is a 2D vector used for positions, deltas, sizes, and zoom factors
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v with both components multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Anchor determines how the camera's visible rectangle relates to its
// position point.
type Anchor uint8

const (
	// AnchorTopLeft places the visible rectangle's top-left corner at the
	// camera position.
	AnchorTopLeft Anchor = iota
	// AnchorCenter centers the visible rectangle on the camera position.
	AnchorCenter
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// TrackpadPanBehavior selects how two-finger trackpad pan gestures are
// interpreted.
type TrackpadPanBehavior uint8

const (
	// TrackpadZoom routes vertically-dominant pan gestures to wheel-style
	// zooming.
	TrackpadZoom TrackpadPanBehavior = iota
	// TrackpadPan translates the camera directly by the gesture delta.
	TrackpadPan
)

// GestureKind identifies a gesture lifecycle notification.
type GestureKind uint8

const (
	GesturePanBegan    GestureKind = iota // first pointer pressed
	GesturePinchBegan                     // second pointer joined
	GestureEnded                          // last pointer released, no fling
	GestureFlingBegan                     // release qualified as a fling
	GestureFlingEnded                     // fling ran out or was cancelled
	GestureZoomPinned                     // zoom hit MinZoom or MaxZoom
)

// GestureEvent is a gesture lifecycle notification delivered to an EventSink.
type GestureEvent struct {
	Kind     GestureKind
	Position Vec2 // camera position at emission time
	Zoom     Vec2
	Velocity Vec2 // fling velocity; zero for non-fling kinds
}

// EventSink receives gesture lifecycle notifications. Set one on a
// Controller with SetEventSink; the ecs subpackage provides a Donburi-backed
// implementation.
type EventSink interface {
	EmitGesture(GestureEvent)
}
