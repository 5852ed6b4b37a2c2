// Package gesturecam is an input-driven 2D camera controller for
// [Ebitengine].
//
// It translates pointer, touch, trackpad, and mouse events into camera
// position and zoom changes: one-finger panning, pinch-to-zoom, wheel and
// magnify zooming, inertial fling after a fast release, and clamping to a
// bounded pannable region with either a hard stop or an elastic return.
//
// # Quick start
//
// Create a Camera and a Controller, then drive them from an [ebiten.Game]:
//
//	cam := gesturecam.NewCamera(gesturecam.Vec2{X: 640, Y: 480})
//	ctrl := gesturecam.NewController(cam,
//		gesturecam.Rect{Width: 4000, Height: 4000},
//		gesturecam.DefaultConfig())
//	poller := gesturecam.NewPoller()
//
//	func (g *Game) Update() error {
//		poller.Poll(ctrl)
//		ctrl.Update(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
// Hosts with their own input plumbing can skip the Poller and feed decoded
// events to [Controller.HandleEvent] directly; the controller never reads
// devices itself.
//
// # Coordinate and zoom conventions
//
// Screen coordinates are pixels with the origin at the top-left. Camera.Zoom
// is world units per screen pixel, kept uniform across axes: larger zoom
// shows more world. [Camera.ScreenToWorld] and [Camera.WorldToScreen]
// convert between the two spaces under the current anchor mode.
//
// # Limits
//
// The controller derives a valid camera-position rectangle from the
// configured base limits, the anchor mode, the viewport size, and the
// current zoom, so the viewport never shows anything outside the base
// limits. With Config.StopOnLimit the position is hard-clamped; without it
// the camera may overshoot and is pulled back each frame at
// Config.ReturnSpeed.
//
// [Ebitengine]: https://ebitengine.org
package gesturecam
