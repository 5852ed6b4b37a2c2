package gesturecam

// Synthetic input injection for automated testing. Queued events are
// consumed by Poll one per frame, in place of real input, so scripted
// gestures run through exactly the code path a real pointer would.

// InjectPress queues a pointer press at the given screen coordinates
// (pointer 0, left button).
func (p *Poller) InjectPress(x, y float64) {
	p.injectLast = Vec2{X: x, Y: y}
	p.injectQueue = append(p.injectQueue, PressEvent{
		Pointer: 0, Position: p.injectLast, Button: MouseButtonLeft,
	})
}

// InjectMove queues a pointer move to the given screen coordinates with the
// button held down. Use between InjectPress and InjectRelease to simulate a
// drag; the motion delta is derived from the previously injected position.
func (p *Poller) InjectMove(x, y float64) {
	pos := Vec2{X: x, Y: y}
	p.injectQueue = append(p.injectQueue, MotionEvent{
		Pointer: 0, Position: pos, Delta: pos.Sub(p.injectLast),
	})
	p.injectLast = pos
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (p *Poller) InjectRelease(x, y float64) {
	p.injectLast = Vec2{X: x, Y: y}
	p.injectQueue = append(p.injectQueue, ReleaseEvent{
		Pointer: 0, Position: p.injectLast, Button: MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (p *Poller) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes `frames` frames. Minimum frames
// is 2 (press + release).
func (p *Poller) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		p.InjectMove(x, y)
	}
	p.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel event at the given screen coordinates.
// Positive ticks mean wheel-up (zoom in).
func (p *Poller) InjectWheel(x, y, ticks float64) {
	p.injectQueue = append(p.injectQueue, WheelEvent{
		Position: Vec2{X: x, Y: y}, Ticks: ticks,
	})
}

// InjectMagnify queues a trackpad magnify event at the given screen
// coordinates.
func (p *Poller) InjectMagnify(x, y, factor float64) {
	p.injectQueue = append(p.injectQueue, MagnifyEvent{
		Position: Vec2{X: x, Y: y}, Factor: factor,
	})
}

// InjectPanGesture queues a two-finger trackpad pan event.
func (p *Poller) InjectPanGesture(x, y, dx, dy float64) {
	p.injectQueue = append(p.injectQueue, PanGestureEvent{
		Position: Vec2{X: x, Y: y}, Delta: Vec2{X: dx, Y: dy},
	})
}

// InjectPending returns the number of queued synthetic events.
func (p *Poller) InjectPending() int {
	return len(p.injectQueue)
}
