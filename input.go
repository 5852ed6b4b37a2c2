package gesturecam

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// maxPointers bounds the pointer id space: pointer 0 = mouse, 1-9 = touch.
const maxPointers = 10

// Poller reads ebiten mouse, touch, and wheel state once per frame and
// feeds the resulting events to a Controller. Hosts with their own event
// delivery can skip it and call Controller.HandleEvent directly.
type Poller struct {
	leftDown   bool
	rightDown  bool
	middleDown bool
	cursor     Vec2
	hasCursor  bool

	touchIDs  []ebiten.TouchID
	touchUsed [maxPointers]bool
	touchMap  [maxPointers]ebiten.TouchID
	touchPos  [maxPointers]Vec2

	injectQueue []Event
	injectLast  Vec2
}

// NewPoller creates a Poller.
func NewPoller() *Poller {
	return &Poller{}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// Poll reads input state and delivers events to c. Call once per frame,
// before c.Update. If synthetic events are queued, exactly one is consumed
// instead of real input for this frame.
func (p *Poller) Poll(c *Controller) {
	if len(p.injectQueue) > 0 {
		ev := p.injectQueue[0]
		copy(p.injectQueue, p.injectQueue[1:])
		p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
		c.HandleEvent(ev)
		return
	}

	mods := readModifiers()
	p.pollMouse(c, mods)
	p.pollWheel(c, mods)
	p.pollTouches(c, mods)
}

// pollMouse converts mouse button edges and cursor motion to events
// (pointer 0).
func (p *Poller) pollMouse(c *Controller, mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	pos := Vec2{X: float64(mx), Y: float64(my)}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left && !p.leftDown {
		c.HandleEvent(PressEvent{Pointer: 0, Position: pos, Button: MouseButtonLeft, Modifiers: mods})
	} else if !left && p.leftDown {
		c.HandleEvent(ReleaseEvent{Pointer: 0, Position: pos, Button: MouseButtonLeft, Modifiers: mods})
	} else if left && p.hasCursor && pos != p.cursor {
		c.HandleEvent(MotionEvent{Pointer: 0, Position: pos, Delta: pos.Sub(p.cursor), Modifiers: mods})
	}

	if right && !p.rightDown {
		c.HandleEvent(PressEvent{Pointer: 0, Position: pos, Button: MouseButtonRight, Modifiers: mods})
	}
	if middle && !p.middleDown {
		c.HandleEvent(PressEvent{Pointer: 0, Position: pos, Button: MouseButtonMiddle, Modifiers: mods})
	}

	p.leftDown = left
	p.rightDown = right
	p.middleDown = middle
	p.cursor = pos
	p.hasCursor = true
}

// pollWheel converts vertical wheel movement to a WheelEvent at the cursor.
func (p *Poller) pollWheel(c *Controller, mods KeyModifiers) {
	_, wy := ebiten.Wheel()
	if wy == 0 {
		return
	}
	c.HandleEvent(WheelEvent{Position: p.cursor, Ticks: wy, Modifiers: mods})
}

// pollTouches maps ebiten touch IDs to pointer slots 1-9 and converts
// begin/move/end transitions to events.
func (p *Poller) pollTouches(c *Controller, mods KeyModifiers) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])

	var active [maxPointers]bool
	for _, tid := range p.touchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		pos := Vec2{X: float64(tx), Y: float64(ty)}

		slot, fresh := p.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true

		if fresh {
			c.HandleEvent(PressEvent{Pointer: slot, Position: pos, Modifiers: mods})
		} else if pos != p.touchPos[slot] {
			c.HandleEvent(MotionEvent{Pointer: slot, Position: pos, Delta: pos.Sub(p.touchPos[slot]), Modifiers: mods})
		}
		p.touchPos[slot] = pos
	}

	// Release slots whose touch ID vanished this frame.
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && !active[i] {
			c.HandleEvent(ReleaseEvent{Pointer: i, Position: p.touchPos[i], Modifiers: mods})
			p.touchUsed[i] = false
			p.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9), allocating one
// for unseen IDs. fresh reports a new allocation. Returns slot -1 when all
// slots are taken.
func (p *Poller) touchSlot(tid ebiten.TouchID) (slot int, fresh bool) {
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && p.touchMap[i] == tid {
			return i, false
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = tid
			return i, true
		}
	}
	return -1, false
}
