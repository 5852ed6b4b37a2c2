package gesturecam

// touchPoint is one tracked pointer: its identifier and the last position it
// was registered at.
type touchPoint struct {
	id  int
	pos Vec2
}

// touchRegistry tracks active pointers in insertion order. Pinch math always
// reads the first two entries, so the order pointers were pressed in — not
// their spatial arrangement — decides which two drive a pinch. Re-pressing a
// finger mid-gesture moves it to the back and can change the pinch anchors;
// hosts may rely on this, so it is kept deterministic rather than "fixed".
type touchRegistry struct {
	points []touchPoint
}

// register inserts or overwrites the entry for id. An overwrite keeps the
// entry's insertion position.
func (tr *touchRegistry) register(id int, pos Vec2) {
	for i := range tr.points {
		if tr.points[i].id == id {
			tr.points[i].pos = pos
			return
		}
	}
	tr.points = append(tr.points, touchPoint{id: id, pos: pos})
}

// unregister removes the entry for id, if present.
func (tr *touchRegistry) unregister(id int) {
	for i := range tr.points {
		if tr.points[i].id == id {
			tr.points = append(tr.points[:i], tr.points[i+1:]...)
			return
		}
	}
}

// get returns the last registered position for id.
func (tr *touchRegistry) get(id int) (Vec2, bool) {
	for i := range tr.points {
		if tr.points[i].id == id {
			return tr.points[i].pos, true
		}
	}
	return Vec2{}, false
}

// count returns the number of tracked pointers.
func (tr *touchRegistry) count() int {
	return len(tr.points)
}

// firstTwo returns the two oldest tracked pointers. Only valid when
// count() >= 2.
func (tr *touchRegistry) firstTwo() (a, b touchPoint) {
	return tr.points[0], tr.points[1]
}

// clear drops all tracked pointers.
func (tr *touchRegistry) clear() {
	tr.points = tr.points[:0]
}
