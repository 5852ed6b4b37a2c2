package gesturecam

import "testing"

func TestRegistryRegisterAndCount(t *testing.T) {
	var tr touchRegistry
	if tr.count() != 0 {
		t.Fatalf("empty count = %d", tr.count())
	}

	tr.register(3, Vec2{X: 1, Y: 2})
	tr.register(7, Vec2{X: 3, Y: 4})
	if tr.count() != 2 {
		t.Errorf("count = %d, want 2", tr.count())
	}

	pos, ok := tr.get(3)
	if !ok || pos != (Vec2{X: 1, Y: 2}) {
		t.Errorf("get(3) = %v, %v", pos, ok)
	}
	if _, ok := tr.get(99); ok {
		t.Error("get(99) found an untracked pointer")
	}
}

func TestRegistryOverwriteKeepsOrder(t *testing.T) {
	var tr touchRegistry
	tr.register(1, Vec2{X: 10, Y: 0})
	tr.register(2, Vec2{X: 20, Y: 0})
	tr.register(1, Vec2{X: 15, Y: 0}) // overwrite, not re-append

	if tr.count() != 2 {
		t.Fatalf("count = %d, want 2", tr.count())
	}
	a, b := tr.firstTwo()
	if a.id != 1 || b.id != 2 {
		t.Errorf("firstTwo ids = %d, %d, want 1, 2", a.id, b.id)
	}
	if a.pos.X != 15 {
		t.Errorf("overwritten position = %v, want X=15", a.pos)
	}
}

func TestRegistryUnregisterShiftsOrder(t *testing.T) {
	var tr touchRegistry
	tr.register(1, Vec2{X: 10, Y: 0})
	tr.register(2, Vec2{X: 20, Y: 0})
	tr.register(3, Vec2{X: 30, Y: 0})

	tr.unregister(1)
	if tr.count() != 2 {
		t.Fatalf("count = %d, want 2", tr.count())
	}
	// The remaining oldest two drive the pinch, whichever fingers they are.
	a, b := tr.firstTwo()
	if a.id != 2 || b.id != 3 {
		t.Errorf("firstTwo ids = %d, %d, want 2, 3", a.id, b.id)
	}

	// Re-pressing finger 1 appends at the back: it no longer anchors.
	tr.register(1, Vec2{X: 40, Y: 0})
	a, b = tr.firstTwo()
	if a.id != 2 || b.id != 3 {
		t.Errorf("after re-press, firstTwo ids = %d, %d, want 2, 3", a.id, b.id)
	}

	tr.unregister(42) // untracked id is a no-op
	if tr.count() != 3 {
		t.Errorf("count = %d, want 3", tr.count())
	}
}

func TestRegistryClear(t *testing.T) {
	var tr touchRegistry
	tr.register(1, Vec2{})
	tr.register(2, Vec2{})
	tr.clear()
	if tr.count() != 0 {
		t.Errorf("count after clear = %d", tr.count())
	}
}
