package ecs

import (
	"testing"

	"github.com/phanxgames/gesturecam"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitGesture(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []gesturecam.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e gesturecam.GestureEvent) {
		received = append(received, e)
	})

	sink.EmitGesture(gesturecam.GestureEvent{
		Kind:     gesturecam.GestureFlingBegan,
		Position: gesturecam.Vec2{X: 100, Y: 200},
		Velocity: gesturecam.Vec2{X: -3000},
	})
	sink.EmitGesture(gesturecam.GestureEvent{
		Kind: gesturecam.GestureFlingEnded,
		Zoom: gesturecam.Vec2{X: 2, Y: 2},
	})

	// Events are queued — process them.
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Kind != gesturecam.GestureFlingBegan || e0.Velocity.X != -3000 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Position.X != 100 || e0.Position.Y != 200 {
		t.Errorf("event 0 position: %+v", e0.Position)
	}

	e1 := received[1]
	if e1.Kind != gesturecam.GestureFlingEnded || e1.Zoom.X != 2 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestControllerWithDonburiSink(t *testing.T) {
	world := donburi.NewWorld()

	cam := gesturecam.NewCamera(gesturecam.Vec2{X: 800, Y: 600})
	ctrl := gesturecam.NewController(cam,
		gesturecam.Rect{X: 0, Y: 0, Width: 4000, Height: 4000},
		gesturecam.DefaultConfig())
	ctrl.SetEventSink(NewDonburiSink(world))

	var kinds []gesturecam.GestureKind
	GestureEventType.Subscribe(world, func(w donburi.World, e gesturecam.GestureEvent) {
		kinds = append(kinds, e.Kind)
	})

	ctrl.HandleEvent(gesturecam.PressEvent{Pointer: 1, Position: gesturecam.Vec2{X: 100, Y: 100}})
	ctrl.HandleEvent(gesturecam.ReleaseEvent{Pointer: 1, Position: gesturecam.Vec2{X: 100, Y: 100}})
	GestureEventType.ProcessEvents(world)

	if len(kinds) != 2 {
		t.Fatalf("expected 2 events, got %d (%v)", len(kinds), kinds)
	}
	if kinds[0] != gesturecam.GesturePanBegan || kinds[1] != gesturecam.GestureEnded {
		t.Errorf("kinds = %v, want [PanBegan Ended]", kinds)
	}
}
