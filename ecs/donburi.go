// Package ecs provides ECS adapters for gesturecam.
package ecs

import (
	"github.com/phanxgames/gesturecam"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for gesturecam lifecycle
// events. Subscribe to this in your ECS systems to react to pan, pinch,
// fling, and zoom-pin transitions.
var GestureEventType = events.NewEventType[gesturecam.GestureEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Gesture
// events are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) gesturecam.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitGesture(event gesturecam.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
