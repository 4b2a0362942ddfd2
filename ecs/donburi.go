// Package ecs provides ECS adapters for macroui.
package ecs

import (
	"github.com/phanxgames/macroui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AppEventType is the Donburi event type for macroui application events.
// Subscribe to this in your ECS systems to receive button clicks, input
// edits and focus changes.
var AppEventType = events.NewEventType[macroui.AppEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// App events are published to AppEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) macroui.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event macroui.AppEvent) {
	AppEventType.Publish(s.world, event)
}
