// Package ecs provides ECS adapters for badgemon.
package ecs

import (
	"github.com/phanxgames/badgemon"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NodeEventType is the Donburi event type for node lifecycle events. Each
// event names the node (ID and Name), says whether it started, ended or was
// killed, and carries the scheduler clock in milliseconds at that moment.
// Events published during one Scheduler.Update arrive in cascade order.
var NodeEventType = events.NewEventType[badgemon.NodeEvent]()

// donburiSink publishes scheduler transitions into a world's event queue.
type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on NodeEventType and delivered to subscribers by ProcessEvents, so
// systems see them on their own tick rather than inside the scheduler.
func NewDonburiSink(world donburi.World) badgemon.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event badgemon.NodeEvent) {
	NodeEventType.Publish(s.world, event)
}

// OnNodeEvent subscribes fn to events of a single lifecycle type, e.g. only
// NodeEnded to react when an effect finishes.
func OnNodeEvent(world donburi.World, typ badgemon.NodeEventType, fn func(donburi.World, badgemon.NodeEvent)) {
	NodeEventType.Subscribe(world, func(w donburi.World, e badgemon.NodeEvent) {
		if e.Type == typ {
			fn(w, e)
		}
	})
}
