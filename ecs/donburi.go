package ecs

import (
	"github.com/phanxgames/walker"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AnimationEventType is the Donburi event type for walker animation events.
var AnimationEventType = events.NewEventType[walker.AnimationEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Events are queued on AnimationEventType until ProcessEvents is called.
func NewDonburiStore(world donburi.World) walker.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitAnimation(e walker.AnimationEvent) {
	AnimationEventType.Publish(s.world, e)
}

// FrameCounter is a component that counts walk-cycle advances per direction.
type FrameCounter struct {
	Total       int
	ByDirection [4]int
	Last        walker.AnimationEvent
}

// FrameCounterComponent is the Donburi component type for FrameCounter.
var FrameCounterComponent = donburi.NewComponentType[FrameCounter]()

// TrackFrames creates an entity holding a FrameCounter and subscribes it to
// AnimationEventType. The returned entity can be read back with
// FrameCounterComponent.Get after each ProcessEvents.
func TrackFrames(world donburi.World) donburi.Entity {
	entity := world.Create(FrameCounterComponent)
	AnimationEventType.Subscribe(world, func(w donburi.World, e walker.AnimationEvent) {
		entry := w.Entry(entity)
		if !entry.Valid() {
			return
		}
		c := FrameCounterComponent.Get(entry)
		c.Total++
		if e.Direction.Valid() {
			c.ByDirection[e.Direction]++
		}
		c.Last = e
	})
	return entity
}
