// Package ecs provides ECS adapters for walker's animation events.
//
// The primary adapter is [NewDonburiStore], which publishes every walk-cycle
// frame change into a [Donburi] world as a typed event. Subscribe to
// [AnimationEventType] in your ECS systems to receive them.
//
// Usage:
//
//	world := donburi.NewWorld()
//	scene.SetEventStore(ecs.NewDonburiStore(world))
//	ecs.AnimationEventType.Subscribe(world, onFrame)
//	// once per tick:
//	ecs.AnimationEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
