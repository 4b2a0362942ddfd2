// Package ecs provides ECS adapters for macroui's application events.
//
// The primary adapter is [NewDonburiSink], which bridges widget events
// (button clicked, input changed, focus changed) into a [Donburi] world as
// typed events. Subscribe to [AppEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	tree.SetSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
