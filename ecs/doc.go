// Package ecs provides ECS adapters for badgemon's timeline events.
//
// The primary adapter is [NewDonburiSink], which bridges node lifecycle
// events (started, ended, killed) into a [Donburi] world as typed events.
// Subscribe to [NodeEventType] in your ECS systems to react to animations
// finishing without holding on to the nodes themselves.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scheduler.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
