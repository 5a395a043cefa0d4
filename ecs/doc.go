// Package ecs provides ECS adapters for seedpaint's generation events.
//
// The primary adapter is [NewDonburiSink], which bridges finished generations
// into a [Donburi] world. Successful renders update [RenderComponent] on the
// sink's entity and are published as [RenderEventType]; failed generations
// are published as [FailureEventType] and leave the component untouched, so
// systems never see a partial image as a render.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	gen, err := seedpaint.NewGenerator(sketch, surface, seedpaint.GeneratorConfig{Events: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
