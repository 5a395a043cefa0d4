package ecs

import (
	"github.com/phanxgames/seedpaint"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Render is a successful generation together with the settings that produced
// it, which is everything needed to reproduce the image.
type Render struct {
	seedpaint.Result
	Settings []seedpaint.Param
	// Count is the number of successful generations seen so far.
	Count int
}

// Failure is a generation that did not produce a valid image.
type Failure struct {
	Sketch   string
	Settings []seedpaint.Param
	Err      error
}

// RenderEventType is the Donburi event type for successful generations.
var RenderEventType = events.NewEventType[Render]()

// FailureEventType is the Donburi event type for failed generations. Failed
// generations never reach RenderEventType or RenderComponent.
var FailureEventType = events.NewEventType[Failure]()

// RenderComponent holds the latest successful Render on the sink's entity.
var RenderComponent = donburi.NewComponentType[Render]()

// DonburiSink is a seedpaint.EventSink backed by a Donburi world.
type DonburiSink struct {
	world  donburi.World
	entity donburi.Entity
	count  int
}

// NewDonburiSink creates a sink and the entity that carries RenderComponent.
// Successful generations update the component immediately and are published
// to RenderEventType; failures go to FailureEventType. Events are delivered
// by ProcessEvents.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world, entity: world.Create(RenderComponent)}
}

// Entity returns the entity that carries RenderComponent.
func (s *DonburiSink) Entity() donburi.Entity {
	return s.entity
}

// Latest returns the most recent successful render, if any.
func (s *DonburiSink) Latest() (Render, bool) {
	r := RenderComponent.Get(s.world.Entry(s.entity))
	return *r, r.Count > 0
}

func (s *DonburiSink) EmitGeneration(event seedpaint.GenerationEvent) {
	if event.Err != nil {
		FailureEventType.Publish(s.world, Failure{
			Sketch:   event.Sketch,
			Settings: event.Settings,
			Err:      event.Err,
		})
		return
	}
	s.count++
	r := Render{Result: event.Result, Settings: event.Settings, Count: s.count}
	RenderComponent.SetValue(s.world.Entry(s.entity), r)
	RenderEventType.Publish(s.world, r)
}
