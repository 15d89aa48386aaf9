package archetypes

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		tags.Pong,
		components.Session,
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.Transform,
		components.Size,
	)
	GoalSensor = newArchetype(
		tags.GoalSensor,
		components.GoalSensor,
		components.Object,
		components.Transform,
		components.Size,
	)
	Paddle = newArchetype(
		tags.Paddle,
		components.Paddle,
		components.Object,
		components.Transform,
		components.Velocity,
		components.Size,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
		components.Transform,
		components.Velocity,
		components.Size,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
