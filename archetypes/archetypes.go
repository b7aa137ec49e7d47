package archetypes

import (
	"github.com/automoto/solar-ride/components"
	cfg "github.com/automoto/solar-ride/config"
	"github.com/automoto/solar-ride/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		tags.CameraRig,
		components.Camera,
		components.Object,
	)
	Route = newArchetype(
		components.Route,
	)
	Scroll = newArchetype(
		components.Scroll,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Space = newArchetype(
		components.Space,
	)
	SkyData = newArchetype(
		components.SkyData,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
		components.Reveal,
	)
	Settings = newArchetype(
		components.Settings,
		components.Debug,
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
