package factory

import (
	"github.com/automoto/solar-ride/archetypes"
	"github.com/automoto/solar-ride/checkpoints"
	"github.com/automoto/solar-ride/components"
	"github.com/automoto/solar-ride/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint spawns a bound checkpoint with a square activation area of
// the given radius around it and a fade-in reveal.
func CreateCheckpoint(ecs *ecs.ECS, cp checkpoints.Checkpoint, radius float64, reveal float32) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{Checkpoint: cp})

	size := radius * 2
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvCheckpoint)
	obj.Data = checkpoint
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		obj.X, obj.Y = space.ToSpace(cp.Position.X-radius, cp.Position.Z-radius)
		space.Add(obj)
		obj.Update()
	}
	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})

	components.Reveal.SetValue(checkpoint, components.RevealData{
		Tween: gween.New(0, 1, reveal, ease.OutCubic),
	})
	return checkpoint
}
