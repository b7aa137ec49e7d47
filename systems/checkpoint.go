package systems

import (
	"github.com/automoto/solar-ride/components"
	"github.com/automoto/solar-ride/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProximity marks the checkpoint nearest to the camera rig as active
// when the rig is inside its activation area.
func UpdateProximity(ecs *ecs.ECS) {
	cameraEntry, ok := tags.CameraRig.First(ecs.World)
	if !ok || !cameraEntry.HasComponent(components.Object) {
		return
	}
	rig := components.Object.Get(cameraEntry).Object
	camPos := components.Camera.Get(cameraEntry).Pose.Position

	var nearest *donburi.Entry
	nearestDist := 0.0
	if check := rig.Check(0, 0, tags.ResolvCheckpoint); check != nil {
		for _, obj := range check.ObjectsByTags(tags.ResolvCheckpoint) {
			entry, ok := checkpointEntry(obj)
			if !ok {
				continue
			}
			cp := components.Checkpoint.Get(entry)
			d := camPos.DistanceSquared(cp.Position)
			if nearest == nil || d < nearestDist {
				nearest, nearestDist = entry, d
			}
		}
	}

	tags.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		components.Checkpoint.Get(e).Active = e == nearest
	})
}

func checkpointEntry(obj *resolv.Object) (*donburi.Entry, bool) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Checkpoint) {
		return nil, false
	}
	return entry, true
}

// ActiveCheckpoint returns the checkpoint the camera rig is at, if any.
func ActiveCheckpoint(ecs *ecs.ECS) (*components.CheckpointData, bool) {
	var active *components.CheckpointData
	tags.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		if cp := components.Checkpoint.Get(e); cp.Active {
			active = cp
		}
	})
	return active, active != nil
}

// UpdateReveal advances each label's fade-in tween.
func UpdateReveal(ecs *ecs.ECS) {
	dt := float32(frameDelta(ecs))
	components.Reveal.Each(ecs.World, func(e *donburi.Entry) {
		reveal := components.Reveal.Get(e)
		if reveal.Done || reveal.Tween == nil {
			return
		}
		reveal.Alpha, reveal.Done = reveal.Tween.Update(dt)
	})
}
