package factory

import (
	"github.com/automoto/solar-ride/archetypes"
	"github.com/automoto/solar-ride/components"
	"github.com/automoto/solar-ride/gamemath"
	"github.com/automoto/solar-ride/navigation"
	"github.com/automoto/solar-ride/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const cameraFootprint = 1.0

// CreateCamera spawns the camera rig. Its pose is snapped onto the path on the
// first camera update.
func CreateCamera(ecs *ecs.ECS, lens gamemath.Lens, solver navigation.Solver) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Pose:   navigation.Pose{Orientation: gamemath.IdentityQuat()},
		Solver: solver,
		Lens:   lens,
	})

	obj := resolv.NewObject(0, 0, cameraFootprint, cameraFootprint, tags.ResolvCamera)
	obj.Data = camera
	components.Object.SetValue(camera, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return camera
}
