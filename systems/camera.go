package systems

import (
	"github.com/automoto/solar-ride/components"
	cfg "github.com/automoto/solar-ride/config"
	"github.com/automoto/solar-ride/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera moves the camera rig along the path. The first update snaps it
// onto the sample for the current offset; every later one eases toward it.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := tags.CameraRig.First(ecs.World)
	if !ok {
		return
	}
	routeEntry, ok := components.Route.First(ecs.World)
	if !ok {
		return
	}
	scrollEntry, ok := components.Scroll.First(ecs.World)
	if !ok {
		return
	}

	camera := components.Camera.Get(cameraEntry)
	path := components.Route.Get(routeEntry).Path
	offset := components.Scroll.Get(scrollEntry).Offset

	if !camera.Placed {
		camera.Pose = camera.Solver.Snap(path, offset)
		camera.Placed = true
	} else {
		camera.Pose = camera.Solver.Step(camera.Pose, path, offset, frameDelta(ecs))
	}

	syncCameraObject(ecs, cameraEntry, camera)
}

// syncCameraObject keeps the rig's ground-plane footprint centered under it.
func syncCameraObject(ecs *ecs.ECS, entry *donburi.Entry, camera *components.CameraData) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok || !entry.HasComponent(components.Object) {
		return
	}
	space := components.Space.Get(spaceEntry)
	obj := components.Object.Get(entry).Object
	if obj == nil {
		return
	}

	pos := camera.Pose.Position
	obj.X, obj.Y = space.ToSpace(pos.X-obj.W/2, pos.Z-obj.H/2)
	obj.Update()
}

// SetViewport picks the lens for the window's aspect: a wider, pulled back
// lens when the window is taller than it is wide.
func SetViewport(ecs *ecs.ECS, width, height int) {
	entry, ok := tags.CameraRig.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)
	if height > width {
		camera.Lens = cfg.Camera.Portrait
	} else {
		camera.Lens = cfg.Camera.Landscape
	}
}
