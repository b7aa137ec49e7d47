package components

import (
	"github.com/automoto/solar-ride/gamemath"
	"github.com/automoto/solar-ride/navigation"
	"github.com/yohamta/donburi"
)

// CameraData is the camera rig. Pose is written only by UpdateCamera.
type CameraData struct {
	Pose   navigation.Pose
	Solver navigation.Solver
	Lens   gamemath.Lens
	Placed bool // Pose has been snapped onto the path
}

var Camera = donburi.NewComponentType[CameraData]()
