package tags

import "github.com/yohamta/donburi"

var (
	CameraRig  = donburi.NewTag().SetName("CameraRig")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
)

// Resolv tags for proximity checks
const (
	ResolvCamera     = "camera"
	ResolvCheckpoint = "checkpoint"
)
