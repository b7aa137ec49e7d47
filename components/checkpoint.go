package components

import (
	"github.com/automoto/solar-ride/checkpoints"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CheckpointData is one bound checkpoint marker.
type CheckpointData struct {
	checkpoints.Checkpoint
	Active bool // Camera rig is within the activation radius
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()

// RevealData fades a label in after it is spawned.
type RevealData struct {
	Tween *gween.Tween
	Alpha float32
	Done  bool
}

var Reveal = donburi.NewComponentType[RevealData]()
