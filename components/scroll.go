package components

import "github.com/yohamta/donburi"

// ScrollData is the normalized ride progress. Target follows raw input,
// Offset is the damped value the camera reads.
type ScrollData struct {
	Target float64 // 0..1
	Offset float64 // 0..1

	Dragging    bool
	DragLastY   int
	SpeedFactor float64 // Viewer scroll speed multiplier
}

var Scroll = donburi.NewComponentType[ScrollData]()
