package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData tracks wall-clock frame time for the scene.
type ClockData struct {
	Last    time.Time
	Delta   float64 // Seconds since the previous frame, capped
	Raw     float64 // Uncapped seconds since the previous frame
	Elapsed float64
}

var Clock = donburi.NewComponentType[ClockData]()
