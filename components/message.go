package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton tracking the toast message on screen
type MessageStateData struct {
	Text      string  // Raw text, may contain {placeholders}
	Remaining float64 // Seconds left on screen (0 = none)
}

var MessageState = donburi.NewComponentType[MessageStateData]()
