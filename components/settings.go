package components

import "github.com/yohamta/donburi"

// SettingsData is the viewer's persisted preferences for this run.
type SettingsData struct {
	Fullscreen      bool
	ResolutionIndex int
	ScrollSpeed     int // Index into config.ViewerSettings.ScrollSpeeds
	Dirty           bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// DebugData toggles the debug overlay.
type DebugData struct {
	Enabled bool
}

var Debug = donburi.NewComponentType[DebugData]()
