package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// ViewerSettingsConfig lists the viewer-facing options that persist between runs
type ViewerSettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	ScrollSpeeds           []float64 // Multipliers applied to wheel/key travel
	DefaultScrollSpeed     int
}

// ViewerSettings is the global viewer settings configuration
var ViewerSettings ViewerSettingsConfig

func init() {
	ViewerSettings = ViewerSettingsConfig{
		Resolutions: []Resolution{
			{Width: 960, Height: 540, Label: "960 x 540"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
			{Width: 720, Height: 1280, Label: "720 x 1280 (portrait)"},
		},
		DefaultResolutionIndex: 0,
		ScrollSpeeds:           []float64{0.5, 1.0, 1.5, 2.0},
		DefaultScrollSpeed:     1,
	}
}
