package config

import (
	"image/color"
	"math"
	"time"

	"github.com/automoto/solar-ride/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the ride uses.
const Default ecs.LayerID = 0

// RideConfig contains path sampling and scroll range configuration
type RideConfig struct {
	SampleCount int    // Densely sampled path length, fixed for the session
	CurveType   string // centripetal, chordal or catmullrom
	Tension     float64
	PathDropY   float64 // Vertical offset of the drawn path below the camera rail
}

// CameraConfig contains camera rig behaviour configuration
type CameraConfig struct {
	BankScale       float64 // Displacement -> bank angle gain
	MaxBank         float64 // Radians, stops snap-rotation at sharp segments
	PositionRate    float64 // Position lerp factor per second
	OrientationRate float64 // Orientation slerp factor per second
	MaxFrameDelta   float64 // Seconds; longer frames are treated as this long

	Landscape gamemath.Lens
	Portrait  gamemath.Lens
}

// ScrollConfig contains viewport input configuration
type ScrollConfig struct {
	Pages        int     // Logical pages the whole ride spans
	PageHeight   float64 // Pixels of wheel/drag travel per page
	WheelStep    float64 // Pixels per wheel notch
	KeyStep      float64 // Pixels per frame while a scroll key is held
	Damping      float64 // Seconds-ish smoothing constant; 0 disables damping
	DragEnabled  bool
	AnalogFactor float64 // Pixels per frame at full stick deflection
}

// CheckpointConfig contains checkpoint label and proximity configuration
type CheckpointConfig struct {
	WelcomeTitle       string
	PlaceholderText    string
	RevealDuration     float32 // Seconds for a label to fade in once bound
	ActivationRadius   float64 // World units around a checkpoint that mark it active
	LabelMaxDepth      float64 // Labels further than this are not drawn
	LabelMinDepth      float64
	TitleColor         color.RGBA
	SubtitleColor      color.RGBA
	ActiveTitleColor   color.RGBA
	LabelBoxColor      color.RGBA
	LabelPadding       float64
	SubtitleWrapLength int
}

// DataConfig contains external data source configuration
type DataConfig struct {
	PeopleURL   string
	BodiesURL   string // Body id is appended
	HTTPTimeout time.Duration
}

// UIConfig contains HUD and path drawing configuration
type UIConfig struct {
	BackgroundColor  color.RGBA
	PathColor        color.RGBA
	PathWidth        float32
	PathStride       int // Draw every Nth sample
	ProgressBarColor color.RGBA
	ProgressBgColor  color.RGBA
	ProgressHeight   float32
	HUDMargin        float64
	HUDTextColor     color.RGBA
	StarCount        int
	StarColor        color.RGBA
	VignetteStrength float64 // 0 disables the edge darkening
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Overlay bool // Show pose/progress overlay
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Ride RideConfig
var Camera CameraConfig
var Scroll ScrollConfig
var Checkpoint CheckpointConfig
var Data DataConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	WhiteFaded   = color.RGBA{R: 255, G: 255, B: 255, A: 178}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Space        = color.RGBA{R: 4, G: 6, B: 18, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	LightGray    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Solar Ride",
	}

	Ride = RideConfig{
		SampleCount: 2000,
		CurveType:   "centripetal",
		Tension:     0.5,
		PathDropY:   -2,
	}

	// Camera Config
	Camera = CameraConfig{
		BankScale:       80,
		MaxBank:         math.Pi / 3,
		PositionRate:    24,
		OrientationRate: 1,
		MaxFrameDelta:   0.25,
		Landscape: gamemath.Lens{
			FOV:    60,
			Near:   0.1,
			Offset: gamemath.NewVec3(-1, 0, 5),
		},
		Portrait: gamemath.Lens{
			FOV:    100,
			Near:   0.1,
			Offset: gamemath.NewVec3(-1, 0, 9),
		},
	}

	Scroll = ScrollConfig{
		Pages:        30,
		PageHeight:   540,
		WheelStep:    60,
		KeyStep:      14,
		Damping:      1,
		DragEnabled:  true,
		AnalogFactor: 20,
	}

	Checkpoint = CheckpointConfig{
		WelcomeTitle:       "Welcome to the ride",
		PlaceholderText:    "Loading the text...",
		RevealDuration:     0.8,
		ActivationRadius:   6,
		LabelMaxDepth:      40,
		LabelMinDepth:      0.5,
		TitleColor:         White,
		SubtitleColor:      LightGray,
		ActiveTitleColor:   BrightYellow,
		LabelBoxColor:      BlackOverlay,
		LabelPadding:       6,
		SubtitleWrapLength: 42,
	}

	Data = DataConfig{
		PeopleURL:   "http://api.open-notify.org/astros.json",
		BodiesURL:   "https://api.le-systeme-solaire.net/rest/bodies/",
		HTTPTimeout: 10 * time.Second,
	}

	UI = UIConfig{
		BackgroundColor:  Space,
		PathColor:        WhiteFaded,
		PathWidth:        2,
		PathStride:       4,
		ProgressBarColor: LightBlue,
		ProgressBgColor:  DarkBlue,
		ProgressHeight:   4,
		HUDMargin:        10,
		HUDTextColor:     White,
		StarCount:        180,
		StarColor:        color.RGBA{R: 220, G: 220, B: 255, A: 200},
		VignetteStrength: 0.8,
	}
}
