package systems

import (
	"encoding/json"

	"github.com/automoto/solar-ride/components"
	cfg "github.com/automoto/solar-ride/config"
	"github.com/automoto/solar-ride/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedSettings is the viewer preferences stored on disk. Ride progress is
// never saved.
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	ScrollSpeed     int  `json:"scrollSpeed"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence opens the per-user settings storage.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// DefaultSettings are used when nothing was saved yet.
func DefaultSettings() *SavedSettings {
	return &SavedSettings{
		ResolutionIndex: cfg.ViewerSettings.DefaultResolutionIndex,
		ScrollSpeed:     cfg.ViewerSettings.DefaultScrollSpeed,
	}
}

// LoadSettings reads saved settings, falling back to defaults when storage is
// unavailable, empty or unreadable.
func LoadSettings() *SavedSettings {
	if gdataManager == nil {
		return DefaultSettings()
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		logger.L().Warn("could not load settings", zap.Error(err))
		return DefaultSettings()
	}
	if len(data) == 0 {
		return DefaultSettings()
	}

	saved := DefaultSettings()
	if err := json.Unmarshal(data, saved); err != nil {
		logger.L().Warn("could not parse saved settings", zap.Error(err))
		return DefaultSettings()
	}
	saved.sanitize()
	return saved
}

// SaveSettings writes settings to disk. Without storage it does nothing.
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(settingsKey, data)
}

func (s *SavedSettings) sanitize() {
	if s.ResolutionIndex < 0 || s.ResolutionIndex >= len(cfg.ViewerSettings.Resolutions) {
		s.ResolutionIndex = cfg.ViewerSettings.DefaultResolutionIndex
	}
	if s.ScrollSpeed < 0 || s.ScrollSpeed >= len(cfg.ViewerSettings.ScrollSpeeds) {
		s.ScrollSpeed = cfg.ViewerSettings.DefaultScrollSpeed
	}
}

// Component converts saved settings into the scene's settings component.
func (s *SavedSettings) Component() components.SettingsData {
	return components.SettingsData{
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		ScrollSpeed:     s.ScrollSpeed,
	}
}

// ApplySavedSettingsGlobal applies window settings before the first scene is
// created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.ViewerSettings.Resolutions) {
		res := cfg.ViewerSettings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// ScrollSpeedFactor returns the multiplier for a scroll speed setting.
func ScrollSpeedFactor(index int) float64 {
	speeds := cfg.ViewerSettings.ScrollSpeeds
	if index < 0 || index >= len(speeds) {
		return 1
	}
	return speeds[index]
}
