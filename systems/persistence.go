package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/starfx/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the demo settings stored on disk
type SavedSettings struct {
	EmitCount int     `json:"emitCount"`
	UseCamera bool    `json:"useCamera"`
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
	IconState int     `json:"iconState"` // -1 off, 0 twinkle, 1 on
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "starfx",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// DefaultSettings mirrors the compiled-in configuration.
func DefaultSettings() SavedSettings {
	return SavedSettings{
		EmitCount: cfg.StarFX.EmitCount,
		SFXVolume: cfg.Audio.DefaultSFXVol,
		IconState: 1,
	}
}

// LoadSettings loads settings from disk. A nil result means nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return DecodeSettings(data)
}

// DecodeSettings parses saved settings, starting from the defaults so fields
// missing from older saves keep their default value.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	settings.EmitCount = ClampEmitCount(settings.EmitCount)
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ClampEmitCount keeps a user-chosen emit count within [0, Input.MaxEmitCount].
func ClampEmitCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > cfg.Input.MaxEmitCount {
		return cfg.Input.MaxEmitCount
	}
	return n
}

// ApplySavedSettings overlays saved values on a burst configuration.
func ApplySavedSettings(base cfg.StarFXConfig, saved *SavedSettings) cfg.StarFXConfig {
	if saved == nil {
		return base
	}
	base.EmitCount = ClampEmitCount(saved.EmitCount)
	return base
}

// ApplySavedSettingsGlobal applies audio settings before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	globalSFXVolume = saved.SFXVolume
	globalMuted = saved.Muted
}
