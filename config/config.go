package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/starfx/gamemath"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by the demo scene.
const Default ecs.LayerID = 0

// StarFXConfig contains burst emission settings
type StarFXConfig struct {
	// Emission
	EmitCount int // stars launched per burst
	PoolSize  int // pre-allocated stars, shared by all containers

	// Trajectory ranges (canvas units, y up)
	XRange    gamemath.Range // horizontal drift at landing
	UpRange   gamemath.Range // apex height above the anchor
	FallRange gamemath.Range // landing depth below the anchor

	// Timing & motion
	TotalDuration   float64        // seconds
	ApexRatio       float64        // share of TotalDuration spent rising
	StartScaleRange gamemath.Range // uniform scale at launch
	SpinRange       gamemath.Range // degrees, may exceed one turn

	// Easing, nil falls back to the defaults noted per field
	EaseUp   ease.TweenFunc // OutQuad
	EaseDown ease.TweenFunc // InQuad
	EaseSpin ease.TweenFunc // OutQuad
	EaseFade ease.TweenFunc // OutQuad
}

var (
	ErrNegativeEmitCount = errors.New("emit count must not be negative")
	ErrBadDuration       = errors.New("total duration must be a positive finite number")
	ErrBadApexRatio      = errors.New("apex ratio must be a finite number")
)

// Validate checks the values that would break the emitter rather than just look odd.
func (c StarFXConfig) Validate() error {
	if c.EmitCount < 0 {
		return fmt.Errorf("starfx config: %w (got %d)", ErrNegativeEmitCount, c.EmitCount)
	}
	if c.TotalDuration <= 0 || math.IsNaN(c.TotalDuration) || math.IsInf(c.TotalDuration, 0) {
		return fmt.Errorf("starfx config: %w (got %v)", ErrBadDuration, c.TotalDuration)
	}
	if math.IsNaN(c.ApexRatio) || math.IsInf(c.ApexRatio, 0) {
		return fmt.Errorf("starfx config: %w (got %v)", ErrBadApexRatio, c.ApexRatio)
	}
	return nil
}

// Trajectory returns the ranges the trajectory generator samples from.
func (c StarFXConfig) Trajectory() gamemath.TrajectoryParams {
	return gamemath.TrajectoryParams{
		XRange:          c.XRange,
		UpRange:         c.UpRange,
		FallRange:       c.FallRange,
		SpinRange:       c.SpinRange,
		StartScaleRange: c.StartScaleRange,
		TotalDuration:   c.TotalDuration,
		ApexRatio:       c.ApexRatio,
	}
}

// StarStateConfig names the animator triggers of the persistent star icon
type StarStateConfig struct {
	TriggerOn      string
	TriggerOff     string
	TriggerTwinkle string

	OffOpacity      float64 // icon opacity while off
	TwinkleScale    float64 // peak scale of one twinkle pulse
	TwinkleDuration float64 // seconds for one pulse up and back
}

// CameraConfig describes the projection used when the canvas renders through a camera
type CameraConfig struct {
	Zoom float64
}

// UIConfig contains demo UI values
type UIConfig struct {
	BackgroundColor  color.RGBA
	ContainerColor   color.RGBA
	StarColor        color.RGBA
	IconColor        color.RGBA
	HUDTextColor     color.RGBA
	StarSpriteSize   int     // pixels, procedural star texture
	StarInnerRatio   float64 // inner/outer radius of the star shape
	IconSize         float64 // persistent icon size in canvas units
	HUDMargin        int
	ButtonMinWidth   int
	ButtonMinHeight  int
	LayoutPath       string // Tiled map with the canvas layout
	ShowContainers   bool
	BurstButtonLabel string
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Seed int64 // non-zero makes bursts reproducible
	// ShowDebug draws rect outlines and star markers over the scene
	ShowDebug bool
}

// Global configuration instances
var C *Config
var StarFX StarFXConfig
var StarState StarStateConfig
var Camera CameraConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold      = color.RGBA{R: 255, G: 215, B: 80, A: 255}
	LightGold = color.RGBA{R: 255, G: 240, B: 170, A: 255}
	Navy      = color.RGBA{R: 18, G: 22, B: 44, A: 255}
	Slate     = color.RGBA{R: 40, G: 48, B: 80, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	StarFX = StarFXConfig{
		EmitCount: 7,
		PoolSize:  14,

		XRange:    gamemath.Range{Min: -260, Max: 260},
		UpRange:   gamemath.Range{Min: 380, Max: 620},
		FallRange: gamemath.Range{Min: 720, Max: 980},

		TotalDuration:   1.25,
		ApexRatio:       0.42,
		StartScaleRange: gamemath.Range{Min: 0.45, Max: 0.9},
		SpinRange:       gamemath.Range{Min: -720, Max: 720},
	}

	StarState = StarStateConfig{
		TriggerOn:       "SetOn",
		TriggerOff:      "SetOff",
		TriggerTwinkle:  "SetTwinkle",
		OffOpacity:      0.25,
		TwinkleScale:    1.35,
		TwinkleDuration: 0.4,
	}

	Camera = CameraConfig{
		Zoom: 0.8,
	}

	UI = UIConfig{
		BackgroundColor:  Navy,
		ContainerColor:   Slate,
		StarColor:        Gold,
		IconColor:        LightGold,
		HUDTextColor:     White,
		StarSpriteSize:   64,
		StarInnerRatio:   0.45,
		IconSize:         96,
		HUDMargin:        12,
		ButtonMinWidth:   160,
		ButtonMinHeight:  40,
		LayoutPath:       "layouts/starfx.tmx",
		ShowContainers:   true,
		BurstButtonLabel: "Burst!",
	}
}
