package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical demo action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionBurst
	ActionStarOn
	ActionStarTwinkle
	ActionStarOff
	ActionMoreStars
	ActionFewerStars
	ActionToggleCamera
	ActionToggleMute
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Upper bound for the emit count adjusted from the keyboard
	MaxEmitCount int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		MaxEmitCount: 14,
		Bindings: map[ActionID]InputBinding{
			ActionBurst: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionStarOn: {
				Keys: []ebiten.Key{ebiten.Key1},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionStarTwinkle: {
				Keys: []ebiten.Key{ebiten.Key2},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionStarOff: {
				Keys: []ebiten.Key{ebiten.Key3},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionMoreStars: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyEqual},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionFewerStars: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyMinus},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionToggleCamera: {
				Keys: []ebiten.Key{ebiten.KeyC},
				// Select / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionToggleMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
