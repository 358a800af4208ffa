package systems

import (
	"image"

	"github.com/automoto/starfx/components"
	cfg "github.com/automoto/starfx/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input and updates the InputData singleton.
// Must run BEFORE any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Pointer: mouse, or the first touch that started this frame
	x, y := ebiten.CursorPosition()
	input.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		input.Clicked = true
	}
	input.Pixel = image.Pt(x, y)
	input.Cursor = PixelToScreen(input.Pixel, float64(cfg.C.Height))

	// A key still held from the previous scene is not a new press.
	if !input.Primed {
		input.Previous = input.Current
		input.Clicked = false
		input.Primed = true
	}
}

// PixelToScreen converts an ebiten pixel (y down) into y-up screen space.
func PixelToScreen(p image.Point, height float64) dmath.Vec2 {
	return dmath.Vec2{X: float64(p.X), Y: height - float64(p.Y)}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
