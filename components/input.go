package components

import (
	"image"

	cfg "github.com/automoto/starfx/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Cursor in canvas screen space (y up), and whether the left button
	// went down this frame.
	Cursor  dmath.Vec2
	Pixel   image.Point
	Clicked bool

	Primed bool // first poll done
}

var Input = donburi.NewComponentType[InputData]()
