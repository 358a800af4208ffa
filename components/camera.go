package components

import (
	"github.com/automoto/starfx/gamemath"
	"github.com/yohamta/donburi"
)

// CanvasData is the root of the UI hierarchy and how it reaches the screen.
// A nil Camera means the canvas is a screen-space overlay.
type CanvasData struct {
	Root   *gamemath.Rect
	Camera *gamemath.Camera
}

var Canvas = donburi.NewComponentType[CanvasData]()
