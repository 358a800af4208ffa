package components

import (
	"github.com/automoto/starfx/gamemath"
	"github.com/yohamta/donburi"
)

// ContainerData is a UI rect that parents pooled stars or other widgets.
type ContainerData struct {
	Rect *gamemath.Rect
}

var Container = donburi.NewComponentType[ContainerData]()
