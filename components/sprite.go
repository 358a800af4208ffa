package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image  *ebiten.Image
	PivotX float64
	PivotY float64
	R, G   float32
	B      float32
}

var Sprite = donburi.NewComponentType[SpriteData]()
