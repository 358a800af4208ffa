package components

import (
	"github.com/automoto/starfx/gamemath"
	"github.com/automoto/starfx/tween"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// StarData is one pooled burst element. Position, Rotation and Scale are in
// the parent container's local space.
type StarData struct {
	Slot     int            // index in the pool, fixed at creation
	Parent   *gamemath.Rect // container the star is drawn in
	Active   bool
	Position dmath.Vec2
	Rest     dmath.Vec2 // baseline position while free
	Rotation float64    // degrees, accumulates past one turn
	Scale    float64
	Opacity  float64
	Handle   *tween.Handle // in-flight animation, nil while free
}

// Reset restores the free baseline.
func (s *StarData) Reset() {
	s.Active = false
	s.Position = s.Rest
	s.Rotation = 0
	s.Scale = 1
	s.Opacity = 1
	s.Handle = nil
}

var Star = donburi.NewComponentType[StarData]()
