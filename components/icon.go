package components

import (
	"github.com/automoto/starfx/gamemath"
	"github.com/automoto/starfx/tween"
	"github.com/yohamta/donburi"
)

// IconStateID is the visible state of the persistent star icon
type IconStateID int

const (
	IconOn IconStateID = iota
	IconOff
	IconTwinkle
)

func (s IconStateID) String() string {
	switch s {
	case IconOn:
		return "On"
	case IconOff:
		return "Off"
	case IconTwinkle:
		return "Twinkle"
	}
	return "Unknown"
}

// IconAnimatorData is a trigger-driven state machine for the persistent icon.
// A trigger set during a frame is consumed on the next update; the last one wins.
type IconAnimatorData struct {
	Rect     *gamemath.Rect
	State    IconStateID
	Pending  string
	Opacity  float64
	Scale    float64
	Rotation float64
	Pulse    *tween.Handle
}

var IconAnimator = donburi.NewComponentType[IconAnimatorData]()
