package starfx

import (
	cfg "github.com/automoto/starfx/config"
)

// StarState is the discrete visual state of the persistent star icon.
type StarState int

const (
	StarOff     StarState = -1
	StarTwinkle StarState = 0
	StarOn      StarState = 1
)

func (s StarState) String() string {
	switch s {
	case StarOff:
		return "Off"
	case StarTwinkle:
		return "Twinkle"
	case StarOn:
		return "On"
	}
	return "Unknown"
}

// StarStateFromInt maps a signed button value: negative is Off, zero is Twinkle, positive is On.
func StarStateFromInt(n int) StarState {
	switch {
	case n < 0:
		return StarOff
	case n == 0:
		return StarTwinkle
	default:
		return StarOn
	}
}

// Animator is a named-trigger state machine. Setting a trigger is fire and
// forget; if several are set before the animator runs, the last one wins.
type Animator interface {
	SetTrigger(name string)
}

// StateController forwards star state requests to an Animator.
type StateController struct {
	Animator Animator
	Triggers cfg.StarStateConfig
}

// NewStateController uses the configured trigger names.
func NewStateController(a Animator) *StateController {
	return &StateController{Animator: a, Triggers: cfg.StarState}
}

// SetStarState does nothing while no animator is attached.
func (c *StateController) SetStarState(s StarState) {
	if c == nil || c.Animator == nil {
		return
	}
	c.Animator.SetTrigger(c.trigger(s))
}

// OnClickStarStateButton is bound to buttons carrying -1, 0 or 1.
func (c *StateController) OnClickStarStateButton(n int) {
	c.SetStarState(StarStateFromInt(n))
}

func (c *StateController) trigger(s StarState) string {
	switch s {
	case StarOff:
		return c.Triggers.TriggerOff
	case StarTwinkle:
		return c.Triggers.TriggerTwinkle
	default:
		return c.Triggers.TriggerOn
	}
}
