// Package tween composes gween tweens into multi-property animations and runs
// them from a per-frame scheduler.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

// Animation is anything the Scheduler can step.
type Animation interface {
	// Update advances by dt seconds and reports the unused part of dt and
	// whether the animation has finished.
	Update(dt float32) (left float32, done bool)
}

// Prop drives one or more values from begin to end with a shared duration and easing.
type Prop struct {
	tweens   []*gween.Tween
	end      []float32
	values   []float32
	duration float32
	elapsed  float32
	apply    func(values []float32)
	done     bool
}

func newProp(begin, end []float32, duration float64, easing ease.TweenFunc, apply func([]float32)) *Prop {
	if easing == nil {
		easing = ease.Linear
	}
	if duration < 0 {
		duration = 0
	}
	p := &Prop{
		tweens:   make([]*gween.Tween, len(begin)),
		end:      end,
		values:   make([]float32, len(begin)),
		duration: float32(duration),
		apply:    apply,
	}
	for i := range begin {
		p.tweens[i] = gween.New(begin[i], end[i], p.duration, easing)
	}
	return p
}

// Float tweens a scalar and hands every intermediate value to apply.
func Float(from, to, duration float64, easing ease.TweenFunc, apply func(float64)) *Prop {
	return newProp(
		[]float32{float32(from)},
		[]float32{float32(to)},
		duration, easing,
		func(v []float32) { apply(float64(v[0])) },
	)
}

// Vec2 tweens both components of a vector with the same easing.
func Vec2(from, to dmath.Vec2, duration float64, easing ease.TweenFunc, apply func(dmath.Vec2)) *Prop {
	return newProp(
		[]float32{float32(from.X), float32(from.Y)},
		[]float32{float32(to.X), float32(to.Y)},
		duration, easing,
		func(v []float32) { apply(dmath.Vec2{X: float64(v[0]), Y: float64(v[1])}) },
	)
}

// Duration is the length of the tween in seconds.
func (p *Prop) Duration() float64 {
	return float64(p.duration)
}

// Update implements Animation. The final frame always applies the exact end values.
func (p *Prop) Update(dt float32) (float32, bool) {
	if p.done {
		return dt, true
	}
	p.elapsed += dt
	finished := p.elapsed >= p.duration
	for i, tw := range p.tweens {
		v, twDone := tw.Update(dt)
		p.values[i] = v
		finished = finished || twDone
	}
	if finished {
		p.done = true
		p.apply(p.end)
		left := p.elapsed - p.duration
		if left < 0 {
			left = 0
		}
		return left, true
	}
	p.apply(p.values)
	return 0, false
}

// Sequence plays animations one after the other, carrying leftover time into the next.
type Sequence struct {
	items []Animation
	index int
}

// NewSequence appends anims in order.
func NewSequence(anims ...Animation) *Sequence {
	return &Sequence{items: anims}
}

// Append adds anims to the end of the sequence.
func (s *Sequence) Append(anims ...Animation) *Sequence {
	s.items = append(s.items, anims...)
	return s
}

// Update implements Animation.
func (s *Sequence) Update(dt float32) (float32, bool) {
	for s.index < len(s.items) {
		left, done := s.items[s.index].Update(dt)
		if !done {
			return 0, false
		}
		s.index++
		dt = left
	}
	return dt, true
}

// Parallel runs animations side by side and finishes with the last of them.
type Parallel struct {
	items []Animation
	done  []bool
}

// NewParallel joins anims.
func NewParallel(anims ...Animation) *Parallel {
	return &Parallel{items: anims, done: make([]bool, len(anims))}
}

// Join adds anims that start at the same time as the rest of the group.
func (p *Parallel) Join(anims ...Animation) *Parallel {
	p.items = append(p.items, anims...)
	p.done = append(p.done, make([]bool, len(anims))...)
	return p
}

// Update implements Animation.
func (p *Parallel) Update(dt float32) (float32, bool) {
	left := dt
	all := true
	for i, a := range p.items {
		if p.done[i] {
			continue
		}
		l, done := a.Update(dt)
		if !done {
			all = false
			continue
		}
		p.done[i] = true
		if l < left {
			left = l
		}
	}
	if !all {
		return 0, false
	}
	return left, true
}
