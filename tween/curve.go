package tween

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// Key is one point of a Curve in normalized time.
type Key struct {
	Time  float32
	Value float32
}

// Curve is a piecewise-linear easing shape over t in [0,1]. Values may
// overshoot [0,1] for anticipation or bounce.
type Curve []Key

// NewCurve sorts keys by time.
func NewCurve(keys ...Key) Curve {
	c := append(Curve(nil), keys...)
	sort.Slice(c, func(i, j int) bool { return c[i].Time < c[j].Time })
	return c
}

// Evaluate samples the curve, holding the first and last values outside their keys.
func (c Curve) Evaluate(t float32) float32 {
	switch {
	case len(c) == 0:
		return t
	case t <= c[0].Time:
		return c[0].Value
	case t >= c[len(c)-1].Time:
		return c[len(c)-1].Value
	}
	i := sort.Search(len(c), func(i int) bool { return c[i].Time >= t })
	a, b := c[i-1], c[i]
	span := b.Time - a.Time
	if span <= 0 {
		return b.Value
	}
	return a.Value + (b.Value-a.Value)*(t-a.Time)/span
}

// Ease adapts the curve to gween's easing signature.
func (c Curve) Ease() ease.TweenFunc {
	return func(t, b, change, d float32) float32 {
		if d <= 0 {
			return b + change
		}
		return b + change*c.Evaluate(t/d)
	}
}
