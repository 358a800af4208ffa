package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Rand is the random source used for trajectory sampling. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Range is a closed interval sampled uniformly.
type Range struct {
	Min, Max float64
}

// Sample draws a value in [Min, Max]. Min > Max is allowed and samples the same interval.
func (r Range) Sample(rng Rand) float64 {
	return r.Min + (r.Max-r.Min)*rng.Float64()
}

// Contains reports whether v lies within the range, in either orientation.
func (r Range) Contains(v float64) bool {
	lo, hi := r.Min, r.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// TrajectoryParams are the ranges a trajectory is drawn from.
type TrajectoryParams struct {
	XRange          Range   // horizontal drift at landing
	UpRange         Range   // apex height above origin
	FallRange       Range   // landing depth below origin
	SpinRange       Range   // total rotation, degrees
	StartScaleRange Range   // uniform scale at launch
	TotalDuration   float64 // seconds
	ApexRatio       float64 // share of TotalDuration spent ascending, clamped to [0,1]
}

// Trajectory is the motion plan for one star.
type Trajectory struct {
	Origin          dmath.Vec2
	Apex            dmath.Vec2
	Landing         dmath.Vec2
	AscendDuration  float64
	DescendDuration float64
	SpinDelta       float64
	StartScale      float64
}

// TotalDuration is the length of both legs.
func (t Trajectory) TotalDuration() float64 {
	return t.AscendDuration + t.DescendDuration
}

// Clamp01 clamps v to [0,1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SplitDuration divides total into ascend and descend legs by ratio.
func SplitDuration(total, apexRatio float64) (ascend, descend float64) {
	ascend = Clamp01(apexRatio) * total
	return ascend, total - ascend
}

// PlanTrajectory draws a randomized ascend/descend plan starting at origin.
// The apex takes half of the landing's horizontal drift so both legs line up
// into one continuous arc.
func PlanTrajectory(origin dmath.Vec2, p TrajectoryParams, rng Rand) Trajectory {
	dx := p.XRange.Sample(rng)
	up := p.UpRange.Sample(rng)
	fall := p.FallRange.Sample(rng)
	spin := p.SpinRange.Sample(rng)
	scale := p.StartScaleRange.Sample(rng)

	ascend, descend := SplitDuration(p.TotalDuration, p.ApexRatio)

	return Trajectory{
		Origin:          origin,
		Apex:            dmath.Vec2{X: origin.X + dx*0.5, Y: origin.Y + up},
		Landing:         dmath.Vec2{X: origin.X + dx, Y: origin.Y - fall},
		AscendDuration:  ascend,
		DescendDuration: descend,
		SpinDelta:       spin,
		StartScale:      scale,
	}
}
