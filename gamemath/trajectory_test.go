package gamemath

import (
	"math"
	"math/rand"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

const eps = 1e-9

func defaultParams() TrajectoryParams {
	return TrajectoryParams{
		XRange:          Range{Min: -260, Max: 260},
		UpRange:         Range{Min: 380, Max: 620},
		FallRange:       Range{Min: 720, Max: 980},
		SpinRange:       Range{Min: -720, Max: 720},
		StartScaleRange: Range{Min: 0.45, Max: 0.9},
		TotalDuration:   1.25,
		ApexRatio:       0.42,
	}
}

// fixedRand returns the same value for every draw.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestSplitDuration(t *testing.T) {
	tests := []struct {
		name        string
		total       float64
		ratio       float64
		wantAscend  float64
		wantDescend float64
	}{
		{name: "default ratio", total: 1.25, ratio: 0.42, wantAscend: 0.525, wantDescend: 0.725},
		{name: "ratio below zero clamps", total: 2, ratio: -0.5, wantAscend: 0, wantDescend: 2},
		{name: "ratio above one clamps", total: 2, ratio: 1.7, wantAscend: 2, wantDescend: 0},
		{name: "half", total: 1, ratio: 0.5, wantAscend: 0.5, wantDescend: 0.5},
		{name: "nan ratio clamps to zero", total: 2, ratio: math.NaN(), wantAscend: 0, wantDescend: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up, down := SplitDuration(tt.total, tt.ratio)
			if math.Abs(up-tt.wantAscend) > eps || math.Abs(down-tt.wantDescend) > eps {
				t.Errorf("SplitDuration(%v, %v) = (%v, %v), want (%v, %v)",
					tt.total, tt.ratio, up, down, tt.wantAscend, tt.wantDescend)
			}
		})
	}
}

func TestPlanTrajectoryInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := defaultParams()
	origin := dmath.Vec2{X: 12, Y: -30}

	for i := 0; i < 500; i++ {
		plan := PlanTrajectory(origin, p, rng)

		if math.Abs(plan.AscendDuration+plan.DescendDuration-p.TotalDuration) > eps {
			t.Fatalf("plan %d: durations %v + %v != %v", i, plan.AscendDuration, plan.DescendDuration, p.TotalDuration)
		}
		apexDx := plan.Apex.X - origin.X
		landDx := plan.Landing.X - origin.X
		if math.Abs(apexDx-landDx/2) > eps {
			t.Fatalf("plan %d: apex drift %v is not half of landing drift %v", i, apexDx, landDx)
		}
		if !p.XRange.Contains(landDx) {
			t.Fatalf("plan %d: drift %v outside %v", i, landDx, p.XRange)
		}
		if !p.UpRange.Contains(plan.Apex.Y - origin.Y) {
			t.Fatalf("plan %d: apex height %v outside %v", i, plan.Apex.Y-origin.Y, p.UpRange)
		}
		if !p.FallRange.Contains(origin.Y - plan.Landing.Y) {
			t.Fatalf("plan %d: fall %v outside %v", i, origin.Y-plan.Landing.Y, p.FallRange)
		}
		if !p.SpinRange.Contains(plan.SpinDelta) {
			t.Fatalf("plan %d: spin %v outside %v", i, plan.SpinDelta, p.SpinRange)
		}
		if !p.StartScaleRange.Contains(plan.StartScale) {
			t.Fatalf("plan %d: scale %v outside %v", i, plan.StartScale, p.StartScaleRange)
		}
		if plan.Origin != origin {
			t.Fatalf("plan %d: origin %v, want %v", i, plan.Origin, origin)
		}
	}
}

func TestPlanTrajectoryReproducible(t *testing.T) {
	p := defaultParams()
	a := PlanTrajectory(dmath.Vec2{}, p, rand.New(rand.NewSource(7)))
	b := PlanTrajectory(dmath.Vec2{}, p, rand.New(rand.NewSource(7)))
	if a != b {
		t.Errorf("same seed produced different plans: %+v vs %+v", a, b)
	}
}

func TestPlanTrajectoryMidpointDraw(t *testing.T) {
	plan := PlanTrajectory(dmath.Vec2{X: 100, Y: 100}, defaultParams(), fixedRand(0.5))

	want := Trajectory{
		Origin:          dmath.Vec2{X: 100, Y: 100},
		Apex:            dmath.Vec2{X: 100, Y: 600},
		Landing:         dmath.Vec2{X: 100, Y: -750},
		AscendDuration:  0.525,
		DescendDuration: 0.725,
		SpinDelta:       0,
		StartScale:      0.675,
	}
	if math.Abs(plan.Apex.Y-want.Apex.Y) > eps || math.Abs(plan.Landing.Y-want.Landing.Y) > eps {
		t.Errorf("apex/landing = %v/%v, want %v/%v", plan.Apex, plan.Landing, want.Apex, want.Landing)
	}
	if math.Abs(plan.StartScale-want.StartScale) > eps {
		t.Errorf("StartScale = %v, want %v", plan.StartScale, want.StartScale)
	}
	if math.Abs(plan.AscendDuration-want.AscendDuration) > eps {
		t.Errorf("AscendDuration = %v, want %v", plan.AscendDuration, want.AscendDuration)
	}
}

func TestRangeSampleReversed(t *testing.T) {
	r := Range{Min: 10, Max: -10}
	if got := r.Sample(fixedRand(0)); got != 10 {
		t.Errorf("Sample(0) = %v, want 10", got)
	}
	if got := r.Sample(fixedRand(1)); got != -10 {
		t.Errorf("Sample(1) = %v, want -10", got)
	}
}
