package tween

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

const frame = 1.0 / 60.0

func TestFloatReachesEndExactly(t *testing.T) {
	var got float64
	p := Float(0, 10, 0.5, ease.OutQuad, func(v float64) { got = v })

	steps := 0
	for {
		steps++
		if _, done := p.Update(frame); done {
			break
		}
		if steps > 1000 {
			t.Fatal("tween never finished")
		}
	}
	if got != 10 {
		t.Errorf("final value = %v, want 10", got)
	}
	if steps < 29 || steps > 31 {
		t.Errorf("finished after %d frames, want about 30", steps)
	}
}

func TestZeroDurationAppliesEnd(t *testing.T) {
	var got float64
	p := Float(3, 7, 0, nil, func(v float64) { got = v })
	left, done := p.Update(0.25)
	if !done || got != 7 {
		t.Errorf("Update = (%v, %v), value %v; want done with value 7", left, done, got)
	}
	if math.Abs(float64(left)-0.25) > 1e-6 {
		t.Errorf("left = %v, want 0.25", left)
	}
}

func TestSequenceCarriesLeftover(t *testing.T) {
	var pos dmath.Vec2
	up := Vec2(dmath.Vec2{}, dmath.Vec2{X: 5, Y: 10}, 0.3, ease.Linear, func(v dmath.Vec2) { pos = v })
	down := Vec2(dmath.Vec2{X: 5, Y: 10}, dmath.Vec2{X: 10, Y: -20}, 0.3, ease.Linear, func(v dmath.Vec2) { pos = v })
	seq := NewSequence(up, down)

	// 0.4s lands 0.1s into the second leg.
	if _, done := seq.Update(0.4); done {
		t.Fatal("sequence finished early")
	}
	want := dmath.Vec2{X: 5 + 5.0/3, Y: 0}
	if math.Abs(pos.X-want.X) > 1e-4 || math.Abs(pos.Y-want.Y) > 1e-4 {
		t.Errorf("position = %v, want %v", pos, want)
	}

	left, done := seq.Update(0.3)
	if !done {
		t.Fatal("sequence should be done")
	}
	if math.Abs(float64(left)-0.1) > 1e-5 {
		t.Errorf("left = %v, want 0.1", left)
	}
	if pos != (dmath.Vec2{X: 10, Y: -20}) {
		t.Errorf("final position = %v", pos)
	}
}

func TestParallelWaitsForLongest(t *testing.T) {
	var a, b float64
	par := NewParallel(
		Float(0, 1, 0.2, nil, func(v float64) { a = v }),
	).Join(
		Float(0, 1, 0.5, nil, func(v float64) { b = v }),
	)

	if _, done := par.Update(0.3); done {
		t.Fatal("parallel finished before its longest child")
	}
	if a != 1 {
		t.Errorf("short child = %v, want 1", a)
	}
	left, done := par.Update(0.3)
	if !done || b != 1 {
		t.Errorf("Update = (%v, %v), long child %v", left, done, b)
	}
	if math.Abs(float64(left)-0.1) > 1e-5 {
		t.Errorf("left = %v, want 0.1", left)
	}
}

func TestSchedulerCompletesExactlyOnce(t *testing.T) {
	s := NewScheduler()
	calls := 0
	h := s.Submit(Float(0, 1, 0.1, nil, func(float64) {}), func() { calls++ })

	for i := 0; i < 60; i++ {
		s.Update(frame)
	}
	if calls != 1 {
		t.Errorf("completion fired %d times, want 1", calls)
	}
	if !h.Completed() || h.Running() {
		t.Errorf("handle state: completed=%v running=%v", h.Completed(), h.Running())
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestSchedulerCancelSuppressesCompletion(t *testing.T) {
	s := NewScheduler()
	fired := false
	h := s.Submit(Float(0, 1, 0.1, nil, func(float64) {}), func() { fired = true })
	s.Update(frame)
	h.Cancel()
	for i := 0; i < 30; i++ {
		s.Update(frame)
	}
	if fired {
		t.Error("cancelled handle fired its completion")
	}
	if h.Completed() {
		t.Error("cancelled handle reports completed")
	}
}

func TestSchedulerSubmitFromCallback(t *testing.T) {
	s := NewScheduler()
	second := 0
	s.Submit(Float(0, 1, frame, nil, func(float64) {}), func() {
		s.Submit(Float(0, 1, frame, nil, func(float64) {}), func() { second++ })
	})

	s.Update(frame)
	if s.Len() != 1 {
		t.Fatalf("Len() after first completion = %d, want 1", s.Len())
	}
	if second != 0 {
		t.Fatal("chained animation ran in the same update it was submitted")
	}
	s.Update(frame)
	if second != 1 {
		t.Errorf("chained completion fired %d times, want 1", second)
	}
}

func TestSchedulerIndependentHandles(t *testing.T) {
	s := NewScheduler()
	order := []int{}
	s.Submit(Float(0, 1, 0.3, nil, func(float64) {}), func() { order = append(order, 1) })
	s.Submit(Float(0, 1, 0.1, nil, func(float64) {}), func() { order = append(order, 2) })

	for i := 0; i < 30; i++ {
		s.Update(frame)
	}
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("completion order = %v, want [2 1]", order)
	}
}

func TestCurveEase(t *testing.T) {
	c := NewCurve(Key{Time: 1, Value: 1}, Key{Time: 0, Value: 0}, Key{Time: 0.5, Value: 0.8})
	tests := []struct {
		t    float32
		want float32
	}{
		{t: -1, want: 0},
		{t: 0.25, want: 0.4},
		{t: 0.5, want: 0.8},
		{t: 0.75, want: 0.9},
		{t: 2, want: 1},
	}
	for _, tt := range tests {
		if got := c.Evaluate(tt.t); math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("Evaluate(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}

	fn := c.Ease()
	if got := fn(1, 10, 20, 2); math.Abs(float64(got-26)) > 1e-5 {
		t.Errorf("Ease()(1, 10, 20, 2) = %v, want 26", got)
	}
}
