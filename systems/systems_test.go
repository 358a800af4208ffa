package systems

import (
	"image"
	"math"
	"testing"

	"github.com/automoto/starfx/components"
	cfg "github.com/automoto/starfx/config"
	"github.com/automoto/starfx/gamemath"
	"github.com/automoto/starfx/starfx"
	"github.com/automoto/starfx/tags"
	"github.com/automoto/starfx/tween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func near(a, b dmath.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestScreenMatrix(t *testing.T) {
	tests := []struct {
		name  string
		cam   *gamemath.Camera
		world dmath.Vec2
		pixel dmath.Vec2
	}{
		{name: "overlay origin", world: dmath.Vec2{}, pixel: dmath.Vec2{X: 0, Y: 720}},
		{name: "overlay top right", world: dmath.Vec2{X: 1280, Y: 720}, pixel: dmath.Vec2{X: 1280, Y: 0}},
		{
			name:  "camera center",
			cam:   gamemath.NewCamera(dmath.Vec2{X: 100, Y: 50}, 2, 1280, 720),
			world: dmath.Vec2{X: 100, Y: 50},
			pixel: dmath.Vec2{X: 640, Y: 360},
		},
		{
			name:  "camera offset",
			cam:   gamemath.NewCamera(dmath.Vec2{X: 100, Y: 50}, 2, 1280, 720),
			world: dmath.Vec2{X: 110, Y: 60},
			pixel: dmath.Vec2{X: 660, Y: 340},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScreenMatrix(tt.cam, 720).Apply(tt.world); !near(got, tt.pixel) {
				t.Errorf("ScreenMatrix maps %v to %v, want %v", tt.world, got, tt.pixel)
			}
		})
	}
}

func TestSpriteMatrixCentersPivot(t *testing.T) {
	m := SpriteMatrix(64, 32, 0.5, 0.5)
	if got := m.Apply(dmath.Vec2{X: 32, Y: 16}); !near(got, dmath.Vec2{}) {
		t.Errorf("image center maps to %v, want origin", got)
	}
	// Top-left pixel is up and to the left of the pivot in y-up space.
	if got := m.Apply(dmath.Vec2{}); !near(got, dmath.Vec2{X: -32, Y: 16}) {
		t.Errorf("top-left maps to %v, want (-32, 16)", got)
	}
}

func TestPixelToScreen(t *testing.T) {
	got := PixelToScreen(image.Pt(10, 700), 720)
	if got != (dmath.Vec2{X: 10, Y: 20}) {
		t.Errorf("PixelToScreen = %v, want (10, 20)", got)
	}
}

func TestClampEmitCount(t *testing.T) {
	tests := []struct{ in, want int }{
		{in: -3, want: 0},
		{in: 0, want: 0},
		{in: 7, want: 7},
		{in: cfg.Input.MaxEmitCount + 5, want: cfg.Input.MaxEmitCount},
	}
	for _, tt := range tests {
		if got := ClampEmitCount(tt.in); got != tt.want {
			t.Errorf("ClampEmitCount(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDecodeSettings(t *testing.T) {
	t.Run("partial save keeps defaults", func(t *testing.T) {
		s, err := DecodeSettings([]byte(`{"emitCount": 3, "useCamera": true}`))
		if err != nil {
			t.Fatal(err)
		}
		if s.EmitCount != 3 || !s.UseCamera {
			t.Errorf("decoded = %+v", *s)
		}
		if s.SFXVolume != cfg.Audio.DefaultSFXVol || s.IconState != 1 {
			t.Errorf("defaults lost: %+v", *s)
		}
	})

	t.Run("out of range count is clamped", func(t *testing.T) {
		s, err := DecodeSettings([]byte(`{"emitCount": 999}`))
		if err != nil {
			t.Fatal(err)
		}
		if s.EmitCount != cfg.Input.MaxEmitCount {
			t.Errorf("EmitCount = %d, want %d", s.EmitCount, cfg.Input.MaxEmitCount)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := DecodeSettings([]byte(`{not json`)); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestApplySavedSettings(t *testing.T) {
	base := cfg.StarFX
	if got := ApplySavedSettings(base, nil); got.EmitCount != base.EmitCount {
		t.Errorf("nil settings changed EmitCount to %d", got.EmitCount)
	}
	got := ApplySavedSettings(base, &SavedSettings{EmitCount: 3})
	if got.EmitCount != 3 {
		t.Errorf("EmitCount = %d, want 3", got.EmitCount)
	}
	if got.TotalDuration != base.TotalDuration || got.PoolSize != base.PoolSize {
		t.Error("unrelated fields changed")
	}
}

func TestSFXVolumeFor(t *testing.T) {
	if got := SFXVolumeFor(cfg.SoundBurst, 0.5); got != 0.5 {
		t.Errorf("burst volume = %v, want 0.5", got)
	}
	want := 0.5 * cfg.Sound.VolumeMultipliers[cfg.SoundClick]
	if got := SFXVolumeFor(cfg.SoundClick, 0.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("click volume = %v, want %v", got, want)
	}
}

func TestTargetAt(t *testing.T) {
	w := donburi.NewWorld()
	root := gamemath.NewRect("canvas", 0, 0, 1280, 720)
	root.Pivot = dmath.Vec2{}

	left := gamemath.NewRect("left", 300, 300, 100, 50).SetParent(root)
	right := gamemath.NewRect("right", 900, 300, 100, 50).SetParent(root)
	right.Rotation = 90
	for _, r := range []*gamemath.Rect{left, right} {
		entry := w.Entry(w.Create(tags.Target, components.Container))
		components.Container.SetValue(entry, components.ContainerData{Rect: r})
	}

	tests := []struct {
		name  string
		point dmath.Vec2
		want  *gamemath.Rect
	}{
		{name: "inside left", point: dmath.Vec2{X: 340, Y: 310}, want: left},
		{name: "outside left", point: dmath.Vec2{X: 360, Y: 300}},
		// rotated 90 degrees: 50 wide, 100 tall
		{name: "inside rotated right", point: dmath.Vec2{X: 910, Y: 340}, want: right},
		{name: "outside rotated right", point: dmath.Vec2{X: 940, Y: 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetAt(w, tt.point); got != tt.want {
				t.Errorf("TargetAt(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestHUDLines(t *testing.T) {
	w := donburi.NewWorld()
	pool := make([]*donburi.Entry, 4)
	parent := gamemath.NewRect("panel", 0, 0, 100, 100)
	for i := range pool {
		pool[i] = w.Entry(w.Create(components.Star))
		star := components.StarData{Slot: i, Parent: parent}
		star.Reset()
		components.Star.SetValue(pool[i], star)
	}
	c := cfg.StarFX
	c.EmitCount = 3
	fx, err := starfx.NewEmitter(pool, c, tween.NewScheduler())
	if err != nil {
		t.Fatal(err)
	}
	fx.Emit(dmath.Vec2{})

	lines := HUDLines(fx, components.IconTwinkle, &SavedSettings{Muted: true})
	want := []string{"In flight: 3 / 4", "Per burst: 3", "Canvas: Overlay", "Icon: Twinkle", "Muted"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func newIconWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	entry := e.World.Entry(e.World.Create(tags.Icon, components.IconAnimator))
	components.IconAnimator.SetValue(entry, components.IconAnimatorData{
		Rect:    gamemath.NewRect("icon", 0, 0, 96, 96),
		State:   components.IconOn,
		Opacity: 1,
		Scale:   1,
	})
	return e, entry
}

func TestStarIconStates(t *testing.T) {
	e, entry := newIconWorld(t)
	sched := tween.NewScheduler()
	update := NewUpdateStarIcons(sched)
	states := starfx.NewStateController(NewIconAnimator(entry))
	icon := components.IconAnimator.Get(entry)

	states.OnClickStarStateButton(-5)
	update(e)
	if icon.State != components.IconOff || icon.Opacity != cfg.StarState.OffOpacity {
		t.Fatalf("after off: state %v opacity %v", icon.State, icon.Opacity)
	}

	// Last trigger of the frame wins.
	states.SetStarState(starfx.StarOff)
	states.SetStarState(starfx.StarTwinkle)
	update(e)
	if icon.State != components.IconTwinkle || icon.Pulse == nil {
		t.Fatalf("after twinkle: state %v pulse %v", icon.State, icon.Pulse)
	}
	first := icon.Pulse

	// The pulse loops while twinkling.
	steps := int(cfg.StarState.TwinkleDuration/(1.0/60)) + 5
	peak := 0.0
	for i := 0; i < steps; i++ {
		sched.Update(1.0 / 60)
		peak = math.Max(peak, icon.Scale)
	}
	if peak <= 1 {
		t.Errorf("twinkle never grew the icon (peak %v)", peak)
	}
	if !first.Completed() || icon.Pulse == first || !icon.Pulse.Running() {
		t.Error("twinkle pulse did not restart")
	}

	audio, ok := components.Audio.First(e.World)
	if !ok || len(components.Audio.Get(audio).PendingSFX) != 1 {
		t.Error("twinkle did not queue its sound")
	}

	states.OnClickStarStateButton(1)
	update(e)
	if icon.State != components.IconOn || icon.Scale != 1 || icon.Rotation != 0 || icon.Pulse != nil {
		t.Errorf("after on: %+v", *icon)
	}
	if sched.Len() != 0 {
		t.Errorf("scheduler still runs %d animations", sched.Len())
	}
}

func TestStateControllerWithoutAnimator(t *testing.T) {
	states := starfx.NewStateController(nil)
	states.OnClickStarStateButton(0) // must not panic

	var nilAnimator *IconAnimator
	nilAnimator.SetTrigger(cfg.StarState.TriggerOn)
}

func TestRectCorners(t *testing.T) {
	root := gamemath.NewRect("canvas", 0, 0, 1280, 720)
	root.Pivot = dmath.Vec2{}
	r := gamemath.NewRect("panel", 100, 100, 40, 20).SetParent(root)
	r.Rotation = 90

	got := RectCorners(r)
	// Rotated a quarter turn: local bottom-left lands at bottom-right.
	want := [4]dmath.Vec2{{X: 110, Y: 80}, {X: 110, Y: 120}, {X: 90, Y: 120}, {X: 90, Y: 80}}
	for i := range want {
		if !near(got[i], want[i]) {
			t.Errorf("corner %d = %v, want %v", i, got[i], want[i])
		}
	}
}
