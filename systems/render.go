package systems

import (
	"image/color"

	"github.com/automoto/starfx/components"
	cfg "github.com/automoto/starfx/config"
	"github.com/automoto/starfx/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	drawOp     = &ebiten.DrawImageOptions{}
	whitePixel *ebiten.Image
)

// ScreenMatrix maps world space to ebiten pixels: project through the camera
// (or not, for an overlay canvas) and flip the y-up screen into y-down pixels.
func ScreenMatrix(cam *gamemath.Camera, screenHeight float64) gamemath.Affine {
	flip := gamemath.Affine{A: 1, D: -1, Ty: screenHeight}
	return flip.Mul(gamemath.WorldToScreenMatrix(cam))
}

// SpriteMatrix maps image pixels (y down) into a y-up local space with the
// pivot at the origin.
func SpriteMatrix(w, h int, pivotX, pivotY float64) gamemath.Affine {
	return gamemath.Affine{
		A:  1,
		D:  -1,
		Tx: -float64(w) * pivotX,
		Ty: float64(h) * (1 - pivotY),
	}
}

func setGeoM(geo *ebiten.GeoM, m gamemath.Affine) {
	geo.SetElement(0, 0, m.A)
	geo.SetElement(0, 1, m.C)
	geo.SetElement(0, 2, m.Tx)
	geo.SetElement(1, 0, m.B)
	geo.SetElement(1, 1, m.D)
	geo.SetElement(1, 2, m.Ty)
}

func getCanvas(ecs *ecs.ECS) (*components.CanvasData, bool) {
	entry, ok := components.Canvas.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Canvas.Get(entry), true
}

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// DrawContainers fills each container and target rect, following its rotation and scale.
func DrawContainers(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.UI.ShowContainers {
		return
	}
	canvas, ok := getCanvas(ecs)
	if !ok {
		return
	}
	view := ScreenMatrix(canvas.Camera, float64(screen.Bounds().Dy()))

	components.Container.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Container.Get(e).Rect
		if r == nil {
			return
		}
		// Unit square scaled to the rect, bottom-left corner at -pivot*size.
		box := gamemath.Affine{
			A:  r.Size.X,
			D:  r.Size.Y,
			Tx: -r.Pivot.X * r.Size.X,
			Ty: -r.Pivot.Y * r.Size.Y,
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		setGeoM(&drawOp.GeoM, view.Mul(r.LocalToWorld()).Mul(box))
		drawOp.ColorScale.ScaleWithColor(cfg.UI.ContainerColor)
		drawOp.Filter = ebiten.FilterNearest
		screen.DrawImage(pixel(), drawOp)
	})
}

// DrawStars renders in-flight stars in their parent's space. Free stars are not drawn.
func DrawStars(ecs *ecs.ECS, screen *ebiten.Image) {
	canvas, ok := getCanvas(ecs)
	if !ok {
		return
	}
	view := ScreenMatrix(canvas.Camera, float64(screen.Bounds().Dy()))

	components.Star.Each(ecs.World, func(e *donburi.Entry) {
		star := components.Star.Get(e)
		if !star.Active || star.Opacity <= 0 || star.Parent == nil {
			return
		}
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}
		local := gamemath.TRS(star.Position, star.Rotation, dmath.Vec2{X: star.Scale, Y: star.Scale})
		drawSprite(screen, sprite, view.Mul(star.Parent.LocalToWorld()).Mul(local), star.Opacity)
	})
}

// DrawIcon renders the persistent star icon fitted to its rect.
func DrawIcon(ecs *ecs.ECS, screen *ebiten.Image) {
	canvas, ok := getCanvas(ecs)
	if !ok {
		return
	}
	view := ScreenMatrix(canvas.Camera, float64(screen.Bounds().Dy()))

	components.IconAnimator.Each(ecs.World, func(e *donburi.Entry) {
		icon := components.IconAnimator.Get(e)
		sprite := components.Sprite.Get(e)
		if icon.Rect == nil || sprite.Image == nil {
			return
		}
		fit := icon.Rect.Size.X / float64(sprite.Image.Bounds().Dx())
		s := icon.Scale * fit
		local := gamemath.TRS(icon.Rect.Center(), icon.Rotation, dmath.Vec2{X: s, Y: s})
		drawSprite(screen, sprite, view.Mul(icon.Rect.LocalToWorld()).Mul(local), icon.Opacity)
	})
}

func drawSprite(screen *ebiten.Image, sprite *components.SpriteData, m gamemath.Affine, opacity float64) {
	b := sprite.Image.Bounds()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	setGeoM(&drawOp.GeoM, m.Mul(SpriteMatrix(b.Dx(), b.Dy(), sprite.PivotX, sprite.PivotY)))

	// Premultiplied: scale color channels by alpha too.
	a := float32(opacity)
	drawOp.ColorScale.Scale(sprite.R*a, sprite.G*a, sprite.B*a, a)
	drawOp.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite.Image, drawOp)
}
