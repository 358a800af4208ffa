package ui

import (
	"bytes"
	goimage "image"
	"image/color"

	cfg "github.com/automoto/starfx/config"
	"github.com/automoto/starfx/gamemath"
	"github.com/automoto/starfx/starfx"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	dmath "github.com/yohamta/donburi/features/math"
	"golang.org/x/image/font/gofont/goregular"
)

// WidgetRect converts a widget's pixel bounds (y down) into a world-space rect
// centered on the widget, undoing the camera projection if there is one.
func WidgetRect(name string, r goimage.Rectangle, screenHeight float64, cam *gamemath.Camera) *gamemath.Rect {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := screenHeight - float64(r.Min.Y+r.Max.Y)/2
	center := gamemath.ScreenToWorldPoint(cam, dmath.Vec2{X: cx, Y: cy})

	zoom := 1.0
	if cam != nil && cam.Zoom != 0 {
		zoom = cam.Zoom
	}
	return gamemath.NewRect(name, center.X, center.Y, float64(r.Dx())/zoom, float64(r.Dy())/zoom)
}

// BurstForwarder bursts from the center of whatever widget was activated.
type BurstForwarder struct {
	FX           *starfx.Emitter
	ScreenHeight float64
}

// Forward does nothing while no emitter is wired.
func (f *BurstForwarder) Forward(name string, r goimage.Rectangle) int {
	if f == nil || f.FX == nil {
		return 0
	}
	return f.FX.PlayAtTarget(WidgetRect(name, r, f.ScreenHeight, f.FX.Camera()))
}

// StarFXUI holds the ebitenui buttons of the demo: a burst button and the
// On/Twinkle/Off icon state buttons.
type StarFXUI struct {
	UI *ebitenui.UI

	Forwarder *BurstForwarder
	States    *starfx.StateController

	// OnClick is called for every button press, e.g. to queue a click sound.
	OnClick func()

	buttons []*widget.Button

	normalFace text.Face
}

// NewStarFXUI builds the button bar along the bottom of the screen.
func NewStarFXUI(fwd *BurstForwarder, states *starfx.StateController, onClick func()) *StarFXUI {
	sui := &StarFXUI{
		Forwarder: fwd,
		States:    states,
		OnClick:   onClick,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *StarFXUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
}

func (sui *StarFXUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	margin := cfg.UI.HUDMargin * 4
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 120})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				Padding:            &widget.Insets{Bottom: margin},
			}),
		),
	)

	var burst *widget.Button
	burst = sui.newButton(cfg.UI.BurstButtonLabel, sui.burstButtonImage(), func() {
		// The burst leaves from the center of the button itself.
		sui.Forwarder.Forward("burst-button", burst.GetWidget().Rect)
	})
	bar.AddChild(burst)

	states := []struct {
		label string
		value int
	}{
		{label: "On", value: 1},
		{label: "Twinkle", value: 0},
		{label: "Off", value: -1},
	}
	for _, s := range states {
		value := s.value // Capture for closure
		bar.AddChild(sui.newButton(s.label, sui.buttonImage(), func() {
			sui.States.OnClickStarStateButton(value)
		}))
	}

	rootContainer.AddChild(bar)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *StarFXUI) newButton(label string, img *widget.ButtonImage, onClick func()) *widget.Button {
	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.UI.ButtonMinWidth, cfg.UI.ButtonMinHeight),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnClick != nil {
				sui.OnClick()
			}
			onClick()
		}),
	)
	sui.buttons = append(sui.buttons, button)
	return button
}

// Contains reports whether a pixel is over one of the buttons.
func (sui *StarFXUI) Contains(p goimage.Point) bool {
	for _, b := range sui.buttons {
		if p.In(b.GetWidget().Rect) {
			return true
		}
	}
	return false
}

func (sui *StarFXUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *StarFXUI) burstButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{150, 110, 20, 255})
	hover := image.NewNineSliceColor(color.RGBA{190, 145, 30, 255})
	pressed := image.NewNineSliceColor(color.RGBA{120, 85, 15, 255})
	disabled := image.NewNineSliceColor(color.RGBA{60, 50, 30, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update calls the UI's Update method
func (sui *StarFXUI) Update() {
	sui.UI.Update()
}
