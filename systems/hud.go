package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/starfx/components"
	cfg "github.com/automoto/starfx/config"
	"github.com/automoto/starfx/fonts"
	"github.com/automoto/starfx/starfx"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudPanelWidth = 300
	hudLineHeight = 20
)

var hudPanelColor = color.RGBA{0, 0, 0, 140}

// HUDLines is the status text for the current emitter and icon state.
func HUDLines(fx *starfx.Emitter, icon components.IconStateID, settings *SavedSettings) []string {
	lines := make([]string, 0, 5)
	if fx != nil {
		c := fx.Config()
		lines = append(lines,
			fmt.Sprintf("In flight: %d / %d", fx.InFlight(), fx.Size()),
			fmt.Sprintf("Per burst: %d", c.EmitCount),
			fmt.Sprintf("Canvas: %s", CanvasModeName(fx.Camera() != nil)),
		)
	}
	lines = append(lines, fmt.Sprintf("Icon: %s", icon))
	if settings != nil && settings.Muted {
		lines = append(lines, "Muted")
	}
	return lines
}

// NewDrawHUD renders a status panel in the top-left corner plus a key legend at the bottom.
func NewDrawHUD(fx *starfx.Emitter, settings *SavedSettings) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !fonts.Loaded(fonts.Regular) {
			return
		}
		icon := components.IconOn
		if entry, ok := components.IconAnimator.First(e.World); ok {
			icon = components.IconAnimator.Get(entry).State
		}

		lines := HUDLines(fx, icon, settings)
		margin := cfg.UI.HUDMargin
		vector.DrawFilledRect(screen,
			float32(margin), float32(margin),
			float32(hudPanelWidth), float32(len(lines)*hudLineHeight+margin),
			hudPanelColor, false)

		face := fonts.Regular.Get()
		for i, line := range lines {
			y := margin + (i+1)*hudLineHeight
			text.Draw(screen, line, face, margin*2, y, cfg.UI.HUDTextColor)
		}

		legend := "Click: burst   Space: burst at target   1/2/3: On/Twinkle/Off   Up/Down: count   C: camera   M: mute   F3: debug"
		text.Draw(screen, legend, fonts.Small.Get(), margin, screen.Bounds().Dy()-margin, cfg.UI.HUDTextColor)
	}
}
