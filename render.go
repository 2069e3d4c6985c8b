package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"grid-hud/hud"
)

// drawHUD renders every panel backdrop and the buttons of the active
// mode. Buttons of other modes stay invisible as well as inert.
func (g *Game) drawHUD(screen *ebiten.Image) {
	for _, p := range g.hud.Panels() {
		if p.Area.Size.X <= 0 || p.Area.Size.Y <= 0 {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(p.Area.Start.X), float32(p.Area.Start.Y),
			float32(p.Area.Size.X), float32(p.Area.Size.Y),
			ColorPanel, false)
	}

	for _, b := range g.hud.ActiveButtons() {
		if b.Area.Size.X <= 0 || b.Area.Size.Y <= 0 {
			continue
		}

		var fill color.Color
		switch b.State {
		case hud.StatePressed:
			fill = ColorButtonPressed
		case hud.StateInactive:
			fill = ColorButtonInactive
		default:
			fill = ColorButton
		}
		vector.DrawFilledRect(screen,
			float32(b.Area.Start.X), float32(b.Area.Start.Y),
			float32(b.Area.Size.X), float32(b.Area.Size.Y),
			fill, false)

		g.drawButtonLabel(screen, b)
	}
}

// drawButtonLabel centers the label in the button using the panel's
// computed font size, scaled by the button's own multiplier if set.
func (g *Game) drawButtonLabel(screen *ebiten.Image, b *hud.Button) {
	size := b.FontSize
	if b.FontScale != 0 {
		size *= b.FontScale
	}
	face := g.fonts.Face(size)

	bounds := text.BoundString(face, b.Label)
	x := b.Area.Start.X + (b.Area.Size.X-float64(bounds.Dx()))/2 - float64(bounds.Min.X)
	y := b.Area.Start.Y + (b.Area.Size.Y-float64(bounds.Dy()))/2 - float64(bounds.Min.Y)
	text.Draw(screen, b.Label, face, int(x), int(y), ColorButtonText)
}
