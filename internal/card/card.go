// Package card lays out the Prime Meridian Capital Open Graph card.
//
// Every position is a literal from content.go; nothing is measured back from
// the canvas, so the same Drawer calls are made whichever fonts are loaded.
package card

import (
	"image/color"

	"github.com/primemeridian/ogimage/internal/render"
	"github.com/primemeridian/ogimage/internal/render/layout"
)

// OGCard draws the full card onto a Drawer.
type OGCard struct{}

// Draw runs every step in order on d.
func (OGCard) Draw(d render.Drawer) {
	DrawBackground(d)
	drawBadge(d)
	drawTitle(d)
	drawTagline(d)
	drawDescription(d)
	drawStats(d)
	drawButtons(d)
}

// DrawBackground fills the base color, paints the gradient and darkens it
// with the black overlay.
func DrawBackground(d render.Drawer) {
	d.FillBackground()
	d.FillGradient(GradientStrength)
	d.Overlay(color.RGBA{A: OverlayAlpha})
}

func drawBadge(d render.Drawer) {
	d.DrawRoundedRect(badgeRect, badgeRadius, render.ShapeStyle{Outline: render.Gold, Width: badgeStroke})
	origin := layout.InsetXY(badgeRect, badgeTextPadX, badgeTextPadY).Min
	d.DrawText(BadgeText, origin.X, origin.Y, render.TextStyle{Role: render.RoleBody, Color: render.Gold})
}

func drawTitle(d render.Drawer) {
	style := render.TextStyle{Role: render.RoleTitle, Color: render.White, Anchor: render.AnchorMiddle}
	for i, line := range TitleLines {
		d.DrawText(line, centerX, titleY+i*titlePitch, style)
	}
}

func drawTagline(d render.Drawer) {
	d.DrawText(Tagline, centerX, titleY+taglineOffset,
		render.TextStyle{Role: render.RoleSubtitle, Color: render.Gold, Anchor: render.AnchorMiddle})
}

func drawDescription(d render.Drawer) {
	d.DrawMultilineText(Description, centerX, titleY+descOffset, descSpacing,
		render.TextStyle{Role: render.RoleBody, Color: render.LightGray, Anchor: render.AnchorMiddle, Align: render.TextAlignLeft})
}

func drawStats(d render.Drawer) {
	y := titleY + statsOffset
	value := render.TextStyle{Role: render.RoleSubtitle, Color: render.Gold, Anchor: render.AnchorMiddle}
	label := render.TextStyle{Role: render.RoleBody, Color: render.LightGray, Anchor: render.AnchorMiddle}
	for i, stat := range Stats {
		d.DrawText(stat.Value, statXs[i], y, value)
		d.DrawText(stat.Label, statXs[i], y+statLabelPitch, label)
	}
}

func drawButtons(d render.Drawer) {
	d.DrawRoundedRect(primaryRect, buttonRadius, render.ShapeStyle{Fill: render.Gold})
	c := layout.Center(primaryRect)
	d.DrawText(PrimaryCTA, c.X, c.Y, render.TextStyle{Role: render.RoleBody, Color: render.Black, Anchor: render.AnchorMiddle})

	d.DrawRoundedRect(secondaryRect, buttonRadius, render.ShapeStyle{Outline: render.White, Width: secondaryStroke})
	c = layout.Center(secondaryRect)
	d.DrawText(SecondaryCTA, c.X, c.Y, render.TextStyle{Role: render.RoleBody, Color: render.White, Anchor: render.AnchorMiddle})
}

// Compose draws the card onto a fresh canvas of the standard size.
func Compose(fonts render.FontSet) *render.Canvas {
	canvas := render.NewCanvas(render.CanvasWidth, render.CanvasHeight, fonts)
	OGCard{}.Draw(canvas)
	return canvas
}
