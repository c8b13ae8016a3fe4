package card

import "github.com/primemeridian/ogimage/internal/render/layout"

// Text drawn on the card, top to bottom.
const (
	BadgeText = "🛡️ Trusted Global Advisory Since 2009"

	Tagline = "INVESTMENT ADVISORY FIRM"

	Description = "We don't just facilitate deals—we create strategic value.\n" +
		"Specializing in helping businesses with growth, transformation,\n" +
		"and exit opportunities through strategic partnerships."

	PrimaryCTA   = "📱 SCHEDULE A CALL"
	SecondaryCTA = "Our Services →"
)

var TitleLines = [...]string{"PRIME", "MERIDIAN", "CAPITAL"}

// Stat is one callout of the stats row.
type Stat struct {
	Value string
	Label string
}

var Stats = [...]Stat{
	{Value: "Global", Label: "MANDATES"},
	{Value: "Dubai", Label: "& LONDON"},
	{Value: "Multi-Sector", Label: "EXPERTISE"},
}

// Layout in canvas pixels.
const (
	GradientStrength = 0.3
	OverlayAlpha     = 128

	badgeRadius     = 20
	badgeStroke     = 2
	badgeTextPadX   = 20
	badgeTextPadY   = 10
	centerX         = 600
	titleY          = 180
	titlePitch      = 80
	taglineOffset   = 220
	descOffset      = 270
	descSpacing     = 8
	statsOffset     = 360
	statLabelPitch  = 30
	buttonRadius    = 8
	buttonGap       = 20
	secondaryWidth  = 150
	secondaryStroke = 1
)

var (
	badgeRect     = layout.Box(400, 80, 400, 40)
	primaryRect   = layout.Box(400, 520, 200, 50)
	secondaryRect = layout.RightOf(primaryRect, buttonGap, secondaryWidth)

	statXs = [len(Stats)]int{400, 600, 800}
)
