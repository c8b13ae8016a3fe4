package render

import (
	"image"
	"image/color"
)

// Drawer is an abstraction the renderer provides to the card so the layout
// code never touches pixels directly.
type Drawer interface {
	// Size returns the canvas size (in pixels) the card draws into.
	Size() (width int, height int)

	FillBackground()
	// FillGradient paints one horizontal line per row, brightening from black
	// at the top to strength*255 at the bottom.
	FillGradient(strength float64)
	// Overlay composites a uniform translucent color over the whole canvas and
	// leaves the canvas opaque.
	Overlay(c color.Color)

	// Text primitives.
	MeasureText(text string, style TextStyle) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics
	DrawMultilineText(text string, x, y, spacing int, style TextStyle) TextMetrics

	// Shape primitives.
	DrawRoundedRect(rect image.Rectangle, radius int, style ShapeStyle)
}

// FontRole selects one of the faces in a FontSet.
type FontRole int

const (
	RoleBody FontRole = iota
	RoleSubtitle
	RoleTitle
)

func (r FontRole) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleSubtitle:
		return "subtitle"
	default:
		return "body"
	}
}

// Anchor is the reference point of the text box placed at (x, y).
type Anchor int

const (
	// AnchorLeftTop places the left edge and the ascender line at (x, y).
	AnchorLeftTop Anchor = iota
	// AnchorMiddle centers the text box on (x, y) both ways. Vertically the
	// middle is halfway between the ascender and descender lines.
	AnchorMiddle
)

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how to render text.
// Align only affects multi-line text: it positions each line inside the block.
type TextStyle struct {
	Role   FontRole
	Color  color.Color
	Anchor Anchor
	Align  TextAlign
}

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}

// ShapeStyle describes a filled or outlined shape. A nil Fill or Outline skips
// that part. Width is the outline stroke width in pixels and is drawn inside
// the rectangle.
type ShapeStyle struct {
	Fill    color.Color
	Outline color.Color
	Width   int
}
