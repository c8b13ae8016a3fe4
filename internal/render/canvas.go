package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var _ Drawer = (*Canvas)(nil)

// Canvas is an in-memory raster Drawer. Text goes through font.Drawer, shapes
// through a gg context that shares the same pixel buffer.
type Canvas struct {
	img   *image.RGBA
	dc    *gg.Context
	fonts FontSet
}

// NewCanvas allocates a width x height canvas. Pixels start transparent until
// FillBackground is called.
func NewCanvas(width, height int, fonts FontSet) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{img: img, dc: gg.NewContextForRGBA(img), fonts: fonts}
}

// Image returns the backing image. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Fonts() FontSet { return c.fonts }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillBackground() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
}

func (c *Canvas) FillGradient(strength float64) {
	strength = math.Max(0, math.Min(strength, 1))
	bounds := c.img.Bounds()
	height := bounds.Dy()
	for y := 0; y < height; y++ {
		v := uint8(255 * (float64(y) / float64(height)) * strength)
		row := image.Rect(bounds.Min.X, bounds.Min.Y+y, bounds.Max.X, bounds.Min.Y+y+1)
		draw.Draw(c.img, row, &image.Uniform{C: color.RGBA{R: v, G: v, B: v, A: 0xFF}}, image.Point{}, draw.Src)
	}
}

func (c *Canvas) Overlay(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Over)
	c.flatten()
}

// flatten drops the alpha channel. Pixels are premultiplied, so forcing them
// opaque is the same as compositing over black.
func (c *Canvas) flatten() {
	pix := c.img.Pix
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xFF
	}
}

func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	face := c.fonts.Face(style.Role)
	return measure(face, font.MeasureString(face, text), 1, 0)
}

func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	face := c.fonts.Face(style.Role)
	width := font.MeasureString(face, text)
	c.drawLine(face, text, textOrigin(face, width, fixed.I(x), fixed.I(y), style.Anchor), style.Color)
	return measure(face, width, 1, 0)
}

// DrawMultilineText draws text split on "\n". Lines are spaced by the font
// ascent plus spacing pixels. The anchor applies to the whole block; Align
// positions each line inside it.
func (c *Canvas) DrawMultilineText(text string, x, y, spacing int, style TextStyle) TextMetrics {
	face := c.fonts.Face(style.Role)
	lines := strings.Split(text, "\n")
	pitch := face.Metrics().Ascent + fixed.I(spacing)

	widths := make([]fixed.Int26_6, len(lines))
	var maxWidth fixed.Int26_6
	for i, line := range lines {
		widths[i] = font.MeasureString(face, line)
		if widths[i] > maxWidth {
			maxWidth = widths[i]
		}
	}

	top := fixed.I(y)
	if style.Anchor == AnchorMiddle {
		top -= pitch * fixed.Int26_6(len(lines)-1) / 2
	}
	for i, line := range lines {
		slack := maxWidth - widths[i]
		left := fixed.I(x)
		if style.Anchor == AnchorMiddle {
			left -= slack / 2
		}
		switch style.Align {
		case TextAlignCenter:
			left += slack / 2
		case TextAlignRight:
			left += slack
		}
		c.drawLine(face, line, textOrigin(face, widths[i], left, top, style.Anchor), style.Color)
		top += pitch
	}
	return measure(face, maxWidth, len(lines), pitch)
}

func (c *Canvas) drawLine(face font.Face, text string, dot fixed.Point26_6, col color.Color) {
	if col == nil {
		col = White
	}
	drawer := &font.Drawer{Dst: c.img, Src: image.NewUniform(col), Face: face, Dot: dot}
	drawer.DrawString(text)
}

// textOrigin converts an anchor point into the baseline origin font.Drawer expects.
func textOrigin(face font.Face, width, x, y fixed.Int26_6, anchor Anchor) fixed.Point26_6 {
	m := face.Metrics()
	switch anchor {
	case AnchorMiddle:
		return fixed.Point26_6{X: x - width/2, Y: y + (m.Ascent-m.Descent)/2}
	default:
		return fixed.Point26_6{X: x, Y: y + m.Ascent}
	}
}

func measure(face font.Face, width fixed.Int26_6, lines int, pitch fixed.Int26_6) TextMetrics {
	m := face.Metrics()
	height := m.Ascent + m.Descent
	if lines > 1 {
		height += pitch * fixed.Int26_6(lines-1)
	}
	return TextMetrics{
		Width:      width.Ceil(),
		Height:     height.Ceil(),
		Ascent:     m.Ascent.Ceil(),
		Descent:    m.Descent.Ceil(),
		LineHeight: m.Height.Ceil(),
	}
}

// DrawRoundedRect fills and/or strokes rect. The stroke is inset by half its
// width so it stays inside rect.
func (c *Canvas) DrawRoundedRect(rect image.Rectangle, radius int, style ShapeStyle) {
	rect = rect.Canon()
	x, y := float64(rect.Min.X), float64(rect.Min.Y)
	w, h := float64(rect.Dx()), float64(rect.Dy())
	r := float64(radius)

	if style.Fill != nil {
		c.dc.DrawRoundedRectangle(x, y, w, h, r)
		c.dc.SetColor(style.Fill)
		c.dc.Fill()
	}
	if style.Outline != nil && style.Width > 0 {
		inset := float64(style.Width) / 2
		c.dc.DrawRoundedRectangle(x+inset, y+inset, w-2*inset, h-2*inset, math.Max(r-inset, 0))
		c.dc.SetColor(style.Outline)
		c.dc.SetLineWidth(float64(style.Width))
		c.dc.Stroke()
	}
}
