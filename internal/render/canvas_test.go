package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

// inkBounds returns the bounding box of pixels that differ between before and after.
func inkBounds(before, after *image.RGBA) image.Rectangle {
	var ink image.Rectangle
	b := after.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if before.RGBAAt(x, y) != after.RGBAAt(x, y) {
				ink = ink.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return ink
}

func snapshot(img *image.RGBA) *image.RGBA {
	cp := image.NewRGBA(img.Bounds())
	copy(cp.Pix, img.Pix)
	return cp
}

func newTestCanvas(w, h int) *Canvas {
	c := NewCanvas(w, h, FallbackFontSet())
	c.FillBackground()
	return c
}

func TestCanvasSize(t *testing.T) {
	c := NewCanvas(CanvasWidth, CanvasHeight, FallbackFontSet())
	w, h := c.Size()
	test.T(t, w, 1200)
	test.T(t, h, 630)
	test.T(t, c.Image().Bounds(), image.Rect(0, 0, 1200, 630))
}

func TestFillBackground(t *testing.T) {
	c := newTestCanvas(4, 4)
	test.T(t, c.Image().RGBAAt(0, 0), Background)
	test.T(t, c.Image().RGBAAt(3, 3), Background)
}

func TestFillGradient(t *testing.T) {
	c := newTestCanvas(CanvasWidth, CanvasHeight)
	c.FillGradient(0.3)
	img := c.Image()

	test.T(t, img.RGBAAt(0, 0), color.RGBA{0, 0, 0, 255})
	test.T(t, img.RGBAAt(CanvasWidth-1, 0), color.RGBA{0, 0, 0, 255})
	test.T(t, img.RGBAAt(600, 315), color.RGBA{38, 38, 38, 255})
	test.T(t, img.RGBAAt(0, CanvasHeight-1), color.RGBA{76, 76, 76, 255})
	test.T(t, img.RGBAAt(CanvasWidth-1, CanvasHeight-1), color.RGBA{76, 76, 76, 255})

	// monotonic and uniform across each row
	prev := uint8(0)
	for y := 0; y < CanvasHeight; y++ {
		v := img.RGBAAt(0, y).R
		test.That(t, v >= prev, "row", y, "darker than previous row")
		test.T(t, img.RGBAAt(CanvasWidth/2, y).R, v)
		prev = v
	}
}

func TestFillGradientClampsStrength(t *testing.T) {
	c := newTestCanvas(2, 10)
	c.FillGradient(4)
	test.T(t, c.Image().RGBAAt(0, 9).R, uint8(229)) // 255 * 0.9
}

func TestOverlay(t *testing.T) {
	c := newTestCanvas(CanvasWidth, CanvasHeight)
	c.FillGradient(0.3)
	c.Overlay(color.RGBA{A: 128})
	img := c.Image()

	test.T(t, img.RGBAAt(0, 0), color.RGBA{0, 0, 0, 255})
	bottom := img.RGBAAt(0, CanvasHeight-1)
	test.That(t, bottom.R == 37 || bottom.R == 38, "bottom row should be halved, got", bottom.R)
	test.T(t, bottom.G, bottom.R)
	test.T(t, bottom.B, bottom.R)
	test.T(t, bottom.A, uint8(255))

	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xFF {
			t.Fatalf("pixel %d not opaque after overlay", i/4)
		}
	}
}

func TestOverlayFlattensTransparentCanvas(t *testing.T) {
	c := NewCanvas(2, 2, FallbackFontSet())
	c.Overlay(color.RGBA{A: 128})
	test.T(t, c.Image().RGBAAt(1, 1), color.RGBA{0, 0, 0, 255})
}

func TestMeasureTextFallback(t *testing.T) {
	c := newTestCanvas(10, 10)
	m := c.MeasureText("PRIME", TextStyle{Role: RoleTitle})
	test.T(t, m.Width, 35)
	test.T(t, m.Ascent, 11)
	test.T(t, m.Descent, 2)
	test.T(t, m.Height, 13)
}

func TestDrawTextAnchors(t *testing.T) {
	c := newTestCanvas(200, 100)
	before := snapshot(c.Image())
	c.DrawText("PRIME", 100, 50, TextStyle{Role: RoleTitle, Color: White, Anchor: AnchorMiddle})
	ink := inkBounds(before, c.Image())
	test.That(t, !ink.Empty(), "text drawn")
	test.That(t, ink.In(image.Rect(100-18, 50-8, 100+18, 50+8)), "centered ink", ink)

	c = newTestCanvas(200, 100)
	before = snapshot(c.Image())
	c.DrawText("PRIME", 20, 10, TextStyle{Role: RoleBody, Color: Gold})
	ink = inkBounds(before, c.Image())
	test.That(t, !ink.Empty(), "text drawn")
	test.That(t, ink.In(image.Rect(20, 10, 20+35, 10+13)), "top-left ink", ink)
}

func TestDrawTextColor(t *testing.T) {
	c := newTestCanvas(60, 30)
	c.DrawText("MMM", 5, 5, TextStyle{Color: Gold})
	found := false
	b := c.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c.Image().RGBAAt(x, y) == Gold {
				found = true
				break
			}
		}
	}
	test.That(t, found, "gold ink")
}

func TestDrawMultilineText(t *testing.T) {
	var tests = []struct {
		align    TextAlign
		topInkIn image.Rectangle
	}{
		{TextAlignLeft, image.Rect(86, 80, 100, 100)},
		{TextAlignCenter, image.Rect(93, 80, 107, 100)},
		{TextAlignRight, image.Rect(100, 80, 114, 100)},
	}
	for _, tt := range tests {
		c := newTestCanvas(200, 200)
		before := snapshot(c.Image())
		m := c.DrawMultilineText("ab\ncdef", 100, 100, 8, TextStyle{Color: White, Anchor: AnchorMiddle, Align: tt.align})
		test.T(t, m.Width, 28)
		test.T(t, m.Height, 13+19)

		all := inkBounds(before, c.Image())
		test.That(t, all.In(image.Rect(86, 82, 114, 118)), "block ink", all)

		top := inkBounds(before.SubImage(image.Rect(0, 0, 200, 100)).(*image.RGBA), c.Image().SubImage(image.Rect(0, 0, 200, 100)).(*image.RGBA))
		test.That(t, !top.Empty(), "first line drawn")
		test.That(t, top.In(tt.topInkIn), "first line ink", tt.align, top)
		bottom := inkBounds(before.SubImage(image.Rect(0, 100, 200, 200)).(*image.RGBA), c.Image().SubImage(image.Rect(0, 100, 200, 200)).(*image.RGBA))
		test.That(t, !bottom.Empty(), "second line drawn")
	}
}

func TestDrawRoundedRectFill(t *testing.T) {
	c := newTestCanvas(100, 100)
	c.DrawRoundedRect(image.Rect(10, 10, 90, 60), 8, ShapeStyle{Fill: Gold})
	img := c.Image()
	test.T(t, img.RGBAAt(50, 35), Gold)
	test.T(t, img.RGBAAt(10, 10), Background, "rounded corner stays clear")
	test.T(t, img.RGBAAt(50, 70), Background)
	test.T(t, img.RGBAAt(5, 5), Background)
}

func TestDrawRoundedRectOutline(t *testing.T) {
	c := newTestCanvas(100, 100)
	c.DrawRoundedRect(image.Rect(10, 10, 90, 60), 20, ShapeStyle{Outline: White, Width: 2})
	img := c.Image()
	test.T(t, img.RGBAAt(50, 35), Background, "outline leaves the inside alone")
	test.That(t, img.RGBAAt(50, 10).R > 240, "top edge stroked", img.RGBAAt(50, 10))
	test.That(t, img.RGBAAt(50, 59).R > 240, "bottom edge stroked", img.RGBAAt(50, 59))
	test.T(t, img.RGBAAt(50, 9), Background, "stroke stays inside")
	test.T(t, img.RGBAAt(50, 13), Background)
}

func TestDrawRoundedRectNoStyle(t *testing.T) {
	c := newTestCanvas(20, 20)
	before := snapshot(c.Image())
	c.DrawRoundedRect(image.Rect(2, 2, 18, 18), 4, ShapeStyle{Outline: White})
	test.T(t, inkBounds(before, c.Image()), image.Rectangle{}, "zero width outline draws nothing")
}
