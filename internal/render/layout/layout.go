package layout

import "image"

// Box returns the rectangle with top-left (x, y) and the given size.
func Box(x, y, widthPx, heightPx int) image.Rectangle {
	return Normalize(image.Rect(x, y, x+widthPx, y+heightPx))
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	return InsetXY(rect, paddingPx, paddingPx)
}

// InsetXY shrinks rect by padXPx horizontally and padYPx vertically.
// Negative padding is treated as zero; an over-sized inset collapses to the center.
func InsetXY(rect image.Rectangle, padXPx, padYPx int) image.Rectangle {
	rect = Normalize(rect)
	if padXPx < 0 {
		padXPx = 0
	}
	if padYPx < 0 {
		padYPx = 0
	}
	if 2*padXPx > rect.Dx() {
		padXPx = rect.Dx() / 2
	}
	if 2*padYPx > rect.Dy() {
		padYPx = rect.Dy() / 2
	}
	return image.Rect(rect.Min.X+padXPx, rect.Min.Y+padYPx, rect.Max.X-padXPx, rect.Max.Y-padYPx)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Center returns the middle point of rect, rounded toward Min.
func Center(rect image.Rectangle) image.Point {
	rect = Normalize(rect)
	return image.Pt(rect.Min.X+rect.Dx()/2, rect.Min.Y+rect.Dy()/2)
}

// RightOf returns a rectangle widthPx wide, gapPx to the right of rect,
// sharing its top and height.
func RightOf(rect image.Rectangle, gapPx, widthPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	x := rect.Max.X + gapPx
	return image.Rect(x, rect.Min.Y, x+widthPx, rect.Max.Y)
}

// Fit returns the largest rectangle with the aspect ratio of widthPx x heightPx
// that fits into rect, centered in it.
func Fit(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx <= 0 || heightPx <= 0 || rect.Empty() {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	w := rect.Dx()
	h := w * heightPx / widthPx
	if h > rect.Dy() {
		h = rect.Dy()
		w = h * widthPx / heightPx
	}
	x := rect.Min.X + (rect.Dx()-w)/2
	y := rect.Min.Y + (rect.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}
