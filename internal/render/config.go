package render

import "image/color"

// Palette shared by every element of the card.
var (
	Gold      = color.RGBA{R: 0xD4, G: 0xAF, B: 0x37, A: 0xFF} // #D4AF37
	White     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // #FFFFFF
	LightGray = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF} // #CCCCCC
	Black     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF} // #000000

	// Background is the base fill before the gradient is painted.
	Background = color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF} // #1a1a1a

	// Open Graph canvas size.
	CanvasWidth  = 1200
	CanvasHeight = 630
)
