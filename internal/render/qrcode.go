package render

import (
	"errors"
	"image"
	"image/draw"

	"github.com/primemeridian/ogimage/internal/render/layout"
	"github.com/skip2/go-qrcode"
)

const (
	defaultQRCodeSizePx = 256
	qrFramePx           = 8
)

// LinkQRCode encodes url as a black-on-white QR code inside a gold frame, so
// the preview page can be opened on a phone. The result is sizePx square.
func LinkQRCode(url string, sizePx int) (image.Image, error) {
	if url == "" {
		return nil, errors.New("qr code: empty url")
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	code.ForegroundColor = Black
	code.BackgroundColor = White

	dst := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: Gold}, image.Point{}, draw.Src)
	inner := layout.Inset(dst.Bounds(), qrFramePx)
	src := code.Image(inner.Dx())
	// go-qrcode grows the image when inner is too small for the symbol.
	target := layout.Fit(inner, src.Bounds().Dx(), src.Bounds().Dy())
	if src.Bounds().Dx() > inner.Dx() {
		target = inner
	}
	draw.Draw(dst, target, src, src.Bounds().Min, draw.Src)
	return dst, nil
}
