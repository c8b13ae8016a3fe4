package render

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"time"

	fb "github.com/gonutz/framebuffer"
	"github.com/primemeridian/ogimage/internal/render/layout"
	"github.com/primemeridian/ogimage/internal/system"
	xdraw "golang.org/x/image/draw"
)

// DefaultPreviewHold is how long a framebuffer preview stays up when no hold is configured.
const DefaultPreviewHold = 10 * time.Second

// FBPreview shows a finished card on the Linux framebuffer, for checking the
// output on a kiosk or headless board without copying the file off.
type FBPreview struct {
	Device string
	Hold   time.Duration
	Logger logger
}

func NewFBPreview(device string, hold time.Duration) *FBPreview {
	if hold <= 0 {
		hold = DefaultPreviewHold
	}
	return &FBPreview{Device: device, Hold: hold}
}

// Show blits img to the framebuffer and blocks until Hold elapses, ctx is
// done, or Esc or F4 is pressed.
func (p *FBPreview) Show(ctx context.Context, img image.Image) error {
	dev, err := fb.Open(p.Device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", p.Device, err)
	}
	defer dev.Close()
	if p.Logger != nil {
		bounds := dev.Bounds()
		p.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}

	// Switch console to KD_GRAPHICS so the text cursor does not blink over the card.
	if err := system.SetGraphicsModeWithLog(p.Logger); err == nil {
		defer func() { _ = system.RestoreTextModeWithLog(p.Logger) }()
	}
	_ = system.HideCursorWithLog(p.Logger)
	defer func() { _ = system.ShowCursorWithLog(p.Logger) }()

	blitToFB(dev, img)

	holdCtx, cancel := context.WithTimeout(ctx, p.Hold)
	defer cancel()
	system.StartExitOnKeys(holdCtx, p.Logger, cancel, system.KeyEsc, system.KeyF4)
	<-holdCtx.Done()
	return nil
}

// blitToFB letterboxes img onto dst with nearest-neighbor scaling.
func blitToFB(dst draw.Image, img image.Image) {
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, &image.Uniform{C: Black}, image.Point{}, draw.Src)
	target := layout.Fit(bounds, img.Bounds().Dx(), img.Bounds().Dy())
	xdraw.NearestNeighbor.Scale(dst, target, img, img.Bounds(), xdraw.Src, nil)
}
