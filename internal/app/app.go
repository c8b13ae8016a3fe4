package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/primemeridian/ogimage/internal/card"
	"github.com/primemeridian/ogimage/internal/config"
	"github.com/primemeridian/ogimage/internal/render"
	"github.com/primemeridian/ogimage/internal/state"
)

// Previewer shows a finished card somewhere other than the output file.
type Previewer interface {
	Show(ctx context.Context, img image.Image) error
}

type App struct {
	Config  config.Config
	Store   *state.Store
	Logger  Logger
	Preview Previewer

	// Outline faces keep per-face glyph caches, so renders are serialized.
	mu        sync.Mutex
	fonts     render.FontSet
	fontsOnce sync.Once
}

func New(cfg config.Config, store *state.Store) *App {
	if store == nil {
		store = state.NewStore()
	}
	return &App{Config: cfg, Store: store, Logger: NoopLogger{}}
}

func (app *App) logger() Logger {
	if app.Logger == nil {
		return NoopLogger{}
	}
	return app.Logger
}

// Fonts resolves the font set on first use and reuses it afterwards.
func (app *App) Fonts() render.FontSet {
	app.fontsOnce.Do(func() {
		app.fonts = render.LoadFontSet(app.Config.Fonts, app.logger())
	})
	return app.fonts
}

// Compose draws the card onto a new canvas.
func (app *App) Compose() *render.Canvas {
	app.mu.Lock()
	defer app.mu.Unlock()
	return card.Compose(app.Fonts())
}

// Run renders the card to Config.OutputPath, then shows the preview if one
// is configured. Preview failures are logged, not returned.
func (app *App) Run(ctx context.Context) error {
	if app.Config.OutputPath == "" {
		return errors.New("output path not configured")
	}
	app.Store.SetPhase(state.RENDERING)

	canvas := app.Compose()
	n, err := render.SavePNG(app.Config.OutputPath, canvas.Image(), app.quality())
	info := state.RenderInfo{Path: app.Config.OutputPath, BytesWritten: n, FallbackFonts: canvas.Fonts().Fallback}
	if err != nil {
		info.Err = err.Error()
		app.Store.Finish(info)
		app.logger().Errorf("app", "render failed: %v", err)
		return err
	}
	app.Store.Finish(info)
	app.logger().Infof("app", "wrote %s (%d bytes, fallback fonts: %t)", info.Path, n, info.FallbackFonts)

	if app.Preview != nil {
		if err := app.Preview.Show(ctx, canvas.Image()); err != nil {
			app.logger().Errorf("fb", "preview failed: %v", err)
		}
	}
	return nil
}

// WritePNG renders the card and encodes it to w without touching the output file.
func (app *App) WritePNG(w io.Writer) (int64, error) {
	app.Store.SetPhase(state.RENDERING)
	canvas := app.Compose()
	n, err := render.EncodePNG(w, canvas.Image(), app.quality())
	info := state.RenderInfo{BytesWritten: n, FallbackFonts: canvas.Fonts().Fallback}
	if err != nil {
		err = fmt.Errorf("encode png: %w", err)
		info.Err = err.Error()
	}
	app.Store.Finish(info)
	return n, err
}

func (app *App) quality() int {
	if app.Config.Quality <= 0 {
		return render.DefaultQuality
	}
	return app.Config.Quality
}
