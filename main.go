package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/primemeridian/ogimage/internal/app"
	"github.com/primemeridian/ogimage/internal/config"
	"github.com/primemeridian/ogimage/internal/render"
	"github.com/primemeridian/ogimage/internal/state"
	"github.com/primemeridian/ogimage/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	// Best-effort: a broken stdio log must not stop the image from being written.
	if err := system.RedirectStdIO(cfg.StdioLog); err != nil {
		fmt.Println("stdio log redirect error:", err)
	}

	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		f, err := os.OpenFile(cfg.DebugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := app.New(cfg, state.NewStore())
	a.Logger = logger
	if cfg.FBDevice != "" {
		preview := render.NewFBPreview(cfg.FBDevice, cfg.FBHold)
		preview.Logger = logger
		a.Preview = preview
	}

	if err := a.Run(ctx); err != nil {
		return err
	}
	fmt.Println("OG image created successfully:", cfg.OutputPath)
	return nil
}
