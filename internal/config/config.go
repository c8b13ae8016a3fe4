package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/primemeridian/ogimage/internal/render"
)

const (
	EnvOutput      = "OGIMAGE_OUTPUT"
	EnvFontBold    = "OGIMAGE_FONT_BOLD"
	EnvFontRegular = "OGIMAGE_FONT_REGULAR"
	EnvQuality     = "OGIMAGE_QUALITY"
	EnvDebug       = "OGIMAGE_DEBUG"
	EnvStdioLog    = "OGIMAGE_STDIO_LOG"
	EnvFBDevice    = "OGIMAGE_FB_DEVICE"
	EnvFBHold      = "OGIMAGE_FB_HOLD"

	DefaultOutput   = "prime-meridian-og.png"
	DefaultDebugLog = "./ogimage-debug.log"
)

// Config contains settings for one generator run.
//
// Every field has a default; with no environment set the generator writes
// DefaultOutput using the DejaVu fonts and no preview.
type Config struct {
	OutputPath string
	Fonts      render.FontPaths
	Quality    int

	Debug    bool
	DebugLog string
	StdioLog string

	// FBDevice, when set, shows the result on that framebuffer after writing.
	FBDevice string
	FBHold   time.Duration
}

func Default() Config {
	return Config{
		OutputPath: DefaultOutput,
		Fonts:      render.DefaultFontPaths,
		Quality:    render.DefaultQuality,
		DebugLog:   DefaultDebugLog,
		FBHold:     render.DefaultPreviewHold,
	}
}

// FromEnv overlays the OGIMAGE_* variables on Default.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvOutput); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv(EnvFontBold); v != "" {
		cfg.Fonts.Bold = v
	}
	if v := os.Getenv(EnvFontRegular); v != "" {
		cfg.Fonts.Regular = v
	}
	if raw := os.Getenv(EnvQuality); raw != "" {
		q, err := strconv.Atoi(raw)
		if err != nil || q < 1 || q > 100 {
			return Config{}, fmt.Errorf("%s must be an integer in 1..100 (got %q)", EnvQuality, raw)
		}
		cfg.Quality = q
	}
	if raw := os.Getenv(EnvDebug); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, raw, err)
		}
		cfg.Debug = parsed
	}
	cfg.StdioLog = os.Getenv(EnvStdioLog)
	cfg.FBDevice = os.Getenv(EnvFBDevice)
	if raw := os.Getenv(EnvFBHold); raw != "" {
		hold, err := time.ParseDuration(raw)
		if err != nil || hold <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive duration (got %q)", EnvFBHold, raw)
		}
		cfg.FBHold = hold
	}

	return cfg, nil
}
