package config

import (
	"testing"
	"time"

	"github.com/primemeridian/ogimage/internal/render"
	"github.com/tdewolff/test"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{EnvOutput, EnvFontBold, EnvFontRegular, EnvQuality, EnvDebug, EnvStdioLog, EnvFBDevice, EnvFBHold} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	test.Error(t, err)
	test.T(t, cfg.OutputPath, "prime-meridian-og.png")
	test.T(t, cfg.Fonts, render.DefaultFontPaths)
	test.T(t, cfg.Quality, 95)
	test.T(t, cfg.Debug, false)
	test.T(t, cfg.FBDevice, "")
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvOutput, "out/card.png")
	t.Setenv(EnvFontBold, "/fonts/b.ttf")
	t.Setenv(EnvFontRegular, "/fonts/r.ttf")
	t.Setenv(EnvQuality, "40")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvFBDevice, "/dev/fb1")
	t.Setenv(EnvFBHold, "3s")

	cfg, err := FromEnv()
	test.Error(t, err)
	test.T(t, cfg.OutputPath, "out/card.png")
	test.T(t, cfg.Fonts, render.FontPaths{Bold: "/fonts/b.ttf", Regular: "/fonts/r.ttf"})
	test.T(t, cfg.Quality, 40)
	test.T(t, cfg.Debug, true)
	test.T(t, cfg.FBDevice, "/dev/fb1")
	test.T(t, cfg.FBHold, 3*time.Second)
}

func TestFromEnvInvalid(t *testing.T) {
	var tests = []struct {
		key, value string
	}{
		{EnvQuality, "high"},
		{EnvQuality, "0"},
		{EnvQuality, "101"},
		{EnvDebug, "maybe"},
		{EnvFBHold, "-1s"},
		{EnvFBHold, "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			test.That(t, err != nil, "expected error")
		})
	}
}
