//go:build !linux

package system

import (
	"context"
	"errors"
)

var errNoConsole = errors.New("virtual console control is only supported on linux")

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

func SetGraphicsMode() error { return errNoConsole }
func RestoreTextMode() error { return errNoConsole }
func HideCursor() error      { return errNoConsole }
func ShowCursor() error      { return errNoConsole }

// StartExitOnKeys is a no-op without evdev.
func StartExitOnKeys(ctx context.Context, logger logger, onExit func(), keys ...uint16) {}
