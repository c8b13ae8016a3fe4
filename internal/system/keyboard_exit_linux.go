//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

const evKey = 0x01

// StartExitOnKeys watches Linux evdev devices under /dev/input/event* and invokes onExit
// once when any of keys is pressed.
//
// It is best-effort: if no input devices are available, it logs and returns.
func StartExitOnKeys(ctx context.Context, logger logger, onExit func(), keys ...uint16) {
	if onExit == nil || len(keys) == 0 {
		return
	}

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if logger != nil {
			logger.Infof("input", "no evdev devices found for key exit")
		}
		return
	}

	var once sync.Once
	triggerExit := func() {
		once.Do(func() {
			if logger != nil {
				logger.Infof("input", "exit key pressed")
			}
			onExit()
		})
	}

	layout := newEventLayout()
	for _, path := range paths {
		go watchDevice(ctx, path, layout, keys, triggerExit)
	}
}

// eventLayout describes struct input_event: timeval + u16 type + u16 code + s32 value.
type eventLayout struct {
	tvSize int
	size   int
}

func newEventLayout() eventLayout {
	tvSize := binary.Size(unix.Timeval{})
	if tvSize <= 0 {
		tvSize = 16
	}
	return eventLayout{tvSize: tvSize, size: tvSize + 2 + 2 + 4}
}

// keyDown reports whether buf holds a key-press record for one of keys.
func (l eventLayout) keyDown(buf []byte, keys []uint16) bool {
	for off := 0; off+l.size <= len(buf); off += l.size {
		rec := buf[off : off+l.size]
		typ := binary.LittleEndian.Uint16(rec[l.tvSize : l.tvSize+2])
		code := binary.LittleEndian.Uint16(rec[l.tvSize+2 : l.tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[l.tvSize+4 : l.tvSize+8]))
		if typ != evKey || value != 1 {
			continue
		}
		for _, k := range keys {
			if code == k {
				return true
			}
		}
	}
	return false
}

func watchDevice(ctx context.Context, path string, layout eventLayout, keys []uint16, trigger func()) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if layout.keyDown(buf[:n], keys) {
			trigger()
			// Give the caller a moment to unwind; then stop reading.
			time.Sleep(50 * time.Millisecond)
			return
		}
	}
}
