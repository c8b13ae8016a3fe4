package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/tdewolff/test"
)

func TestFileLogger(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	log := FileLogger{w: &buf, now: func() time.Time { return at }}

	log.Infof("app", "wrote %s", "card.png")
	log.Errorf("fonts", "missing %d faces", 2)

	test.T(t, buf.String(), "2026-03-01T12:30:00Z [INFO] app: wrote card.png\n"+
		"2026-03-01T12:30:00Z [ERROR] fonts: missing 2 faces\n")
}

func TestNoopLogger(t *testing.T) {
	var log Logger = NoopLogger{}
	log.Infof("app", "ignored %d", 1)
	log.Errorf("app", "ignored")
}
