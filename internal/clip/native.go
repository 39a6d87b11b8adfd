//go:build darwin || windows || linux

package clip

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.design/x/clipboard"
)

// errWriteRejected is returned when golang.design/x/clipboard hands back a
// nil change channel, which it does on any platform write failure.
var errWriteRejected = errors.New("clipboard write rejected")

type nativeBuffer struct {
	initErr error
}

// newNative returns the golang.design/x/clipboard backend. clipboard.Init is
// called here rather than in init() so that sub-commands which never touch
// the clipboard don't log spurious warnings on headless systems. An init
// failure is reported by every Read and Write instead of aborting startup.
func newNative() Buffer {
	b := &nativeBuffer{}
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard init failed", "err", err)
		b.initErr = fmt.Errorf("clipboard init: %w", err)
	}
	return b
}

func (b *nativeBuffer) Name() string { return "native (golang.design/x/clipboard)" }

func (b *nativeBuffer) Read() (string, error) {
	if b.initErr != nil {
		return "", b.initErr
	}
	text := clipboard.Read(clipboard.FmtText)
	if len(text) == 0 {
		return "", ErrNoText
	}
	return string(text), nil
}

func (b *nativeBuffer) Write(text string) error {
	if b.initErr != nil {
		return b.initErr
	}
	if clipboard.Write(clipboard.FmtText, []byte(text)) == nil {
		return errWriteRejected
	}
	return nil
}

func (b *nativeBuffer) Close() {}
