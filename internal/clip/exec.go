package clip

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errExecUnsupported = errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard)")

// execBuffer uses github.com/atotto/clipboard, which runs pbcopy/pbpaste on
// macOS, xclip/xsel/wl-clipboard on Unix and the Win32 API on Windows. It
// needs no cgo.
type execBuffer struct{}

func newExec() Buffer { return execBuffer{} }

func (execBuffer) Name() string { return "exec (github.com/atotto/clipboard)" }

func (execBuffer) Read() (string, error) {
	if clipboard.Unsupported {
		return "", errExecUnsupported
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func (execBuffer) Write(text string) error {
	if clipboard.Unsupported {
		return errExecUnsupported
	}
	return clipboard.WriteAll(text)
}

func (execBuffer) Close() {}
