// Package clip provides plain-text access to the system clipboard. Backends
// are selected by name:
//
//	native  — golang.design/x/clipboard (cgo on macOS and Linux/X11)
//	exec    — github.com/atotto/clipboard, shells out to pbcopy/xclip/xsel/wl-copy
//	memory  — in-process buffer that starts empty; the test double
package clip

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoText is returned by Read when the clipboard is empty or holds no
// text representation.
var ErrNoText = errors.New("clipboard holds no text")

// Buffer is the interface that all clipboard backends satisfy.
type Buffer interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Read returns the current clipboard text.
	Read() (string, error)

	// Write replaces the clipboard contents with text.
	Write(text string) error

	// Close releases any resources held by the backend.
	Close()
}

// DefaultBackend is used when no backend is configured.
const DefaultBackend = "native"

var backends = map[string]func() Buffer{
	"native": newNative,
	"exec":   newExec,
	"memory": func() Buffer { return NewMemory("") },
}

// New returns the backend registered under name. An empty name selects
// DefaultBackend.
func New(name string) (Buffer, error) {
	if name == "" {
		name = DefaultBackend
	}
	ctor, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown clipboard backend %q (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns the registered backend names in sorted order.
func Names() []string {
	out := make([]string, 0, len(backends))
	for name := range backends {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
