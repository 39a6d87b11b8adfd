//go:build !darwin && !windows && !linux

package clip

import "errors"

var errNativeUnsupported = errors.New("native clipboard not supported on this platform")

// headlessBuffer stands in for the native backend where
// golang.design/x/clipboard has no implementation. Every access fails, so the
// watcher logs and keeps polling rather than exiting.
type headlessBuffer struct{}

func newNative() Buffer { return headlessBuffer{} }

func (headlessBuffer) Name() string          { return "headless (unsupported)" }
func (headlessBuffer) Read() (string, error) { return "", errNativeUnsupported }
func (headlessBuffer) Write(_ string) error  { return errNativeUnsupported }
func (headlessBuffer) Close()                {}
