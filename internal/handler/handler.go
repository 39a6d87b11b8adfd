// Package handler detects clipboard changes and rewrites multi-line text
// into a single line.
//
// A Handler keeps one cached copy of the text it last saw or wrote. Each
// Tick reads the clipboard, skips text equal to the cache, flattens anything
// new and writes it back. The written text becomes the cache, so the next
// Tick reads its own write as a cache hit instead of a fresh change.
package handler

import (
	"go.klb.dev/flatclip/internal/clip"
	"go.klb.dev/flatclip/internal/flatten"
)

// Handler owns the change cache for a single clipboard. It is not safe for
// concurrent use; the poll driver calls Tick from one goroutine.
type Handler struct {
	buf  clip.Buffer
	norm flatten.Normalizer

	cached   string
	hasCache bool
}

// Option configures a Handler.
type Option func(*Handler)

// WithNormalizer replaces flatten.Default.
func WithNormalizer(n flatten.Normalizer) Option {
	return func(h *Handler) { h.norm = n }
}

// New returns a Handler over buf with an empty cache.
func New(buf clip.Buffer, opts ...Option) *Handler {
	h := &Handler{buf: buf, norm: flatten.Default}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Prime seeds the cache with the current clipboard text without rewriting
// it, so content present at startup is left alone.
func (h *Handler) Prime() error {
	text, err := h.buf.Read()
	if err != nil {
		return &ReadError{Err: err}
	}
	h.remember(text)
	return nil
}

// Cached returns the cached text and whether the cache is set.
func (h *Handler) Cached() (string, bool) {
	return h.cached, h.hasCache
}

// Tick runs one read → compare → flatten → write cycle.
func (h *Handler) Tick() Result {
	text, err := h.buf.Read()
	if err != nil {
		return Result{Kind: Error, Err: &ReadError{Err: err}}
	}
	if h.hasCache && text == h.cached {
		return Result{Kind: CacheHit}
	}

	// Cache before writing: a failed write must not cause the same text to
	// be processed again on every tick.
	h.remember(text)

	flat := h.norm.Apply(text)
	if flat == text {
		return Result{Kind: NoContentChange}
	}

	if err := h.buf.Write(flat); err != nil {
		return Result{Kind: Error, Err: &WriteError{Err: err}}
	}
	h.remember(flat)
	return Result{Kind: Updated, Text: flat, Breaks: flatten.CountBreaks(text)}
}

func (h *Handler) remember(text string) {
	h.cached = text
	h.hasCache = true
}
