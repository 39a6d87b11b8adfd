package poll

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.klb.dev/flatclip/internal/clip"
	"go.klb.dev/flatclip/internal/handler"
)

type scripted struct {
	results []handler.Result
	calls   atomic.Int64
}

func (s *scripted) Tick() handler.Result {
	n := s.calls.Add(1) - 1
	return s.results[int(n)%len(s.results)]
}

func TestNewRejectsNonPositiveInterval(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Millisecond} {
		if _, err := New(&scripted{}, d); err == nil {
			t.Errorf("New(_, %v) succeeded, want error", d)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	h := &scripted{results: []handler.Result{{Kind: handler.CacheHit}}}
	d, err := New(h, time.Millisecond, WithObserver(func(handler.Result) {}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if h.calls.Load() == 0 {
		t.Error("handler never ticked")
	}
}

func TestRunCountsResults(t *testing.T) {
	h := &scripted{results: []handler.Result{
		{Kind: handler.Updated, Text: "a b"},
		{Kind: handler.CacheHit},
		{Kind: handler.NoContentChange},
		{Kind: handler.Error, Err: &handler.ReadError{Err: errors.New("boom")}},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var seen []handler.Kind
	d, err := New(h, time.Millisecond, WithObserver(func(r handler.Result) {
		seen = append(seen, r.Kind)
		if len(seen) == 8 {
			cancel()
		}
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := Stats{Ticks: 8, CacheHits: 2, Unchanged: 2, Updated: 2, Errors: 2}
	if got := d.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
	if seen[0] != handler.Updated || seen[3] != handler.Error {
		t.Errorf("observer saw %v", seen)
	}
}

func TestRunWithHandlerAndMemory(t *testing.T) {
	buf := clip.NewMemory("\ntest\r\ntest")
	h := handler.New(buf)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks int
	d, err := New(h, time.Millisecond, WithObserver(func(r handler.Result) {
		ticks++
		if ticks == 3 {
			buf.Set("next\nline")
		}
		if ticks == 6 {
			cancel()
		}
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := buf.Text(); got != "next line" {
		t.Errorf("clipboard = %q, want %q", got, "next line")
	}
	if buf.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", buf.Writes())
	}
	st := d.Stats()
	if st.Updated != 2 || st.CacheHits != 4 {
		t.Errorf("Stats() = %+v, want 2 updates and 4 cache hits", st)
	}
}

func TestRunSurvivesErrors(t *testing.T) {
	buf := clip.NewMemory("a\nb")
	buf.FailReads(errors.New("locked"))
	h := handler.New(buf)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks int
	d, _ := New(h, time.Millisecond, WithObserver(func(r handler.Result) {
		ticks++
		if ticks == 3 {
			buf.FailReads(nil)
		}
		if r.Kind == handler.Updated {
			cancel()
		}
	}))
	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st := d.Stats(); st.Errors != 3 || st.Updated != 1 {
		t.Errorf("Stats() = %+v, want 3 errors then 1 update", st)
	}
	if got := buf.Text(); got != "a b" {
		t.Errorf("clipboard = %q, want %q", got, "a b")
	}
}

func TestInterval(t *testing.T) {
	d, err := New(&scripted{}, 250*time.Millisecond)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Interval() != 250*time.Millisecond {
		t.Errorf("Interval() = %v", d.Interval())
	}
}
