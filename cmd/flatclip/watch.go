package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/flatclip/internal/clip"
	"go.klb.dev/flatclip/internal/flatten"
	"go.klb.dev/flatclip/internal/handler"
	"go.klb.dev/flatclip/internal/poll"
)

const defaultIntervalMS = 500

func newWatchCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the clipboard and flatten multi-line text",
		Long: `Polls the system clipboard every --interval milliseconds. When new text
containing line breaks appears, it is rewritten with each break replaced by a
single space and outer whitespace trimmed (disable trimming with --no-trim).

Text written back by flatclip is remembered, so it is not processed again.
Read and write failures are logged and polling continues. If a write fails,
that text is not retried until the clipboard changes again.

Stops cleanly on SIGINT/SIGTERM.

Precedence (lowest → highest): defaults → config file → FLATCLIP_* env vars → flags`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runWatch(cmd.Context(), v) },
	}

	f := cmd.Flags()
	f.Int("interval", defaultIntervalMS, "poll interval in milliseconds")
	f.String("backend", clip.DefaultBackend, fmt.Sprintf("clipboard backend: %v", clip.Names()))
	f.Bool("no-trim", false, "keep leading/trailing whitespace after replacing line breaks")
	f.Bool("skip-initial", false, "leave text already on the clipboard at startup untouched")
	addLoggingFlags(f)
	addConfigFlag(f)

	return cmd
}

func runWatch(ctx context.Context, v *viper.Viper) error {
	setupLogging(v)

	interval := time.Duration(v.GetInt("interval")) * time.Millisecond
	backendName := v.GetString("backend")
	norm := flatten.Normalizer{Trim: !v.GetBool("no-trim")}

	buf, err := clip.New(backendName)
	if err != nil {
		return err
	}
	defer buf.Close()

	h := handler.New(buf, handler.WithNormalizer(norm))
	d, err := poll.New(h, interval)
	if err != nil {
		return err
	}

	slog.Info("flatclip starting",
		"version", Version,
		"backend", buf.Name(),
		"interval", d.Interval(),
		"trim", norm.Trim,
	)

	if v.GetBool("skip-initial") {
		if err := h.Prime(); err != nil {
			slog.Warn("could not read initial clipboard", "err", err)
		} else {
			slog.Debug("initial clipboard cached")
		}
	}

	if err := d.Run(ctx); err != nil {
		return err
	}

	st := d.Stats()
	slog.Info("flatclip stopped",
		"ticks", st.Ticks,
		"updated", st.Updated,
		"unchanged", st.Unchanged,
		"cache_hits", st.CacheHits,
		"errors", st.Errors,
	)
	return nil
}
