// flatclip: keep the clipboard on one line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "flatclip",
		Short: "Collapse multi-line clipboard text into a single line",
		Long: `flatclip watches the system clipboard and rewrites any text containing
line breaks (CRLF, LF or CR) into a single line, each break replaced by one
space. Pasting into chat inputs and terminals then no longer sends a message
or runs a command halfway through.

Run "flatclip watch" to start the watcher. Use "flatclip flatten" as a
stdin/stdout filter with the same rule.

Config file search order (first found wins):
  /etc/flatclip/flatclip.toml
  $HOME/.config/flatclip/flatclip.toml
  path supplied via --config

All flags can be set via FLATCLIP_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newWatchCmd(),
		newFlattenCmd(),
		newBackendsCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "flatclip %s\n", Version)
		},
	}
}
