package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.klb.dev/flatclip/internal/clip"
)

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List available clipboard backends",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			for _, name := range clip.Names() {
				marker := ""
				if name == clip.DefaultBackend {
					marker = " (default)"
				}
				fmt.Fprintf(w, "%s%s\n", name, marker)
			}
		},
	}
}
