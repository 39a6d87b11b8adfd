package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/flatclip/internal/flatten"
)

func newFlattenCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Flatten stdin to a single line on stdout",
		Long: `Reads stdin, replaces every line break with a single space using the same
rule as "flatclip watch", and writes the result to stdout.

  pbpaste | flatclip flatten | pbcopy`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runFlatten(cmd, v) },
	}

	f := cmd.Flags()
	f.Bool("no-trim", false, "keep leading/trailing whitespace after replacing line breaks")
	f.BoolP("newline", "n", false, "terminate output with a newline")
	addConfigFlag(f)

	return cmd
}

func runFlatten(cmd *cobra.Command, v *viper.Viper) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	out := flatten.Normalizer{Trim: !v.GetBool("no-trim")}.Apply(string(data))
	if v.GetBool("newline") {
		out += "\n"
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}
