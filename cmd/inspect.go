package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghettovoice/urlcodec/log"
	"github.com/ghettovoice/urlcodec/percent"
)

// NewInspectCommand returns the command that checks text for double-encoding and resolves it.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [text...]",
		Short: "Detect and resolve double-encoded text",
		Long: `Check every argument (or the whole stdin) for double-encoding and decode it
repeatedly until it stops changing, fails or the pass limit is reached.

Double-encoding detection is a heuristic: "%25" followed by two hex digits
is reported even when the text is legitimately single-encoded.`,
		RunE: runInspect,
		PreRun: func(cmd *cobra.Command, _ []string) {
			mustBindPFlag(maxIterConf, cmd.Flags().Lookup(maxIterFlag))
		},
	}

	cmd.Flags().Int(maxIterFlag, percent.MaxDecodeIterations, "the maximum number of decode passes")

	// NOTE: if you add a new flag here, add the binding in PreRun

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	_, sp, err := codecConfig()
	if err != nil {
		return errtrace.Wrap(err)
	}
	ins, err := readInput(cmd, args)
	if err != nil {
		return errtrace.Wrap(err)
	}

	out := cmd.OutOrStdout()
	for i, in := range ins {
		if i > 0 {
			fmt.Fprintln(out)
		}

		res := percent.Resolve(in, sp, viper.GetInt(maxIterConf))
		log.Default().LogAttrs(context.Background(), slog.LevelDebug, "resolved input",
			slog.Any("input", log.StringValue(in, 80)),
			slog.Any("resolution", log.FmtValue(res, false)),
		)
		fmt.Fprintf(out, "input: %s\n", in)
		fmt.Fprintf(out, "double-encoded: %t\n", percent.IsDoubleEncoded(in))
		fmt.Fprintf(out, "passes: %d\n", res.Passes)
		fmt.Fprintf(out, "stop: %s\n", res.Stop)
		if res.Err != nil {
			fmt.Fprintf(out, "error: %v\n", res.Err)
		}
		fmt.Fprintf(out, "result: %s\n", res.Text)
	}
	return nil
}
