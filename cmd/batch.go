package cmd

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghettovoice/urlcodec/batch"
	"github.com/ghettovoice/urlcodec/log"
)

// NewBatchCommand returns the command that encodes or decodes stdin line by line.
func NewBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Encode or decode stdin line by line",
		Long: fmt.Sprintf(`Encode or decode every line of stdin independently.

At most %d lines are processed. A line that fails to decode is replaced with
an error marker, the remaining lines are still processed. A summary is written to stderr.`, batch.MaxLines),
		Args: cobra.NoArgs,
		RunE: runBatch,
		PreRun: func(cmd *cobra.Command, _ []string) {
			mustBindPFlag(decodeConf, cmd.Flags().Lookup(decodeFlag))
		},
	}

	cmd.Flags().BoolP(decodeFlag, "d", false, "decode lines instead of encoding them")

	// NOTE: if you add a new flag here, add the binding in PreRun

	return cmd
}

func runBatch(cmd *cobra.Command, _ []string) error {
	mode, sp, err := codecConfig()
	if err != nil {
		return errtrace.Wrap(err)
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return errtrace.Wrap(err)
	}

	dir := batch.Encode
	if viper.GetBool(decodeConf) {
		dir = batch.Decode
	}
	lines := batch.SplitLines(string(data))
	res := batch.Run(lines, &batch.Options{
		Direction: dir,
		Mode:      mode,
		Space:     sp,
		Log:       log.Default(),
	})

	out := cmd.OutOrStdout()
	for _, ln := range res.Lines {
		fmt.Fprintln(out, ln.Output)
	}

	stderr := cmd.ErrOrStderr()
	if len(lines) > batch.MaxLines {
		fmt.Fprintf(stderr, "warning: only the first %d of %d lines were processed\n", batch.MaxLines, len(lines))
	}
	fmt.Fprintf(stderr, "%d lines: %d ok, %d failed\n", res.Total, res.OK, res.Failed)
	return nil
}
