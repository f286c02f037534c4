package cmd

import (
	"fmt"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/urlcodec/percent"
)

// NewEncodeCommand returns the command that percent-encodes its arguments or stdin.
func NewEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [text...]",
		Short: "Percent-encode text",
		Long: `Percent-encode every argument, or the whole stdin when there are no arguments.
Each input is printed encoded on its own line.`,
		RunE: runEncode,
	}
}

func runEncode(cmd *cobra.Command, args []string) error {
	mode, sp, err := codecConfig()
	if err != nil {
		return errtrace.Wrap(err)
	}
	ins, err := readInput(cmd, args)
	if err != nil {
		return errtrace.Wrap(err)
	}

	out := cmd.OutOrStdout()
	for _, in := range ins {
		fmt.Fprintln(out, percent.Encode(in, mode, sp))
	}
	return nil
}
