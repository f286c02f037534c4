package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghettovoice/urlcodec/internal/errorutil"
	"github.com/ghettovoice/urlcodec/internal/util"
	"github.com/ghettovoice/urlcodec/log"
	"github.com/ghettovoice/urlcodec/percent"
)

// ErrUnknownTimes is returned by the decode command for an unknown --times value.
const ErrUnknownTimes errorutil.Error = "unknown decode times"

// NewDecodeCommand returns the command that percent-decodes its arguments or stdin.
func NewDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [text...]",
		Short: "Percent-decode text",
		Long: `Percent-decode every argument, or the whole stdin when there are no arguments.

Malformed input is decoded on a best-effort basis: the partial result is printed
and a warning is written to stderr.`,
		RunE: runDecode,
		PreRun: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()

			mustBindPFlag(timesConf, flags.Lookup(timesFlag))
			mustBindPFlag(maxIterConf, flags.Lookup(maxIterFlag))
		},
	}

	flags := cmd.Flags()
	flags.StringP(timesFlag, "t", "once", "how many times to decode (once, twice, full)")
	flags.Int(maxIterFlag, percent.MaxDecodeIterations, "the maximum number of passes with --times=full")

	// NOTE: if you add a new flag here, add the binding in PreRun

	return cmd
}

type decodeFunc func(s string, sp percent.SpacePolicy) (string, error)

func decoderFor(times string, maxIter int) (decodeFunc, error) {
	switch util.LCase(util.TrimSP(times)) {
	case "once", "1", "":
		return percent.DecodeOnce, nil
	case "twice", "2":
		return percent.DecodeTwice, nil
	case "full", "fully":
		return func(s string, sp percent.SpacePolicy) (string, error) {
			return percent.DecodeFullyN(s, sp, maxIter), nil
		}, nil
	}
	return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownTimes, "%q", times))
}

func runDecode(cmd *cobra.Command, args []string) error {
	_, sp, err := codecConfig()
	if err != nil {
		return errtrace.Wrap(err)
	}
	decode, err := decoderFor(viper.GetString(timesConf), viper.GetInt(maxIterConf))
	if err != nil {
		return errtrace.Wrap(err)
	}
	ins, err := readInput(cmd, args)
	if err != nil {
		return errtrace.Wrap(err)
	}

	out := cmd.OutOrStdout()
	for _, in := range ins {
		res, err := decode(in, sp)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v, showing partial result\n", err)
			log.Default().LogAttrs(context.Background(), slog.LevelDebug, "decode failed",
				slog.Any("input", log.StringValue(in, 80)),
				slog.Any("error", err),
			)
		}
		fmt.Fprintln(out, res)
	}
	return nil
}
