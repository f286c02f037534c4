package cmd

import (
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ghettovoice/urlcodec/percent"
)

const (
	logFormatFlag = "log-format"
	logFormatConf = "log.format"
	logLevelFlag  = "log-level"
	logLevelConf  = "log.level"

	modeFlag    = "mode"
	modeConf    = "mode"
	defaultMode = "component"
	spaceFlag   = "space"
	spaceConf   = "space"

	timesFlag   = "times"
	timesConf   = "decode.times"
	maxIterFlag = "max-iter"
	maxIterConf = "decode.maxIter"

	rebuildFlag = "rebuild"
	rebuildConf = "parse.rebuild"
	jsonFlag    = "json"
	jsonConf    = "parse.json"

	decodeFlag = "decode"
	decodeConf = "batch.decode"
)

// mustBindPFlag attempts to bind a specific key to a pflag (as used by cobra) and panics
// if the binding fails with a non-nil error.
func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

func codecConfig() (percent.Mode, percent.SpacePolicy, error) {
	mode, err := percent.ParseMode(viper.GetString(modeConf))
	if err != nil {
		return nil, 0, errtrace.Wrap(err)
	}
	sp, err := percent.ParseSpacePolicy(viper.GetString(spaceConf))
	if err != nil {
		return nil, 0, errtrace.Wrap(err)
	}
	return mode, sp, nil
}

// readInput returns args, or the whole stdin as a single input when there are no args.
func readInput(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []string{strings.TrimRight(string(data), "\r\n")}, nil
}
