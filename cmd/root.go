// Package cmd contains all the commands included in the urlcodec binary.
package cmd

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghettovoice/urlcodec/log"
	"github.com/ghettovoice/urlcodec/percent"
)

// NewRootCommand enables all children commands to read flags from CLI flags,
// environment variables prefixed with URLCODEC, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("URLCODEC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/urlcodec", "$HOME/.urlcodec", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}
	// a missing config file is not an error, flags and env still apply
	_ = viper.ReadInConfig()

	cmd := &cobra.Command{
		Use:   "urlcodec",
		Short: "Percent-encode, decode and parse URLs",
		Long: `Percent-encode, decode and parse URLs.

urlcodec implements RFC 3986 percent-encoding of UTF-8 text in several modes,
best-effort decoding of malformed input, detection and resolution of
double-encoded text, and component-wise URL parsing and rebuilding.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}

	flags := cmd.PersistentFlags()
	flags.String(logFormatFlag, "console", "the log format to output logs in (console, dev, json, none)")
	mustBindPFlag(logFormatConf, flags.Lookup(logFormatFlag))

	flags.String(logLevelFlag, "info", "the log level to use")
	mustBindPFlag(logLevelConf, flags.Lookup(logLevelFlag))

	modes := make([]string, 0, len(percent.Modes()))
	for _, m := range percent.Modes() {
		modes = append(modes, m.String())
	}
	flags.StringP(modeFlag, "m", defaultMode, "the encoding mode ("+strings.Join(modes, ", ")+")")
	mustBindPFlag(modeConf, flags.Lookup(modeFlag))

	flags.StringP(spaceFlag, "s", "percent", "the space policy (percent, plus)")
	mustBindPFlag(spaceConf, flags.Lookup(spaceFlag))

	return cmd
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	l, err := log.New(cmd.ErrOrStderr(), viper.GetString(logFormatConf), viper.GetString(logLevelConf))
	if err != nil {
		return errtrace.Wrap(err)
	}
	log.SetDefault(l)
	return nil
}
