package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghettovoice/urlcodec/internal/ioutil"
	"github.com/ghettovoice/urlcodec/uri"
)

// NewParseCommand returns the command that splits a URL into its components.
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [url]",
		Short: "Parse a URL into its components",
		Long: `Parse a URL into scheme, host, port, path, query parameters and fragment.
A URL without a scheme is parsed as https. Reads stdin when no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
		PreRun: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()

			mustBindPFlag(rebuildConf, flags.Lookup(rebuildFlag))
			mustBindPFlag(jsonConf, flags.Lookup(jsonFlag))
		},
	}

	flags := cmd.Flags()
	flags.BoolP(rebuildFlag, "r", false, "print the canonical rebuilt URL instead of the components")
	flags.Bool(jsonFlag, false, "print the components as JSON")

	// NOTE: if you add a new flag here, add the binding in PreRun

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	ins, err := readInput(cmd, args)
	if err != nil {
		return errtrace.Wrap(err)
	}

	u, err := uri.Parse(ins[0])
	if err != nil {
		return errtrace.Wrap(err)
	}
	if u == nil {
		return nil
	}

	out := cmd.OutOrStdout()
	switch {
	case viper.GetBool(rebuildConf):
		_, err = fmt.Fprintln(out, u.String())
	case viper.GetBool(jsonConf):
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode((*urlFields)(u))
	default:
		err = printURL(out, u)
	}
	return errtrace.Wrap(err)
}

// urlFields drops the text marshaling of [uri.URL], so it is encoded as an object.
type urlFields uri.URL

func printURL(w io.Writer, u *uri.URL) error {
	cw := ioutil.NewCountingWriter(w)
	cw.Fprintf("scheme: %s\n", u.Scheme)
	cw.Fprintf("host: %s (%s)\n", u.Host, u.HostKind())
	if u.Port != "" {
		cw.Fprintf("port: %s\n", u.Port)
	}
	cw.Fprintf("path: %s\n", u.Path)
	for _, p := range u.Params {
		cw.Fprintf("param: %s=%q\n", p.Key, p.Value)
	}
	if u.Fragment != "" {
		cw.Fprintf("fragment: %s\n", u.Fragment)
	}
	cw.Fprintf("url: %s\n", u)

	_, err := cw.Result()
	return errtrace.Wrap(err)
}
