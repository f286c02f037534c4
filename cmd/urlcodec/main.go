package main

import (
	"os"

	"github.com/ghettovoice/urlcodec/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	rootCmd.AddCommand(
		cmd.NewEncodeCommand(),
		cmd.NewDecodeCommand(),
		cmd.NewParseCommand(),
		cmd.NewBatchCommand(),
		cmd.NewInspectCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
