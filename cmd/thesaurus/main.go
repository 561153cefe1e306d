package main

import (
	"os"

	"github.com/spf13/cobra"

	"thesaurus/internal/cli"
)

func main() {
	flags := cli.NewFlags()

	rootCmd := cli.CreateRootCommand(flags, cli.OpenSession)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
