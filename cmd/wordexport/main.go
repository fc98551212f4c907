package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/wordexport/internal/cli"
	"codeberg.org/snonux/wordexport/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Execute command
	if err := newRootCommand(flags).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the root command with its run function attached
func newRootCommand(flags *cli.Flags) *cobra.Command {
	rootCmd := cli.CreateRootCommand(flags)

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cli.ApplyConfig(flags)
		p := processor.NewProcessor(flags)
		p.SetOutput(cmd.OutOrStdout())
		return p.Run()
	}

	return rootCmd
}
