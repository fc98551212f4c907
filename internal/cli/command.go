package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordexport/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordexport",
		Short: "Five-letter word list exporter",
		Long: `wordexport filters the built-in English word collection down to
unique lowercase 5-letter words, sorts them and writes them to a file.

Examples:
  wordexport                          # Write words.csv and print a summary
  wordexport -o list.json -f json     # Write the game's JSON word list
  wordexport --input extra.txt        # Export words from a file instead
  wordexport --check crane            # Check a guess against the list
  wordexport --random 3 --seed 7      # Pick three target words`,
		Args:         cobra.NoArgs,
		Version:      internal.Version,
		SilenceUsage: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wordexport.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", flags.OutputPath, "Output file (created or overwritten)")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Output format: csv, json or sqlite")
	cmd.Flags().StringVarP(&flags.InputFile, "input", "i", "", "Read candidate words from file instead of the built-in list")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move an existing output file to ./archive before exporting")

	// Lookup flags
	cmd.Flags().StringVar(&flags.Check, "check", "", "Validate a guess against the word list instead of exporting")
	cmd.Flags().IntVar(&flags.Random, "random", 0, "Print N random words instead of exporting")
	cmd.Flags().Int64Var(&flags.Seed, "seed", 0, "Seed for --random (default: current time)")

	cmd.MarkFlagsMutuallyExclusive("check", "random")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.path", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("input.file", cmd.Flags().Lookup("input"))
	viper.BindPFlag("archive.enabled", cmd.Flags().Lookup("archive"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wordexport" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordexport")
	}

	// Environment variables, e.g. WORDEXPORT_OUTPUT_PATH
	viper.SetEnvPrefix("WORDEXPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies config-file and environment values into flags the
// user did not set on the command line. Bound flags already win when changed.
func ApplyConfig(flags *Flags) {
	if v := viper.GetString("output.path"); v != "" {
		flags.OutputPath = v
	}
	if v := viper.GetString("output.format"); v != "" {
		flags.Format = v
	}
	if v := viper.GetString("input.file"); v != "" {
		flags.InputFile = v
	}
	if viper.GetBool("archive.enabled") {
		flags.Archive = true
	}
}
