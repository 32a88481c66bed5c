package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uixlang/uix/internal/uixgen"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "uix",
	Short: "uix compiles .uix markup files into Go builder-call source",
	Long: `uix compiles .uix markup files into Go source code.

Each view declaration becomes a Go function returning the equivalent
chained builder-call expression against the configured UI toolkit.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the compiler version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("uix " + uixgen.Version)
	},
}

func main() {
	rootCmd.AddCommand(generateCmd, checkCmd, versionCmd)
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "",
		"toolkit config file (default ./"+uixgen.DefaultConfigFile+" if present)")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

// loadConfig resolves the toolkit config: the --config flag, then a
// uix.yaml in the working directory, then the built-in defaults.
func loadConfig() (*uixgen.Config, error) {
	if flagConfig != "" {
		return uixgen.LoadConfig(flagConfig)
	}
	if _, err := os.Stat(uixgen.DefaultConfigFile); err == nil {
		return uixgen.LoadConfig(uixgen.DefaultConfigFile)
	}
	return uixgen.DefaultConfig(), nil
}
