package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gocat [OPTION]... [FILE]...",
	Short: "Concatenate FILE(s) to standard output",
	Long:  `gocat concatenates files (or standard input) to standard output, with optional line numbering, end-of-line markers, tab visualization, control-character escaping and blank-line squeezing`,
	Args:  cobra.ArbitraryArgs,
	// Историческая грамматика (одиночный дефис, токен "-?", help только
	// в первой позиции) не выражается через pflag, поэтому токены
	// разбираются в internal/cli.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
}

// main executes the root command. Fatal errors (a dead destination stream)
// exit with status 1; per-source failures are reported and do not affect
// the exit status.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
