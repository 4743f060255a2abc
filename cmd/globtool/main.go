// Command globtool is a thin CLI over the globcore library: match,
// filter, glob, escape, is-magic, and translate subcommands, plus
// cobra's generated shell completion.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sirupsen/logrus"
)

var (
	log     = logrus.New()
	verbose bool
	flagSet flagOptions
)

var rootCmd = &cobra.Command{
	Use:   "globtool",
	Short: "Compile and evaluate Bash/Zsh-flavored glob patterns",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flagSet.register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(matchCmd, filterCmd, globCmd, escapeCmd, isMagicCmd, translateCmd)
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
