package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Crystalix007/globcore"
)

var globRoot string

var globCmd = &cobra.Command{
	Use:   "glob PATTERN [PATTERN...]",
	Short: "Walk the filesystem and print paths matching the given patterns",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := globcore.Glob(args, flagSet.flags(), globRoot, flagSet.limit)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			log.Debug("no matches")
			return nil
		}

		dirColor := color.New(color.FgBlue, color.Bold)
		colorize := term.IsTerminal(int(os.Stdout.Fd()))
		for _, m := range matches {
			if colorize && strings.HasSuffix(m, "/") {
				fmt.Println(dirColor.Sprint(m))
				continue
			}
			fmt.Println(m)
		}
		return nil
	},
}

func init() {
	globCmd.Flags().StringVar(&globRoot, "root", ".", "root directory to walk")
}
