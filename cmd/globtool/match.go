package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Crystalix007/globcore"
)

var matchRoot string

var matchCmd = &cobra.Command{
	Use:   "match PATH PATTERN [PATTERN...]",
	Short: "Report whether PATH matches the given patterns",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, patterns := args[0], args[1:]
		log.WithField("patterns", patterns).Debug("matching")

		ok, err := globcore.Match(path, patterns, flagSet.flags(), matchRoot, flagSet.limit)
		if err != nil {
			return err
		}
		if ok {
			fmt.Println("match")
		} else {
			fmt.Println("no match")
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().StringVar(&matchRoot, "root", "", "root directory for --realpath resolution")
}
