package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Crystalix007/globcore"
)

var filterRoot string

var filterCmd = &cobra.Command{
	Use:   "filter PATTERN [PATTERN...]",
	Short: "Read paths on stdin, one per line, and print the ones matching the patterns",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var paths []string
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			paths = append(paths, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return err
		}

		log.WithField("count", len(paths)).Debug("filtering paths")
		matches, err := globcore.Filter(paths, args, flagSet.flags(), filterRoot, flagSet.limit)
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Println(m)
		}
		return nil
	},
}

func init() {
	filterCmd.Flags().StringVar(&filterRoot, "root", "", "root directory for --realpath resolution")
}
