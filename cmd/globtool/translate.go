package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Crystalix007/globcore"
)

var translateCmd = &cobra.Command{
	Use:   "translate PATTERN",
	Short: "Print the regex source a pattern translates to, for include and exclude sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		includes, excludes, err := globcore.Translate(args[0], flagSet.flags(), flagSet.limit)
		if err != nil {
			return err
		}
		for _, inc := range includes {
			fmt.Printf("include: %s\n", inc)
		}
		for _, exc := range excludes {
			fmt.Printf("exclude: %s\n", exc)
		}
		return nil
	},
}
