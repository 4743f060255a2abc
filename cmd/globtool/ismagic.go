package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Crystalix007/globcore"
)

var isMagicCmd = &cobra.Command{
	Use:   "is-magic PATTERN",
	Short: "Report whether PATTERN contains any glob meta-syntax",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		magic := globcore.IsMagic(args[0], flagSet.flags())
		fmt.Println(magic)
		if !magic {
			os.Exit(1)
		}
		return nil
	},
}
