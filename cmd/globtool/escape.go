package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Crystalix007/globcore"
)

var escapeUnix bool

var escapeCmd = &cobra.Command{
	Use:   "escape PATH",
	Short: "Backslash-escape a literal path so it compiles as a literal pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(globcore.Escape(args[0], escapeUnix))
		return nil
	},
}

func init() {
	escapeCmd.Flags().BoolVar(&escapeUnix, "unix", true, "use Unix escaping rules instead of Windows")
}
