package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <filename>...",
	Short: "Print the mime type resolved for each file name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var unknown int
		for _, name := range args {
			t, ok := engine.FromName(name)
			if !ok {
				fmt.Printf("%s: unknown\n", name)
				unknown++
				continue
			}
			fmt.Printf("%s: %s\n", name, t.Name())
		}

		if unknown == len(args) {
			return fmt.Errorf("no matching type for any given name")
		}
		return nil
	},
}
