// Package cmd implements the mimeinfo command line interface.
package cmd

import (
	"github.com/mproffitt/mimeinfo/pkg/config"
	"github.com/mproffitt/mimeinfo/pkg/mime"
	"github.com/spf13/cobra"
)

var (
	configFile string

	cfg    *config.Config
	engine *mime.Engine

	rootCmd = &cobra.Command{
		Use:   "mimeinfo",
		Short: "Resolve file names against the shared mime info database",
		Long: `mimeinfo looks file names up in the XDG shared mime info database
and reports the resolved type together with its comment, icon and
alias information. It works purely from the file name; file content
is never inspected.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if cfg, err = config.New(configFile); err != nil {
				return
			}
			engine, err = mime.NewEngine(cfg.Locator())
			return
		},
		SilenceUsage: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(infoCmd)
}
