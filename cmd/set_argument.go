package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/sheets/internal/config"
)

var setArgumentCmd = &cobra.Command{
	Use:   "set-argument <text>",
	Short: "Save the argument shown on bottom screen 3",
	Long: `Save the argument passed to bottom screen 3 in the config file.
Comments and other settings in the file are preserved. A running sheets
picks up the change when config-reload is enabled.

Examples:
  sheets set-argument "hello"
  sheets set-argument --config ./my-config.yaml "hello"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath()
		if err := config.SaveArgument(path, args[0]); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved argument to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setArgumentCmd)
}
