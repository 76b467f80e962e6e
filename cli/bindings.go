package cli

import (
	"fmt"

	"github.com/mobile-next/swiped/commands"
	"github.com/spf13/cobra"
)

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "Show the resolved configuration and bindings",
	Long:  `Loads the config file, validates it and prints the bindings that 'swiped run' would register.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		response := commands.BindingsCommand(cfg)
		if err := printJson(response); err != nil {
			return err
		}
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bindingsCmd)
}
