package cli

import (
	"fmt"

	"github.com/mobile-next/swiped/commands"
	"github.com/mobile-next/swiped/input"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List touchpads on a seat",
	Long:  `Lists the touchpad event devices udev assigns to the given seat.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.DevicesCommand(devicesSeat)
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
	rootCmd.AddCommand(devicesCmd)

	devicesCmd.Flags().StringVar(&devicesSeat, "seat", input.DefaultSeat, "seat to list devices for")
}
