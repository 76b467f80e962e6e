package cli

import (
	"fmt"

	"github.com/mobile-next/swiped/daemon"
	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the background gesture daemon",
	Long:  `Sends SIGTERM to the daemon whose pid is stored in the pid file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, err := daemon.Stop(pidFile)
		if err != nil {
			return err
		}

		fmt.Printf("Stop signal sent to pid %d\n", pid)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)

	stopCmd.Flags().StringVar(&pidFile, "pid-file", "", "pid file written by 'swiped run --daemon'")
	_ = stopCmd.MarkFlagRequired("pid-file")
}
