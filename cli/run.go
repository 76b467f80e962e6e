package cli

import (
	"fmt"
	"os"

	"github.com/mobile-next/swiped/commands"
	"github.com/mobile-next/swiped/config"
	"github.com/mobile-next/swiped/daemon"
	"github.com/mobile-next/swiped/utils"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the gesture daemon",
	Long: `Listens for touchpad swipes on a seat and runs the bound actions.

Bindings map "<fingers>-finger-swipe-<begin|update|end>-<up|down|left|right|none|any>"
to "command:<shell command>" or "i3:<ipc command>". SIGHUP reloads the bindings.`,
	Example: `  swiped run --bind "3-finger-swipe-end-left=i3:workspace prev" --bind "3-finger-swipe-end-right=i3:workspace next"`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		if runAsDaemon {
			args, err := daemon.ChildArgs(os.Args,
				daemon.PathFlag{Name: "config", Value: configPath},
				daemon.PathFlag{Name: "pid-file", Value: pidFile},
				daemon.PathFlag{Name: "log-file", Value: logFile},
			)
			if err != nil {
				return err
			}

			d := daemon.New(daemon.Options{PidFile: pidFile, LogFile: logFile, Args: args})
			child, err := d.Daemonize()
			if err != nil {
				return fmt.Errorf("failed to start daemon: %w", err)
			}
			if child != nil {
				fmt.Printf("Gesture daemon spawned with pid %d\n", child.Pid)
				return nil
			}
			defer func() {
				if err := d.Release(); err != nil {
					utils.Warn("Failed to remove pid file: %v", err)
				}
			}()
		}

		if daemon.IsChild() {
			utils.Verbose("Running detached from the terminal")
		}

		utils.Info("Starting swiped %s (%s)", version, commands.Describe(cfg))
		return commands.RunCommand(cfg, func() (config.Config, error) {
			return resolveConfig(cmd)
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&seat, "seat", "", "libinput seat to listen on (default seat0)")
	runCmd.Flags().Float64Var(&threshold, "threshold", 0, "minimum swipe displacement that triggers an action")
	runCmd.Flags().StringArrayVar(&bindFlags, "bind", nil, "add a binding, e.g. '3-finger-swipe-end-left=i3:workspace prev' (repeatable)")
	runCmd.Flags().StringSliceVar(&enabledActionTypes, "enabled-action-types", nil, "action types to enable (command, i3)")
	runCmd.Flags().BoolVarP(&runAsDaemon, "daemon", "d", false, "run in the background")
	runCmd.Flags().StringVar(&pidFile, "pid-file", "", "write the daemon pid to this file")
	runCmd.Flags().StringVar(&logFile, "log-file", "", "with --daemon, write log output to this file instead of discarding it")
}
