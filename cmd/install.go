package cmd

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"install-deps/internal/config"
	"install-deps/internal/env"
	"install-deps/internal/installer"
	"install-deps/internal/logger"
)

// configPath holds the path to the dependency configuration YAML file.
// It's passed via the `--config` or `-c` flag.
var configPath string

// only optionally names a single dependency to install exclusively.
// "qt" is the only name with special meaning, and only on Windows; the flag
// is accepted but ignored on the other platforms.
var only string

// pauseOnExit makes the command wait for an enter keypress before returning,
// so a double-clicked invocation on Windows doesn't vanish with its output.
var pauseOnExit bool

// installCmd detects the platform, resolves the matching install command
// from the config, and runs it. This is the whole purpose of the tool.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install build dependencies for the current platform",
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		if err := runInstall(); err != nil {
			logger.Error("[ERROR] %v\n", err)
			failed = true
		}

		if pauseOnExit {
			// Block on an acknowledgment regardless of outcome.
			var ack string
			_ = survey.AskOne(&survey.Input{Message: "Press enter to continue..."}, &ack)
		}

		if failed {
			os.Exit(1)
		}
	},
}

// runInstall loads the configuration, snapshots the host environment once,
// and runs the single platform strategy matching it.
func runInstall() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	host := env.Snapshot()
	deps := installer.New(cfg, host, only)

	status, err := deps.Install()
	if err != nil {
		return err
	}

	if status == installer.StatusRelaunchPending {
		// Not an error: the elevated copy finishes the installation in its
		// own window, this process just steps out of the way.
		logger.Warn("Continuing in the elevated process, check the new window\n")
	}
	return nil
}

// init sets up CLI flags and registers the install command with the root command.
func init() {
	installCmd.Flags().StringVarP(&configPath, "config", "c", "deps.yaml", "Path to dependency configuration file")
	installCmd.Flags().StringVar(&only, "only", "", "Only install the specified dependency")
	installCmd.Flags().BoolVar(&pauseOnExit, "pause-on-exit", false, "Wait for enter before exiting (useful on Windows)")

	rootCmd.AddCommand(installCmd)
}
