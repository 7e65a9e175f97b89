package cli

import (
	"github.com/spf13/cobra"

	"github.com/uf-cli/uf/cmd/uf/cli/command"
	"github.com/uf-cli/uf/internal"
)

// Application constructs the uf CLI application
func Application() *cobra.Command {
	app := command.Root()
	app.Version = internal.ApplicationVersion()

	app.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		quiet, _ := cmd.Flags().GetBool("quiet")
		command.SetupLogging(verbose)
		command.SetupEventBus(quiet)
	}

	// Add global flags
	app.PersistentFlags().StringP("config", "c", "", "path to the rules file (default $XDG_CONFIG_HOME/uf.conf)")
	app.PersistentFlags().BoolP("quiet", "q", false, "suppress all non-essential output")
	app.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Add subcommands
	app.AddCommand(
		command.Config(),
		command.Version(),
	)

	return app
}

// Shutdown flushes any pending user-facing events. Called once after the
// application has finished executing.
func Shutdown() {
	command.ShutdownEventBus()
}
