package app

import (
	"github.com/spf13/cobra"

	"github.com/eventbuddy/eventbuddy/cmd/eventbuddy/cmd"
)

// Ensure App satisfies the command context at compile time.
var _ cmd.AppContext = (*App)(nil)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(cmd.NewListCommand(a))
	rootCmd.AddCommand(cmd.NewFilterCommand(a))
	rootCmd.AddCommand(cmd.NewShowCommand(a))
	rootCmd.AddCommand(cmd.NewAddCommand(a))
	rootCmd.AddCommand(cmd.NewDeleteCommand(a))
	rootCmd.AddCommand(cmd.NewExportCommand(a))
	rootCmd.AddCommand(a.newVersionCommand())
}
