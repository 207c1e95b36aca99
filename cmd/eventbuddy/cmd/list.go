package cmd

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command with its subcommands.
func NewListCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events, tags, or participants",
		Long: `List displays the catalog collections in storage order.

Without a subcommand the event collection is listed. Use --format to
switch between table, json, and yaml output.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListEvents(cmd, app)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "events",
		Short:   "List all events",
		Aliases: []string{"event"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListEvents(cmd, app)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "tags",
		Short:   "List all tags",
		Aliases: []string{"tag"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			buddy, err := app.Buddy()
			if err != nil {
				return err
			}
			return renderTags(cmd.OutOrStdout(), app.Format(), buddy.Catalog().Tags())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "participants",
		Short:   "List all participants",
		Aliases: []string{"participant"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			buddy, err := app.Buddy()
			if err != nil {
				return err
			}
			return renderParticipants(cmd.OutOrStdout(), app.Format(), buddy.Catalog().Participants())
		},
	})

	return cmd
}

func runListEvents(cmd *cobra.Command, app AppContext) error {
	buddy, err := app.Buddy()
	if err != nil {
		return err
	}
	return renderEvents(cmd.OutOrStdout(), app.Format(), buddy.Catalog().Events())
}
