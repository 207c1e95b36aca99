package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eventbuddy/eventbuddy/pkg/errors"
)

// NewDeleteCommand creates the delete command with its subcommands.
func NewDeleteCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete",
		Short:   "Delete an event or tag",
		Aliases: []string{"rm"},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "event <id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			buddy, err := app.Buddy()
			if err != nil {
				return err
			}

			if !buddy.Catalog().DeleteEvent(id) {
				return errors.NewNotFoundError("event", strconv.Itoa(id))
			}
			if err := app.Persist(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted event %d\n", id)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "tag <id>",
		Short: "Delete a tag",
		Long: `Delete tag removes a tag from the catalog.

A tag still referenced by events cannot be deleted; the error names the
referencing events so you can detach or delete them first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			buddy, err := app.Buddy()
			if err != nil {
				return err
			}

			if err := buddy.Catalog().DeleteTag(id); err != nil {
				return err
			}
			if err := app.Persist(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted tag %d\n", id)
			return nil
		},
	})

	return cmd
}
