package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eventbuddy/eventbuddy/pkg/catalog"
	"github.com/eventbuddy/eventbuddy/pkg/errors"
)

// NewShowCommand creates the show command.
func NewShowCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <event-id>",
		Short: "Show a single event",
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

			ev, ok := buddy.Catalog().Event(id)
			if !ok {
				return errors.NewNotFoundError("event", strconv.Itoa(id))
			}
			return renderEvents(cmd.OutOrStdout(), app.Format(), []catalog.Event{ev})
		},
	}
}
