package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eventbuddy/eventbuddy/pkg/catalog"
	"github.com/eventbuddy/eventbuddy/pkg/errors"
)

// NewAddCommand creates the add command with its subcommands.
func NewAddCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event, tag, or participant",
	}

	cmd.AddCommand(newAddEventCommand(app))
	cmd.AddCommand(newAddTagCommand(app))
	cmd.AddCommand(newAddParticipantCommand(app))

	return cmd
}

func newAddEventCommand(app AppContext) *cobra.Command {
	var (
		title        string
		date         string
		clock        string
		location     string
		description  string
		status       string
		icon         string
		tagIDs       []int
		participants []int
	)

	cmd := &cobra.Command{
		Use:   "event",
		Short: "Add a new event",
		Long: `Add event creates a new event in the catalog and writes the catalog
back to the seed file. Title and date are required; everything else is
optional.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(title) == "" {
				return &errors.ValidationError{Field: "title", Message: "cannot be empty"}
			}
			if strings.TrimSpace(date) == "" {
				return &errors.ValidationError{Field: "date", Message: "cannot be empty"}
			}
			s := catalog.Status(status)
			if s != catalog.StatusPlanned && s != catalog.StatusCompleted {
				return &errors.ValidationError{
					Field:   "status",
					Value:   status,
					Message: "must be planned or completed",
				}
			}

			buddy, err := app.Buddy()
			if err != nil {
				return err
			}

			ev := buddy.Catalog().AddEvent(catalog.Event{
				Title:          title,
				Date:           date,
				Time:           clock,
				Location:       location,
				Description:    description,
				Status:         s,
				Icon:           icon,
				TagIDs:         tagIDs,
				ParticipantIDs: participants,
			})

			if err := app.Persist(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added event %d: %s\n", ev.ID, ev.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "event title (required)")
	cmd.Flags().StringVar(&date, "date", "", "event date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&clock, "time", "", "event time, HH:MM")
	cmd.Flags().StringVar(&location, "location", "", "event venue")
	cmd.Flags().StringVar(&description, "description", "", "event description")
	cmd.Flags().StringVar(&status, "status", string(catalog.StatusPlanned), "event status: planned or completed")
	cmd.Flags().StringVar(&icon, "icon", "", "display glyph")
	cmd.Flags().IntSliceVar(&tagIDs, "tag", nil, "tag ids to attach (repeatable)")
	cmd.Flags().IntSliceVar(&participants, "participant", nil, "participant ids to attach (repeatable)")

	return cmd
}

func newAddTagCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <name>",
		Short: "Add a new tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return &errors.ValidationError{Field: "name", Message: "cannot be empty"}
			}

			buddy, err := app.Buddy()
			if err != nil {
				return err
			}

			tag := buddy.Catalog().AddTag(name)
			if err := app.Persist(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added tag %d: %s\n", tag.ID, tag.Name)
			return nil
		},
	}
}

func newAddParticipantCommand(app AppContext) *cobra.Command {
	var (
		email  string
		avatar string
	)

	cmd := &cobra.Command{
		Use:   "participant <name>",
		Short: "Add a new participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return &errors.ValidationError{Field: "name", Message: "cannot be empty"}
			}

			buddy, err := app.Buddy()
			if err != nil {
				return err
			}

			p := buddy.Catalog().AddParticipant(name, email, avatar)
			if err := app.Persist(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added participant %d: %s (%s)\n", p.ID, p.Name, p.Avatar)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "contact address")
	cmd.Flags().StringVar(&avatar, "avatar", "", "initials override (derived from the name when empty)")

	return cmd
}
