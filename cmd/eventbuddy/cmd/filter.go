package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eventbuddy/eventbuddy/pkg/catalog"
	"github.com/eventbuddy/eventbuddy/pkg/errors"
)

// NewFilterCommand creates the filter command.
func NewFilterCommand(app AppContext) *cobra.Command {
	var (
		status      string
		tagID       int
		participant int
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter events by status, tag, or participant",
		Long: `Filter lists the events matching all supplied criteria.

Criteria combine conjunctively: an event must match every flag you pass
to be included. Without flags every event is listed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			buddy, err := app.Buddy()
			if err != nil {
				return err
			}

			var f catalog.Filter
			if cmd.Flags().Changed("status") {
				s := catalog.Status(status)
				if s != catalog.StatusPlanned && s != catalog.StatusCompleted {
					return &errors.ValidationError{
						Field:   "status",
						Value:   status,
						Message: "must be planned or completed",
					}
				}
				f.Status = &s
			}
			if cmd.Flags().Changed("tag") {
				f.TagID = &tagID
			}
			if cmd.Flags().Changed("participant") {
				f.ParticipantID = &participant
			}

			return renderEvents(cmd.OutOrStdout(), app.Format(), buddy.Catalog().FilterEvents(f))
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "event status: planned or completed")
	cmd.Flags().IntVar(&tagID, "tag", 0, "tag id the event must carry")
	cmd.Flags().IntVar(&participant, "participant", 0, "participant id the event must include")

	return cmd
}
