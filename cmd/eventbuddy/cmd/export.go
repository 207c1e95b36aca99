package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eventbuddy/eventbuddy/pkg/constants"
	"github.com/eventbuddy/eventbuddy/pkg/errors"
)

// NewExportCommand creates the export command.
func NewExportCommand(app AppContext) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as JSON, YAML, or iCalendar",
		Long: `Export serializes the catalog to stdout or a file.

The ics format emits the event collection as an iCalendar feed that
calendar applications can subscribe to; json and yaml emit the full
catalog including tags and participants.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case constants.FormatJSON, constants.FormatYAML, constants.FormatICS:
			default:
				return &errors.ValidationError{
					Field:   "format",
					Value:   format,
					Message: "must be json, yaml, or ics",
				}
			}

			buddy, err := app.Buddy()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				file, err := os.OpenFile(out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
				if err != nil {
					return errors.WrapIO("create", out, err)
				}
				defer file.Close()
				w = file
			}

			return buddy.Export(w, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", constants.FormatICS, "export format: json, yaml, or ics")
	cmd.Flags().StringVar(&out, "out", "", "write to file instead of stdout")

	return cmd
}
