package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-yaml"

	"github.com/eventbuddy/eventbuddy/pkg/catalog"
	"github.com/eventbuddy/eventbuddy/pkg/constants"
	"github.com/eventbuddy/eventbuddy/pkg/errors"
)

// render writes v to w in the requested format. An empty format falls
// back to the table renderer.
func render(w io.Writer, format string, v any, table func(io.Writer) error) error {
	switch format {
	case "", "table":
		return table(w)
	case constants.FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case constants.FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return &errors.ValidationError{
			Field:   "format",
			Value:   format,
			Message: "unsupported output format, expected table, json, or yaml",
		}
	}
}

// renderEvents writes the events in the requested format.
func renderEvents(w io.Writer, format string, events []catalog.Event) error {
	return render(w, format, events, func(w io.Writer) error {
		if len(events) == 0 {
			_, err := fmt.Fprintln(w, "No events found")
			return err
		}

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tDATE\tTIME\tLOCATION\tSTATUS\tTAGS\tPARTICIPANTS")
		for _, ev := range events {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				ev.ID, ev.Title, ev.Date, ev.Time, ev.Location, ev.Status,
				joinIDs(ev.TagIDs), joinIDs(ev.ParticipantIDs))
		}
		return tw.Flush()
	})
}

// renderTags writes the tags in the requested format.
func renderTags(w io.Writer, format string, tags []catalog.Tag) error {
	return render(w, format, tags, func(w io.Writer) error {
		if len(tags) == 0 {
			_, err := fmt.Fprintln(w, "No tags found")
			return err
		}

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME")
		for _, tag := range tags {
			fmt.Fprintf(tw, "%d\t%s\n", tag.ID, tag.Name)
		}
		return tw.Flush()
	})
}

// renderParticipants writes the participants in the requested format.
func renderParticipants(w io.Writer, format string, participants []catalog.Participant) error {
	return render(w, format, participants, func(w io.Writer) error {
		if len(participants) == 0 {
			_, err := fmt.Fprintln(w, "No participants found")
			return err
		}

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tAVATAR")
		for _, p := range participants {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Email, p.Avatar)
		}
		return tw.Flush()
	})
}

// joinIDs formats an id set as a comma-separated list.
func joinIDs(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// parseID parses a positional id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &errors.ValidationError{
			Field:   "id",
			Value:   arg,
			Message: "must be a number",
		}
	}
	return id, nil
}
