package eventbuddy

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/eventbuddy/eventbuddy/pkg/catalog"
	"github.com/eventbuddy/eventbuddy/pkg/constants"
	"github.com/eventbuddy/eventbuddy/pkg/errors"
)

// ExportICS writes the event collection to w as an iCalendar feed.
// Events with a time become one-hour VEVENTs; events without one become
// all-day entries. Events whose date does not parse are skipped with a
// warning rather than failing the whole export.
func (c *client) ExportICS(w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(constants.ICSProductID)

	for _, ev := range c.catalog.Events() {
		if err := addCalendarEvent(cal, ev); err != nil {
			c.logger.Warn().
				Int("event_id", ev.ID).
				Str("date", ev.Date).
				Err(err).
				Msg("Skipping event with unparseable date")
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return errors.WrapIO("write", "calendar stream", err)
	}
	return nil
}

// addCalendarEvent appends one catalog event to the calendar.
func addCalendarEvent(cal *ics.Calendar, ev catalog.Event) error {
	day, err := time.Parse(constants.DateLayout, ev.Date)
	if err != nil {
		return errors.WrapParse(constants.FormatICS, "", err)
	}

	entry := cal.AddEvent(fmt.Sprintf("eventbuddy-%d", ev.ID))
	entry.SetSummary(ev.Title)
	if ev.Location != "" {
		entry.SetLocation(ev.Location)
	}
	if ev.Description != "" {
		entry.SetDescription(ev.Description)
	}
	entry.SetStatus(ics.ObjectStatusConfirmed)

	clock, err := time.Parse(constants.TimeLayout, ev.Time)
	if err != nil {
		// No usable time, emit an all-day entry.
		entry.SetAllDayStartAt(day)
		entry.SetAllDayEndAt(day.AddDate(0, 0, 1))
		return nil
	}

	start := time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC)
	entry.SetStartAt(start)
	entry.SetEndAt(start.Add(time.Hour))
	return nil
}
