// Package calendar renders an extracted event record as an iCalendar
// document with an embedded display reminder.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	litecalerrors "litecal/internal/errors"
	"litecal/internal/event"
)

const (
	productID = "-//LiteCal//LiteCal Backend//EN"

	// reminderTrigger fires the display alarm 10 minutes before the event.
	reminderTrigger = "-PT10M"
)

// Build serializes rec into an iCalendar document. The record is expected to
// be already validated enough by extraction; date or time strings that fail
// to parse here indicate an upstream contract violation and are surfaced,
// never silently defaulted. now becomes the DTSTAMP creation timestamp.
func Build(rec event.Record, now time.Time) (string, error) {
	start, err := rec.Start(time.UTC)
	if err != nil {
		return "", &litecalerrors.ContractError{Stage: "extractor", Err: err}
	}
	end, err := rec.End(time.UTC)
	if err != nil {
		return "", &litecalerrors.ContractError{Stage: "extractor", Err: err}
	}

	vevent := ical.NewComponent(ical.CompEvent)
	vevent.Props.SetText(ical.PropUID, uuid.New().String())
	vevent.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	vevent.Props.SetText(ical.PropSummary, rec.Title)
	vevent.Props.SetDateTime(ical.PropDateTimeStart, start)
	vevent.Props.SetDateTime(ical.PropDateTimeEnd, end)

	if rec.Location != "" {
		vevent.Props.SetText(ical.PropLocation, rec.Location)
	}
	if rec.Description != "" {
		vevent.Props.SetText(ical.PropDescription, rec.Description)
	}
	for _, attendee := range rec.Attendees {
		p := ical.NewProp(ical.PropAttendee)
		p.SetText(fmt.Sprintf("mailto:%s", attendee))
		vevent.Props.Add(p)
	}

	vevent.Children = append(vevent.Children, buildReminder(rec.Title))

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Children = append(cal.Children, vevent)

	var buf strings.Builder
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return "", fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.String(), nil
}

// buildReminder emits the VALARM sub-component: a display alarm fixed at 10
// minutes before the event start.
func buildReminder(title string) *ical.Component {
	valarm := ical.NewComponent(ical.CompAlarm)
	valarm.Props.SetText(ical.PropAction, "DISPLAY")
	valarm.Props.SetText(ical.PropDescription, fmt.Sprintf("Reminder: %s", title))

	// TRIGGER's default value type is DURATION; set the raw value so no
	// VALUE=TEXT parameter sneaks in.
	trigger := ical.NewProp(ical.PropTrigger)
	trigger.Value = reminderTrigger
	valarm.Props.Add(trigger)

	return valarm
}
