// Package event defines the structured representation of a calendar event
// extracted from free text, plus helpers for turning its date and time
// strings into instants.
package event

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format for record dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format for record times.
	TimeLayout = "15:04"

	// DefaultStartTime is used when the model omits a start time.
	DefaultStartTime = "09:00"
	// DefaultDuration is applied when the model omits an end time.
	DefaultDuration = time.Hour
)

// Record is the central entity of the extraction pipeline. It is constructed
// fresh per chat request, read-only afterwards, and consumed at most once by
// the calendar builder.
//
// When IsEvent is false no other field is meaningful. When
// RequiresClarification is true the orchestrator must not build a calendar
// file.
type Record struct {
	IsEvent               bool     `json:"is_event"`
	Title                 string   `json:"event_title,omitempty"`
	StartDate             string   `json:"start_date,omitempty"`
	StartTime             string   `json:"start_time,omitempty"`
	EndDate               string   `json:"end_date,omitempty"`
	EndTime               string   `json:"end_time,omitempty"`
	Location              string   `json:"location,omitempty"`
	Description           string   `json:"description,omitempty"`
	Attendees             []string `json:"attendees,omitempty"`
	RequiresClarification bool     `json:"requires_clarification,omitempty"`
	ClarificationQuestion string   `json:"clarification_question,omitempty"`
	SpecifiedDate         bool     `json:"specified_date,omitempty"`
}

// Start combines the record's start date and time into an instant in loc.
// A parse failure indicates an upstream contract violation and is returned,
// never defaulted away.
func (r Record) Start(loc *time.Location) (time.Time, error) {
	return combine(r.StartDate, r.StartTime, loc)
}

// End combines the record's end date and time into an instant in loc. When
// the end time is absent, the end is exactly the start plus DefaultDuration,
// which may roll over to the next calendar day.
func (r Record) End(loc *time.Location) (time.Time, error) {
	if r.EndTime == "" {
		start, err := r.Start(loc)
		if err != nil {
			return time.Time{}, err
		}
		return start.Add(DefaultDuration), nil
	}
	endDate := r.EndDate
	if endDate == "" {
		endDate = r.StartDate
	}
	return combine(endDate, r.EndTime, loc)
}

func combine(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", date, clock, err)
	}
	return t, nil
}
