// Package extract turns a chat message into a structured event record by
// prompting the generative model and parsing a JSON object out of its
// free-text reply.
package extract

import (
	"context"
	"time"

	"litecal/internal/event"
	"litecal/internal/llm"
	"litecal/internal/logging"
	"litecal/internal/normalize"
)

// Extractor builds extraction prompts and interprets model replies.
type Extractor struct {
	client llm.Client
	logger logging.Logger
}

// New constructs an Extractor around the given model client.
func New(client llm.Client) *Extractor {
	return &Extractor{
		client: client,
		logger: logging.NewComponentLogger("Extractor"),
	}
}

// Extract asks the model whether message describes a calendar event and
// returns the resulting record. It never fails: a transport error, a reply
// with no parseable JSON, or a reply lacking the expected shape all downgrade
// silently to an is_event=false record, and the request proceeds as generic
// conversation.
func (e *Extractor) Extract(ctx context.Context, message, history string, today time.Time) event.Record {
	notEvent := event.Record{IsEvent: false}

	prompt := buildExtractionPrompt(message, history, today)
	resp, err := e.client.Generate(ctx, &llm.Request{Parts: []llm.Part{llm.TextPart(prompt)}})
	if err != nil {
		e.logger.Warn("extraction model call failed, falling back to conversation: %v", err)
		return notEvent
	}

	values, ok := scanJSONObject(resp.Text)
	if !ok {
		e.logger.Debug("no parseable JSON in model reply (%d chars)", len(resp.Text))
		return notEvent
	}
	if !asBool(values, "is_event") {
		return notEvent
	}

	rec := event.Record{
		IsEvent:               true,
		Title:                 normalize.Title(asString(values, "event_title")),
		StartDate:             asString(values, "start_date"),
		StartTime:             asString(values, "start_time"),
		EndDate:               asString(values, "end_date"),
		EndTime:               asString(values, "end_time"),
		Location:              normalize.Location(asString(values, "location")),
		Description:           normalize.Sentences(asString(values, "description")),
		Attendees:             asStringSlice(values, "attendees"),
		RequiresClarification: asBool(values, "requires_clarification"),
		ClarificationQuestion: asString(values, "clarification_question"),
		SpecifiedDate:         asBool(values, "specified_date"),
	}

	if rec.StartTime == "" {
		rec.StartTime = event.DefaultStartTime
	}

	// The model may fabricate a plausible date even when the user gave none;
	// specified_date distinguishes "user stated" from "model inferred".
	if !rec.SpecifiedDate || rec.StartDate == "" {
		rec.StartDate = today.Format(event.DateLayout)
		rec.EndDate = rec.StartDate
	}
	if rec.EndDate == "" {
		rec.EndDate = rec.StartDate
	}

	// A clarification without a question is unanswerable; drop the flag and
	// let the event proceed with defaults.
	if rec.RequiresClarification && rec.ClarificationQuestion == "" {
		rec.RequiresClarification = false
	}

	return rec
}
