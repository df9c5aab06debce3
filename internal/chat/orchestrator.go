// Package chat decides, per inbound request, whether to run the calendar
// extraction pipeline or forward the conversation to the model untouched,
// and shapes the outcome for transport.
package chat

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"litecal/internal/calendar"
	litecalerrors "litecal/internal/errors"
	"litecal/internal/event"
	"litecal/internal/extract"
	"litecal/internal/llm"
	"litecal/internal/logging"
)

const (
	imageMIMEType = "image/jpeg"
	audioMIMEType = "audio/mp3"
)

// Request is one inbound chat turn. History is supplied by the caller each
// time; nothing is stored between requests.
type Request struct {
	Message string
	Image   string // base64, optionally with a data-URI prefix
	Audio   string // base64, optionally with a data-URI prefix
	History string
	UserID  string
	Today   time.Time
	Use12h  bool
}

// Result is one of three outcomes: a clarification question, a produced
// event with its encoded calendar file, or a generic model reply.
type Result struct {
	Message               string
	IsEvent               bool
	RequiresClarification bool
	Event                 *event.Record
	ICSFile               string // base64-encoded iCalendar document
}

// Orchestrator routes chat requests through the event pipeline or straight
// to the model.
type Orchestrator struct {
	client    llm.Client
	extractor *extract.Extractor
	logger    logging.Logger
	now       func() time.Time
}

// New constructs an Orchestrator around the given model client.
func New(client llm.Client) *Orchestrator {
	return &Orchestrator{
		client:    client,
		extractor: extract.New(client),
		logger:    logging.NewComponentLogger("Orchestrator"),
		now:       time.Now,
	}
}

// Process handles one chat turn. Requests with no content at all are
// rejected before any model call. Text-only messages go through event
// extraction first; everything else, and messages that turn out not to be
// events, is forwarded to the model as-is.
func (o *Orchestrator) Process(ctx context.Context, req Request) (*Result, error) {
	if req.Message == "" && req.Image == "" && req.Audio == "" {
		return nil, &litecalerrors.PreconditionError{Message: "No message, image, or audio provided"}
	}

	today := req.Today
	if today.IsZero() {
		today = o.now()
	}

	if req.Message != "" && req.Image == "" && req.Audio == "" {
		rec := o.extractor.Extract(ctx, req.Message, req.History, today)
		if rec.IsEvent {
			return o.produceEvent(rec, req.Use12h)
		}
		o.logger.Debug("message is not an event request, falling through to conversation")
	}

	return o.passthrough(ctx, req)
}

// produceEvent turns an extracted record into either a clarification
// response or a finished event with its calendar file attached.
func (o *Orchestrator) produceEvent(rec event.Record, use12h bool) (*Result, error) {
	if rec.RequiresClarification {
		return &Result{
			Message:               rec.ClarificationQuestion,
			IsEvent:               true,
			RequiresClarification: true,
			Event:                 &rec,
		}, nil
	}

	start, err := rec.Start(time.UTC)
	if err != nil {
		return nil, &litecalerrors.ContractError{Stage: "extractor", Err: err}
	}
	end, err := rec.End(time.UTC)
	if err != nil {
		return nil, &litecalerrors.ContractError{Stage: "extractor", Err: err}
	}

	doc, err := calendar.Build(rec, o.now())
	if err != nil {
		return nil, err
	}

	return &Result{
		Message: formatSummary(rec, start, end, use12h),
		IsEvent: true,
		Event:   &rec,
		ICSFile: base64.StdEncoding.EncodeToString([]byte(doc)),
	}, nil
}

// passthrough forwards the original content segments to the model and
// returns its raw text reply.
func (o *Orchestrator) passthrough(ctx context.Context, req Request) (*Result, error) {
	var parts []llm.Part
	if strings.TrimSpace(req.History) != "" {
		parts = append(parts, llm.TextPart(extract.BuildContextPrompt(req.History)))
	}
	if req.Image != "" {
		parts = append(parts, llm.InlinePart(imageMIMEType, stripDataURI(req.Image)))
	}
	if req.Audio != "" {
		parts = append(parts, llm.InlinePart(audioMIMEType, stripDataURI(req.Audio)))
	}
	if req.Message != "" {
		parts = append(parts, llm.TextPart(req.Message))
	}

	resp, err := o.client.Generate(ctx, &llm.Request{Parts: parts})
	if err != nil {
		return nil, err
	}
	return &Result{Message: resp.Text}, nil
}

// stripDataURI drops a "data:...;base64," style prefix when present, leaving
// the bare base64 payload.
func stripDataURI(data string) string {
	if idx := strings.IndexByte(data, ','); idx != -1 {
		return data[idx+1:]
	}
	return data
}

// formatSummary renders the human-readable confirmation: long-form date plus
// 12-hour or 24-hour times depending on the caller's display preference.
func formatSummary(rec event.Record, start, end time.Time, use12h bool) string {
	clockLayout := "15:04"
	if use12h {
		clockLayout = "3:04 PM"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I've created an event for you: %s on %s from %s to %s",
		rec.Title,
		start.Format("Monday, January 2, 2006"),
		start.Format(clockLayout),
		end.Format(clockLayout))
	if rec.Location != "" {
		fmt.Fprintf(&b, " at %s", rec.Location)
	}
	b.WriteString(". A reminder is set for 10 minutes before it starts.")
	return b.String()
}
