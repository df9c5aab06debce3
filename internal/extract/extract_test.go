package extract

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litecal/internal/llm"
)

var testToday = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func TestExtractEventWithNormalization(t *testing.T) {
	mock := &llm.MockClient{Replies: []string{`Here you go:
{"is_event": true, "event_title": "lunch with bob", "start_date": "2024-03-16",
 "start_time": "12:00", "location": "123 main st, NYC",
 "description": "monthly lunch. bring the report.",
 "attendees": ["bob@example.com"], "specified_date": true}`}}

	rec := New(mock).Extract(context.Background(), "Lunch with Bob tomorrow at noon", "", testToday)

	assert.True(t, rec.IsEvent)
	assert.Equal(t, "Lunch with Bob", rec.Title)
	assert.Equal(t, "2024-03-16", rec.StartDate)
	assert.Equal(t, "12:00", rec.StartTime)
	assert.Equal(t, "2024-03-16", rec.EndDate)
	assert.Equal(t, "", rec.EndTime)
	assert.Equal(t, "123 Main St, NYC", rec.Location)
	assert.Equal(t, "Monthly lunch. Bring the report.", rec.Description)
	assert.Equal(t, []string{"bob@example.com"}, rec.Attendees)
	assert.True(t, rec.SpecifiedDate)
}

func TestExtractOverridesUnspecifiedDate(t *testing.T) {
	// The model proposed a date but admitted the user never gave one, so both
	// dates snap to the caller-visible today.
	mock := &llm.MockClient{Replies: []string{`{"is_event": true, "event_title": "team sync",
 "start_date": "2024-09-01", "end_date": "2024-09-01", "start_time": "10:00",
 "specified_date": false}`}}

	rec := New(mock).Extract(context.Background(), "schedule a team sync", "", testToday)

	assert.True(t, rec.IsEvent)
	assert.Equal(t, "2024-03-15", rec.StartDate)
	assert.Equal(t, "2024-03-15", rec.EndDate)
}

func TestExtractDefaultsStartTime(t *testing.T) {
	mock := &llm.MockClient{Replies: []string{`{"is_event": true, "event_title": "dentist",
 "start_date": "2024-03-20", "specified_date": true}`}}

	rec := New(mock).Extract(context.Background(), "dentist on the 20th", "", testToday)

	assert.Equal(t, "09:00", rec.StartTime)
}

func TestExtractEmptyTitleDefaults(t *testing.T) {
	mock := &llm.MockClient{Replies: []string{`{"is_event": true, "specified_date": false}`}}

	rec := New(mock).Extract(context.Background(), "make me an event", "", testToday)

	assert.Equal(t, "New Event", rec.Title)
}

func TestExtractClarification(t *testing.T) {
	mock := &llm.MockClient{Replies: []string{`{"is_event": true, "requires_clarification": true,
 "clarification_question": "Which day?", "specified_date": false}`}}

	rec := New(mock).Extract(context.Background(), "set up a meeting sometime", "", testToday)

	assert.True(t, rec.RequiresClarification)
	assert.Equal(t, "Which day?", rec.ClarificationQuestion)
}

func TestExtractClarificationWithoutQuestionIsDropped(t *testing.T) {
	mock := &llm.MockClient{Replies: []string{`{"is_event": true, "requires_clarification": true,
 "specified_date": false}`}}

	rec := New(mock).Extract(context.Background(), "set up a meeting", "", testToday)

	assert.False(t, rec.RequiresClarification)
}

func TestExtractNotAnEvent(t *testing.T) {
	mock := &llm.MockClient{Replies: []string{`{"is_event": false}`}}

	rec := New(mock).Extract(context.Background(), "how are you today?", "", testToday)

	assert.False(t, rec.IsEvent)
}

func TestExtractUnparseableReplyDowngrades(t *testing.T) {
	mock := &llm.MockClient{Replies: []string{"I can't help with that."}}

	rec := New(mock).Extract(context.Background(), "lunch tomorrow", "", testToday)

	assert.False(t, rec.IsEvent)
}

func TestExtractModelFailureDowngrades(t *testing.T) {
	mock := &llm.MockClient{Err: fmt.Errorf("connection refused")}

	rec := New(mock).Extract(context.Background(), "lunch tomorrow", "", testToday)

	assert.False(t, rec.IsEvent)
}

func TestExtractPromptEmbedsMessageHistoryAndDate(t *testing.T) {
	mock := &llm.MockClient{Replies: []string{`{"is_event": false}`}}

	New(mock).Extract(context.Background(), "Lunch with Bob", "user: hi\nassistant: hello", testToday)

	require.Len(t, mock.Requests, 1)
	require.Len(t, mock.Requests[0].Parts, 1)
	prompt := mock.Requests[0].Parts[0].Text
	assert.Contains(t, prompt, `"Lunch with Bob"`)
	assert.Contains(t, prompt, "user: hi")
	assert.Contains(t, prompt, "2024-03-15")
	assert.Contains(t, prompt, `"is_event"`)
}
