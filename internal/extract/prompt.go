package extract

import (
	"fmt"
	"strings"
	"time"

	"litecal/internal/event"
)

// extractionPromptTemplate is plain data with named slots. The model must
// answer with a single JSON object and nothing else; everything downstream
// still treats the reply as untrusted free text.
const extractionPromptTemplate = `You are LiteCal, an AI assistant that turns chat messages into calendar events.
{{history}}Today's date is {{today}}.

Analyze the user's message below. If it asks to schedule, plan, or remember a calendar event, respond with a single JSON object using exactly these fields:

{
  "is_event": true,
  "event_title": "short title of the event",
  "start_date": "YYYY-MM-DD",
  "start_time": "HH:MM in 24-hour time, default 09:00 if not given",
  "end_date": "YYYY-MM-DD, same as start_date if not given",
  "end_time": "HH:MM in 24-hour time, leave empty if not given",
  "location": "where the event happens, empty if not given",
  "description": "one or two sentences describing the event",
  "attendees": ["email addresses mentioned, in order"],
  "requires_clarification": false,
  "clarification_question": "a follow-up question if a required detail is ambiguous",
  "specified_date": true if the user explicitly stated a date, false if you inferred one
}

If the message is not a request to create an event, or is inappropriate, respond with exactly {"is_event": false}.

User message: "{{message}}"`

const historyContextTemplate = `You are LiteCal, an AI assistant. The user has had previous conversations with you. Below is the relevant history of your past conversations with this user. Use this context to provide more personalized and consistent responses.

{{history}}

`

// buildExtractionPrompt fills the template slots with the verbatim user
// message, optional prior-conversation context, and the caller-visible today.
func buildExtractionPrompt(message, history string, today time.Time) string {
	historySection := ""
	if strings.TrimSpace(history) != "" {
		historySection = fmt.Sprintf("Previous conversation context:\n%s\n\n", history)
	}
	return strings.NewReplacer(
		"{{history}}", historySection,
		"{{today}}", today.Format(event.DateLayout),
		"{{message}}", message,
	).Replace(extractionPromptTemplate)
}

// BuildContextPrompt renders the generic-passthrough context preamble used
// when the caller supplies conversation history.
func BuildContextPrompt(history string) string {
	return strings.NewReplacer("{{history}}", history).Replace(historyContextTemplate)
}
