package http

import (
	"litecal/internal/event"
)

// ChatRequest is the inbound /chat payload. Only one of message, image, or
// audio is required; history and the display/date overrides are optional.
type ChatRequest struct {
	Message      string `json:"message"`
	Image        string `json:"image"`
	Audio        string `json:"audio"`
	History      string `json:"history"`
	UserID       string `json:"user_id"`
	CurrentDate  string `json:"current_date"`   // YYYY-MM-DD override of "today"
	Use12hFormat *bool  `json:"use_12h_format"` // default true
}

// ChatResponse is the outbound /chat payload: a generic reply, a
// clarification, or a produced event with its encoded calendar file.
type ChatResponse struct {
	Message               string        `json:"message"`
	IsEvent               bool          `json:"is_event,omitempty"`
	RequiresClarification bool          `json:"requires_clarification,omitempty"`
	EventData             *event.Record `json:"event_data,omitempty"`
	ICSFile               string        `json:"ics_file,omitempty"`
}

// ErrorResponse is the single caller-visible failure shape.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports liveness for the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}
