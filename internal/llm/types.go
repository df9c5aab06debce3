package llm

import "context"

// Part is one ordered segment of model input: either plain text or inline
// binary data (already base64-encoded) tagged with a MIME type.
type Part struct {
	Text     string
	MIMEType string
	Data     string // base64 payload for binary parts
}

// TextPart builds a text content segment.
func TextPart(text string) Part {
	return Part{Text: text}
}

// InlinePart builds a binary content segment from base64 data.
func InlinePart(mimeType, data string) Part {
	return Part{MIMEType: mimeType, Data: data}
}

// Request carries the ordered content segments for one model call.
type Request struct {
	Parts []Part
}

// Response is the model's single text reply. No assumptions about its shape
// are safe beyond "plain text that may contain an embedded JSON object".
type Response struct {
	Text string
}

// Client is the external generative-model collaborator. Implementations make
// exactly one attempt per call; retry policy belongs to callers, and none of
// them retry.
type Client interface {
	Generate(ctx context.Context, req *Request) (*Response, error)
}
