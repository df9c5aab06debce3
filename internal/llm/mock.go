package llm

import (
	"context"
	"fmt"
)

// MockClient implements Client for testing. It records every request and
// replays canned replies in order, repeating the last one when exhausted.
type MockClient struct {
	Replies  []string
	Err      error
	Requests []*Request
}

// Generate returns the next canned reply, or the configured error.
func (m *MockClient) Generate(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Replies) == 0 {
		return &Response{Text: "This is a mock response for testing."}, nil
	}
	reply := m.Replies[0]
	if len(m.Replies) > 1 {
		m.Replies = m.Replies[1:]
	}
	return &Response{Text: reply}, nil
}
