package httpclient

import (
	"net/http"
	"time"

	"litecal/internal/logging"
)

// New builds an HTTP client with an explicit timeout and request logging.
// A zero timeout would let a hung collaborator stall the whole request, so
// callers must pass one; the transport logs method, URL, status, and latency.
func New(timeout time.Duration, logger logging.Logger) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &loggingRoundTripper{
			base:   http.DefaultTransport,
			logger: logging.OrNop(logger),
		},
	}
}

type loggingRoundTripper struct {
	base   http.RoundTripper
	logger logging.Logger
}

func (t *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	elapsed := time.Since(start)
	if err != nil {
		t.logger.Warn("%s %s failed after %s: %v", req.Method, req.URL.Host, elapsed, err)
		return nil, err
	}
	t.logger.Debug("%s %s -> %d (%s)", req.Method, req.URL.Host, resp.StatusCode, elapsed)
	return resp, nil
}
