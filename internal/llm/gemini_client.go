package llm

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	litecalerrors "litecal/internal/errors"
	"litecal/internal/httpclient"
	"litecal/internal/logging"
	jsonx "litecal/internal/shared/json"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.0-flash"
	defaultTimeout       = 60 * time.Second

	// maxResponseBytes bounds how much of a model reply we are willing to
	// buffer before treating it as a collaborator failure.
	maxResponseBytes = 8 << 20
)

// Config configures the Gemini client.
type Config struct {
	Model   string
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// GeminiClient talks to the Gemini generateContent API over HTTP.
type GeminiClient struct {
	model      string
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// NewGeminiClient constructs a Gemini client with an explicit request timeout.
func NewGeminiClient(config Config) *GeminiClient {
	model := strings.TrimSpace(config.Model)
	if model == "" {
		model = defaultGeminiModel
	}
	baseURL := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := logging.NewComponentLogger("GeminiClient")
	return &GeminiClient{
		model:      model,
		apiKey:     config.APIKey,
		baseURL:    baseURL,
		httpClient: httpclient.New(timeout, logger),
		logger:     logger,
	}
}

// Model returns the model name used by this client.
func (c *GeminiClient) Model() string {
	return c.model
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the content segments to the model and returns its text
// reply. Exactly one attempt is made; transport errors, non-success statuses,
// and empty replies all surface as collaborator errors.
func (c *GeminiClient) Generate(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Parts) == 0 {
		return nil, fmt.Errorf("request must carry at least one content part")
	}

	wireParts := make([]geminiPart, 0, len(req.Parts))
	for _, part := range req.Parts {
		if part.Data != "" {
			wireParts = append(wireParts, geminiPart{
				InlineData: &geminiInlineData{MIMEType: part.MIMEType, Data: part.Data},
			})
			continue
		}
		wireParts = append(wireParts, geminiPart{Text: part.Text})
	}

	body, err := jsonx.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: wireParts}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	c.logger.Debug("=== LLM Request ===")
	c.logger.Debug("URL: POST %s", endpoint)
	c.logger.Debug("Model: %s, parts: %d", c.model, len(wireParts))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("x-goog-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &litecalerrors.CollaboratorError{Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("Error closing response body: %v", cerr)
		}
	}()

	respBody, err := httpclient.ReadAllWithLimit(resp.Body, maxResponseBytes)
	if err != nil {
		return nil, &litecalerrors.CollaboratorError{Err: err, StatusCode: resp.StatusCode}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Gemini HTTP error %d: %s", resp.StatusCode, string(respBody))
		return nil, &litecalerrors.CollaboratorError{
			Err:        fmt.Errorf("%s", strings.TrimSpace(string(respBody))),
			StatusCode: resp.StatusCode,
		}
	}

	var parsed geminiResponse
	if err := jsonx.Unmarshal(respBody, &parsed); err != nil {
		return nil, &litecalerrors.CollaboratorError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if parsed.Error != nil {
		return nil, &litecalerrors.CollaboratorError{
			Err:        fmt.Errorf("%s", parsed.Error.Message),
			StatusCode: parsed.Error.Code,
		}
	}
	if len(parsed.Candidates) == 0 {
		return nil, &litecalerrors.CollaboratorError{Err: fmt.Errorf("model returned no candidates")}
	}

	var text strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	c.logger.Debug("=== LLM Response ===")
	c.logger.Debug("Status: %d, content length: %d chars", resp.StatusCode, text.Len())

	return &Response{Text: text.String()}, nil
}
