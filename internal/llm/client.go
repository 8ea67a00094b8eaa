// Package llm contains the HTTP clients for the upstream model APIs. Both
// upstreams speak the same chat-completions wire protocol, so a single
// Client type covers them; they differ only in base URL, model, and
// credential. No prompt text lives here — callers supply the messages.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Message is one chat turn sent to a completions endpoint.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a single completion request: a fixed system instruction plus
// one user message. JSONResponse asks the upstream for a single JSON object
// (the "json_object" response format); Temperature is sent only when set.
type Request struct {
	System       string
	User         string
	Temperature  *float64
	JSONResponse bool
}

// StatusError reports a non-success upstream HTTP status. The status text
// is preserved so it can be surfaced in the error returned to the caller.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "upstream returned " + e.Status
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    *float64        `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client calls one upstream chat-completions API.
type Client struct {
	http  *resty.Client
	model string
}

// New constructs a Client for the given endpoint. The timeout bounds each
// call; the request context still cancels earlier on client disconnect.
func New(baseURL, apiKey, model string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(apiKey).
		SetTimeout(timeout)

	return &Client{http: c, model: model}
}

// Complete issues one chat-completions call and returns the content of the
// first choice. Errors are returned for transport failures, non-success
// statuses (as *StatusError), undecodable bodies, and empty content; the
// call is never retried.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: req.Temperature,
	}
	if req.JSONResponse {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&body).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("llm: request: %w", err)
	}
	if resp.IsError() {
		return "", &StatusError{StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	var cr chatResponse
	if err := json.Unmarshal(resp.Body(), &cr); err != nil {
		return "", fmt.Errorf("llm: decode response: %w", err)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("llm: response contained no content")
	}

	return cr.Choices[0].Message.Content, nil
}
