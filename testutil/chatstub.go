// Package testutil provides shared helpers for integration tests. The main
// helper is ChatStub, an in-process stand-in for an upstream
// chat-completions API, so pipeline and handler tests run without network
// access or credentials.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// stubReply is one scripted response. Body is written verbatim, so tests
// can script malformed payloads as easily as valid ones.
type stubReply struct {
	status int
	body   string
}

// ChatStub is a scriptable fake chat-completions endpoint. Replies are
// served in FIFO order; once the script is exhausted the stub fails the
// test, which catches pipelines making more upstream calls than expected.
type ChatStub struct {
	t  *testing.T
	mu sync.Mutex

	srv     *httptest.Server
	replies []stubReply
	calls   int

	// Prompts holds the user-message content of each request received,
	// in order, for assertions on what the pipeline sent upstream.
	Prompts []string
}

// NewChatStub starts the stub server. It is shut down automatically when
// the test finishes.
func NewChatStub(t *testing.T) *ChatStub {
	t.Helper()
	s := &ChatStub{t: t}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the stub's base URL, to be passed as an upstream base URL.
func (s *ChatStub) URL() string { return s.srv.URL }

// Calls returns how many requests the stub has received.
func (s *ChatStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// EnqueueContent scripts a 200 response whose first choice carries content.
func (s *ChatStub) EnqueueContent(content string) *ChatStub {
	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	if err != nil {
		s.t.Fatalf("testutil.ChatStub: marshal reply: %v", err)
	}
	return s.enqueue(http.StatusOK, string(body))
}

// EnqueueStatus scripts a non-success response with the given status code.
func (s *ChatStub) EnqueueStatus(code int) *ChatStub {
	return s.enqueue(code, fmt.Sprintf(`{"error":{"message":%q}}`, http.StatusText(code)))
}

// EnqueueRaw scripts a 200 response with a verbatim body.
func (s *ChatStub) EnqueueRaw(body string) *ChatStub {
	return s.enqueue(http.StatusOK, body)
}

func (s *ChatStub) enqueue(status int, body string) *ChatStub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, stubReply{status: status, body: body})
	return s
}

func (s *ChatStub) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++

	var req struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
		for _, m := range req.Messages {
			if m.Role == "user" {
				s.Prompts = append(s.Prompts, m.Content)
			}
		}
	}

	if len(s.replies) == 0 {
		s.t.Errorf("testutil.ChatStub: unexpected call %d to %s (no reply scripted)", s.calls, r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	reply := s.replies[0]
	s.replies = s.replies[1:]

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.status)
	_, _ = w.Write([]byte(reply.body))
}
