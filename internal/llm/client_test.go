package llm_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acourtney/travel-booklet/internal/llm"
)

const testTimeout = 5 * time.Second

// TestClient_Complete_sendsChatCompletionsRequest verifies the wire shape:
// bearer credential, model, both messages, and the json_object response
// format when requested.
func TestClient_Complete_sendsChatCompletionsRequest(t *testing.T) {
	var got struct {
		Model          string            `json:"model"`
		Messages       []llm.Message     `json:"messages"`
		Temperature    *float64          `json:"temperature"`
		ResponseFormat map[string]string `json:"response_format"`
	}
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
	}))
	defer srv.Close()

	c := llm.New(srv.URL, "sk-test", "gpt-4o", testTimeout)
	temp := 0.2
	content, err := c.Complete(context.Background(), llm.Request{
		System:       "You are a travel expert.",
		User:         "Plan a trip.",
		Temperature:  &temp,
		JSONResponse: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "hello", content)
	assert.Equal(t, "Bearer sk-test", auth)
	assert.Equal(t, "gpt-4o", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "You are a travel expert.", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	require.NotNil(t, got.Temperature)
	assert.Equal(t, 0.2, *got.Temperature)
	assert.Equal(t, map[string]string{"type": "json_object"}, got.ResponseFormat)
}

// TestClient_Complete_nonSuccessStatus verifies *StatusError carries the
// upstream status text so it can be surfaced to the caller.
func TestClient_Complete_nonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := llm.New(srv.URL, "sk-test", "gpt-4o", testTimeout)
	_, err := c.Complete(context.Background(), llm.Request{System: "s", User: "u"})

	var statusErr *llm.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Contains(t, statusErr.Error(), "Too Many Requests")
}

func TestClient_Complete_emptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := llm.New(srv.URL, "sk-test", "gpt-4o", testTimeout)
	_, err := c.Complete(context.Background(), llm.Request{System: "s", User: "u"})

	assert.ErrorContains(t, err, "no content")
}

func TestClient_Complete_undecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := llm.New(srv.URL, "sk-test", "gpt-4o", testTimeout)
	_, err := c.Complete(context.Background(), llm.Request{System: "s", User: "u"})

	assert.ErrorContains(t, err, "decode response")
}

// TestClient_Complete_contextCancellation verifies client disconnects
// propagate to in-flight upstream calls.
func TestClient_Complete_contextCancellation(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server detects the client disconnect and
		// cancels r.Context(); otherwise this handler never unblocks and
		// srv.Close deadlocks.
		_, _ = io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	c := llm.New(srv.URL, "sk-test", "gpt-4o", testTimeout)
	_, err := c.Complete(ctx, llm.Request{System: "s", User: "u"})

	assert.ErrorIs(t, err, context.Canceled)
}
