package llm

import "time"

// Default endpoints and models for the two upstream services. Base URLs are
// overridable via config so tests can point the clients at local stubs.
const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	OpenAIModel          = "gpt-4o"

	DefaultPerplexityBaseURL = "https://api.perplexity.ai"
	PerplexityModel          = "llama-3.1-sonar-small-128k-online"
)

// NewOpenAI returns a Client for the general-purpose completion endpoint,
// used for prompt composition and booklet formatting.
func NewOpenAI(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	return New(baseURL, apiKey, OpenAIModel, timeout)
}

// NewPerplexity returns a Client for the search-augmented completion
// endpoint, used for recommendation retrieval.
func NewPerplexity(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultPerplexityBaseURL
	}
	return New(baseURL, apiKey, PerplexityModel, timeout)
}
