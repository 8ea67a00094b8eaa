package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by the store when the requested booklet id has
// never been issued. Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// FieldError is a single validation violation scoped to one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one message per violated field. It is produced
// before any upstream call is made and maps to HTTP 400; the field list is
// returned to the client so the form can mark individual inputs.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation error: " + strings.Join(msgs, "; ")
}

// UpstreamError reports a failed call to an external model API: transport
// failure, non-success status, or an empty/malformed response body. The
// pipeline never retries; the first UpstreamError aborts the request and
// maps to HTTP 500. Status holds the upstream HTTP status text when the
// failure was a non-success response.
type UpstreamError struct {
	Stage  string // pipeline stage name, e.g. "compose prompt"
	Status string // upstream status text, empty for transport errors
	Err    error
}

func (e *UpstreamError) Error() string {
	var b strings.Builder
	b.WriteString(e.Stage)
	b.WriteString(": upstream error")
	if e.Status != "" {
		b.WriteString(": ")
		b.WriteString(e.Status)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// GenerationError reports formatter output that could not be turned into a
// BookletContent: empty content, invalid JSON, or a parsed object missing
// the required shape. Maps to HTTP 500.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	msg := "failed to generate booklet content"
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GenerationError) Unwrap() error { return e.Err }
