// Package service contains the business logic for the Travel Booklet API:
// input validation and the three-stage generation pipeline (prompt
// composition → recommendation retrieval → booklet formatting). Services
// depend on the llm client and store interfaces, not their implementations,
// so the whole pipeline is unit-testable without network access.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/acourtney/travel-booklet/internal/domain"
	"github.com/acourtney/travel-booklet/internal/llm"
	"github.com/acourtney/travel-booklet/internal/store"
)

// Completer is the subset of the llm client the pipeline depends on.
// Defining it here (in the consumer package) lets tests inject scripted
// fakes without starting an HTTP server.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// recommendationTemperature is sent with the search-augmented call; low
// so retrieved recommendations stay factual.
const recommendationTemperature = 0.2

// BookletService runs the generation pipeline and owns its storage handoff.
type BookletService struct {
	general Completer // general-purpose model: prompt composition and formatting
	search  Completer // search-augmented model: recommendation retrieval
	store   store.Store
	log     *slog.Logger
}

// NewBookletService constructs a BookletService with its dependencies.
func NewBookletService(general, search Completer, st store.Store, log *slog.Logger) *BookletService {
	return &BookletService{general: general, search: search, store: st, log: log}
}

// Create validates the submitted preferences, runs the three generation
// stages in sequence, and stores the result. The first failure aborts the
// whole request: nothing partial is ever stored, and failed runs allocate
// no id. There is no retry: upstream completions are not idempotent, so
// failures surface to the caller instead.
func (s *BookletService) Create(ctx context.Context, input domain.PreferencesInput) (domain.TravelPreferences, error) {
	if verr := ValidatePreferences(input); verr != nil {
		return domain.TravelPreferences{}, verr
	}

	run := s.log.With("run_id", uuid.NewString(), "location", input.Location)

	prompt, err := s.composePrompt(ctx, input)
	if err != nil {
		run.Error("prompt composition failed", "error", err)
		return domain.TravelPreferences{}, err
	}
	run.Info("prompt composed", "prompt_len", len(prompt))

	recommendations, err := s.fetchRecommendations(ctx, prompt)
	if err != nil {
		run.Error("recommendation fetch failed", "error", err)
		return domain.TravelPreferences{}, err
	}
	run.Info("recommendations fetched", "recommendations_len", len(recommendations))

	content, err := s.formatBooklet(ctx, input, recommendations)
	if err != nil {
		run.Error("booklet formatting failed", "error", err)
		return domain.TravelPreferences{}, err
	}
	run.Info("booklet formatted", "sections", len(content.Sections))

	rec, err := s.store.Create(ctx, input, content)
	if err != nil {
		return domain.TravelPreferences{}, fmt.Errorf("service.BookletService.Create: store: %w", err)
	}
	run.Info("booklet stored", "id", rec.ID)

	return rec, nil
}

// GetByID returns a stored record by id.
// Returns domain.ErrNotFound if the id has never been issued.
func (s *BookletService) GetByID(ctx context.Context, id int) (domain.TravelPreferences, error) {
	return s.store.Get(ctx, id)
}

// composePrompt turns structured preferences into a natural-language
// research prompt via the general-purpose model.
func (s *BookletService) composePrompt(ctx context.Context, input domain.PreferencesInput) (string, error) {
	out, err := s.general.Complete(ctx, llm.Request{
		System: composerSystemPrompt,
		User:   composerUserPrompt(input),
	})
	if err != nil {
		return "", upstreamErr("compose prompt", err)
	}
	return out, nil
}

// fetchRecommendations sends the composed prompt to the search-augmented
// model and returns its free-text recommendations.
func (s *BookletService) fetchRecommendations(ctx context.Context, prompt string) (string, error) {
	temp := recommendationTemperature
	out, err := s.search.Complete(ctx, llm.Request{
		System:      fetcherSystemPrompt,
		User:        prompt,
		Temperature: &temp,
	})
	if err != nil {
		return "", upstreamErr("fetch recommendations", err)
	}
	return out, nil
}

// formatBooklet asks the general-purpose model for a strictly-structured
// JSON booklet and parses and shape-checks the result.
func (s *BookletService) formatBooklet(ctx context.Context, input domain.PreferencesInput, recommendations string) (domain.BookletContent, error) {
	out, err := s.general.Complete(ctx, llm.Request{
		System:       formatterSystemPrompt,
		User:         formatterUserPrompt(input, recommendations),
		JSONResponse: true,
	})
	if err != nil {
		return domain.BookletContent{}, upstreamErr("format booklet", err)
	}

	var content domain.BookletContent
	if err := json.Unmarshal([]byte(out), &content); err != nil {
		return domain.BookletContent{}, &domain.GenerationError{Reason: "response is not valid JSON", Err: err}
	}
	if err := content.Validate(); err != nil {
		return domain.BookletContent{}, err
	}

	return content, nil
}

// upstreamErr wraps a client error as a domain.UpstreamError, lifting the
// upstream status text out of llm.StatusError when present.
func upstreamErr(stage string, err error) error {
	ue := &domain.UpstreamError{Stage: stage, Err: err}
	var statusErr *llm.StatusError
	if errors.As(err, &statusErr) {
		ue.Status = statusErr.Status
		ue.Err = nil
	}
	return ue
}
