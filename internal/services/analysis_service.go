package services

import (
	"context"
	"errors"
	"time"

	"github.com/avmaksimov/psycab/internal/ai"
)

// AnalysisStore abstracts the persistence the narrative workflow needs.
type AnalysisStore interface {
	GetClient(id string) (*Client, error)
	ResultsByClient(clientID string) ([]*Result, error)
	AddAnalysis(a *Analysis) error
}

// Generator produces a narrative for a prompt. Implemented by ai.Client.
type Generator interface {
	Generate(ctx context.Context, apiKey, prompt string) (string, error)
}

// CredentialSource yields the stored generation API key, empty when unset.
type CredentialSource interface {
	APIKey() string
}

// AnalysisService builds the clinical-summary prompt from a client's
// results, calls the generation endpoint once, and appends the returned
// narrative to the analyses collection.
type AnalysisService struct {
	store AnalysisStore
	creds CredentialSource
	gen   Generator
	now   func() time.Time
}

func NewAnalysisService(store AnalysisStore, creds CredentialSource, gen Generator) *AnalysisService {
	return &AnalysisService{
		store: store,
		creds: creds,
		gen:   gen,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *AnalysisService) Generate(ctx context.Context, clientID string) (*Analysis, error) {
	apiKey := s.creds.APIKey()
	if apiKey == "" {
		return nil, NewNoAPIKeyError("generation API key is not configured")
	}
	client, err := s.store.GetClient(clientID)
	if err != nil {
		return nil, err
	}
	results, err := s.store.ResultsByClient(clientID)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, NewNoResultsError("client has no test results to analyze")
	}

	prompt := buildPrompt(client, results, s.now())
	text, err := s.gen.Generate(ctx, apiKey, prompt)
	if err != nil {
		var apiErr *ai.APIError
		switch {
		case errors.As(err, &apiErr):
			return nil, NewBadGatewayError(apiErr.Message)
		case errors.Is(err, ai.ErrMalformedResponse):
			return nil, NewMalformedResponseError(err.Error())
		default:
			return nil, NewBadGatewayError(err.Error())
		}
	}

	now := s.now()
	ids := make([]string, 0, len(results))
	for _, res := range results {
		ids = append(ids, res.ID)
	}
	analysis := &Analysis{
		ID:             NewID(now),
		ClientID:       clientID,
		Date:           now,
		Text:           text,
		TestResultsIDs: ids,
	}
	if err := s.store.AddAnalysis(analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}
