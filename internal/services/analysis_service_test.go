package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/avmaksimov/psycab/internal/ai"
)

type stubAnalysisStore struct {
	client  *Client
	results []*Result
	added   []*Analysis
}

func (s *stubAnalysisStore) GetClient(id string) (*Client, error) {
	if s.client == nil || s.client.ID != id {
		return nil, NewNotFoundError("client not found")
	}
	return s.client, nil
}

func (s *stubAnalysisStore) ResultsByClient(clientID string) ([]*Result, error) {
	return s.results, nil
}

func (s *stubAnalysisStore) AddAnalysis(a *Analysis) error {
	s.added = append(s.added, a)
	return nil
}

type stubCreds string

func (c stubCreds) APIKey() string { return string(c) }

type stubGenerator struct {
	text   string
	err    error
	prompt string
}

func (g *stubGenerator) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	g.prompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

func analysisFixtures() *stubAnalysisStore {
	return &stubAnalysisStore{
		client: &Client{ID: "c1", Name: "Иванов Иван", BirthDate: time.Date(1950, 3, 12, 0, 0, 0, 0, time.UTC)},
		results: []*Result{
			{
				ID: "r1", ClientID: "c1", TestID: "mmse",
				Date: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), Score: 22,
				Interpretation: "Деменция легкой степени (20-23 балла)",
			},
			{
				ID: "r2", ClientID: "c1", TestID: "hads",
				Date: time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC), Score: 15,
				Scores: map[string]int{"anxiety": 9, "depression": 6},
				Interpretations: map[string]string{
					"anxiety":    "Субклинически выраженная тревога (8-10 баллов)",
					"depression": "Норма (0-7 баллов)",
				},
			},
		},
	}
}

func TestGenerateRequiresAPIKey(t *testing.T) {
	svc := NewAnalysisService(analysisFixtures(), stubCreds(""), &stubGenerator{})
	_, err := svc.Generate(context.Background(), "c1")
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorNoAPIKey {
		t.Fatalf("expected no_api_key, got %v", err)
	}
}

func TestGenerateRequiresResults(t *testing.T) {
	store := analysisFixtures()
	store.results = nil
	svc := NewAnalysisService(store, stubCreds("key"), &stubGenerator{})
	_, err := svc.Generate(context.Background(), "c1")
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorNoResults {
		t.Fatalf("expected no_results, got %v", err)
	}
}

func TestGenerateStoresAnalysis(t *testing.T) {
	store := analysisFixtures()
	gen := &stubGenerator{text: "## КОГНИТИВНЫЙ СТАТУС\nЗаключение."}
	svc := NewAnalysisService(store, stubCreds("key"), gen)

	got, err := svc.Generate(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.Text != gen.text {
		t.Fatalf("wrong narrative: %q", got.Text)
	}
	if got.ClientID != "c1" {
		t.Fatalf("wrong client id: %q", got.ClientID)
	}
	if len(got.TestResultsIDs) != 2 || got.TestResultsIDs[0] != "r1" || got.TestResultsIDs[1] != "r2" {
		t.Fatalf("result ids not echoed: %v", got.TestResultsIDs)
	}
	if len(store.added) != 1 || store.added[0].ID != got.ID {
		t.Fatalf("analysis not persisted: %+v", store.added)
	}

	for _, want := range []string{
		"Иванов Иван",
		"MMSE (Краткая шкала оценки психического статуса)",
		"Балл: 22",
		"тревога 9 — Субклинически выраженная тревога (8-10 баллов)",
		"Динамический анализ не требуется (первичное обследование)",
	} {
		if !strings.Contains(gen.prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestGeneratePromptFlagsDynamics(t *testing.T) {
	store := analysisFixtures()
	repeat := *store.results[0]
	repeat.ID = "r3"
	repeat.Date = store.results[0].Date.AddDate(0, 1, 0)
	store.results = append(store.results, &repeat)

	gen := &stubGenerator{text: "ok"}
	svc := NewAnalysisService(store, stubCreds("key"), gen)
	if _, err := svc.Generate(context.Background(), "c1"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(gen.prompt, "Проанализируй динамику") {
		t.Fatal("repeated test should switch the dynamics hint")
	}
}

func TestGenerateMapsUpstreamErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"api error", &ai.APIError{Message: "quota exceeded"}, ErrorBadGateway},
		{"malformed", ai.ErrMalformedResponse, ErrorMalformedResponse},
		{"transport", context.DeadlineExceeded, ErrorBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAnalysisService(analysisFixtures(), stubCreds("key"), &stubGenerator{err: tc.err})
			_, err := svc.Generate(context.Background(), "c1")
			se, ok := AsServiceError(err)
			if !ok || se.Code != tc.want {
				t.Fatalf("expected %s, got %v", tc.want, err)
			}
		})
	}
}
