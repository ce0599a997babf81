package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/avmaksimov/psycab/internal/storage"
)

func newTestRepo(t *testing.T) (*Repository, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewRepository(store, zerolog.Nop()), store
}

func TestAddAndGetClient(t *testing.T) {
	repo, _ := newTestRepo(t)

	birth := time.Date(1950, 3, 12, 0, 0, 0, 0, time.UTC)
	c, err := repo.AddClient("  Иванов Иван Иванович  ", birth)
	if err != nil {
		t.Fatalf("AddClient: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected generated id")
	}
	if c.Name != "Иванов Иван Иванович" {
		t.Fatalf("expected trimmed name, got %q", c.Name)
	}

	got, err := repo.GetClient(c.ID)
	if err != nil {
		t.Fatalf("GetClient: %v", err)
	}
	if got.Name != c.Name || !got.BirthDate.Equal(birth) {
		t.Fatalf("stored client mismatch: %+v", got)
	}
}

func TestAddClientRejectsEmptyName(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.AddClient("   ", time.Now())
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorInvalid {
		t.Fatalf("expected invalid error, got %v", err)
	}
}

func TestGetClientNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.GetClient("missing")
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestUpdateClientKeepsBirthDateWhenZero(t *testing.T) {
	repo, _ := newTestRepo(t)
	birth := time.Date(1948, 7, 1, 0, 0, 0, 0, time.UTC)
	c, err := repo.AddClient("Петрова", birth)
	if err != nil {
		t.Fatalf("AddClient: %v", err)
	}

	if err := repo.UpdateClient(&Client{ID: c.ID, Name: "Петрова Анна"}); err != nil {
		t.Fatalf("UpdateClient: %v", err)
	}
	got, err := repo.GetClient(c.ID)
	if err != nil {
		t.Fatalf("GetClient: %v", err)
	}
	if got.Name != "Петрова Анна" {
		t.Fatalf("name not updated: %q", got.Name)
	}
	if !got.BirthDate.Equal(birth) {
		t.Fatalf("birth date should be untouched, got %v", got.BirthDate)
	}
}

func TestDeleteClientCascadesResults(t *testing.T) {
	repo, _ := newTestRepo(t)
	a, _ := repo.AddClient("Первый", time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC))
	b, _ := repo.AddClient("Второй", time.Date(1941, 1, 1, 0, 0, 0, 0, time.UTC))

	now := time.Now().UTC()
	for i, clientID := range []string{a.ID, a.ID, b.ID} {
		res := &Result{
			ID:       NewID(now.Add(time.Duration(i) * time.Millisecond)),
			ClientID: clientID,
			TestID:   "mmse",
			Date:     now,
			Score:    25,
		}
		if err := repo.AddResult(res); err != nil {
			t.Fatalf("AddResult: %v", err)
		}
	}

	if err := repo.DeleteClient(a.ID); err != nil {
		t.Fatalf("DeleteClient: %v", err)
	}
	if _, err := repo.GetClient(a.ID); err == nil {
		t.Fatal("deleted client still readable")
	}
	left, err := repo.Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(left) != 1 || left[0].ClientID != b.ID {
		t.Fatalf("expected only the other client's result to survive, got %+v", left)
	}
}

func TestLegacyHADSMigration(t *testing.T) {
	repo, store := newTestRepo(t)

	// all-zero anxiety answers, all-max depression answers
	answers := make([]int, 14)
	for i := range answers {
		if i%2 == 1 {
			answers[i] = 3
		}
	}
	legacy := []*Result{{
		ID:       "legacy-1",
		ClientID: "c1",
		TestID:   "hads",
		Date:     time.Now().UTC(),
		Score:    21,
		Answers:  answers,
	}}
	if err := store.Set(storage.KeyResults, legacy); err != nil {
		t.Fatalf("seed: %v", err)
	}

	results, err := repo.Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	res := results[0]
	if res.Scores["anxiety"] != 0 || res.Scores["depression"] != 21 {
		t.Fatalf("wrong migrated subscale scores: %+v", res.Scores)
	}
	if res.Interpretations["anxiety"] != "Норма (0-7 баллов)" {
		t.Fatalf("wrong anxiety interpretation: %q", res.Interpretations["anxiety"])
	}
	if res.Interpretations["depression"] != "Клинически выраженная депрессия (11 баллов и выше)" {
		t.Fatalf("wrong depression interpretation: %q", res.Interpretations["depression"])
	}

	// The backfilled scores must be persisted, so a second load sees them
	// without re-deriving.
	var persisted []*Result
	if err := store.Get(storage.KeyResults, &persisted); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(persisted) != 1 || len(persisted[0].Scores) == 0 {
		t.Fatal("migration was not written back to the store")
	}

	again, err := repo.Results()
	if err != nil {
		t.Fatalf("Results again: %v", err)
	}
	if again[0].Scores["depression"] != 21 {
		t.Fatalf("migration not idempotent: %+v", again[0].Scores)
	}
}

func TestMigrationSkipsResultsWithoutAnswers(t *testing.T) {
	repo, store := newTestRepo(t)
	legacy := []*Result{{ID: "r1", ClientID: "c1", TestID: "hads", Score: 9}}
	if err := store.Set(storage.KeyResults, legacy); err != nil {
		t.Fatalf("seed: %v", err)
	}
	results, err := repo.Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(results[0].Scores) != 0 {
		t.Fatalf("result without answers must stay untouched: %+v", results[0].Scores)
	}
}
