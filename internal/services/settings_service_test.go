package services

import (
	"testing"

	"github.com/avmaksimov/psycab/internal/storage"
)

func TestSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(storage.NewMemoryStore())
	got, err := svc.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Theme != "light" || got.FontSize != 16 || got.APIKey != "" {
		t.Fatalf("wrong defaults: %+v", got)
	}
}

func TestSettingsUpdateAndValidation(t *testing.T) {
	svc := NewSettingsService(storage.NewMemoryStore())

	if err := svc.Update(&Settings{Theme: "dark", FontSize: 20, APIKey: " secret "}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := svc.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Theme != "dark" || got.FontSize != 20 {
		t.Fatalf("update not applied: %+v", got)
	}
	if svc.APIKey() != "secret" {
		t.Fatalf("api key not trimmed and stored: %q", svc.APIKey())
	}

	for _, bad := range []*Settings{
		{Theme: "sepia"},
		{FontSize: 99},
		{FontSize: -1},
		nil,
	} {
		err := svc.Update(bad)
		se, ok := AsServiceError(err)
		if !ok || se.Code != ErrorInvalid {
			t.Fatalf("input %+v: expected invalid error, got %v", bad, err)
		}
	}

	// partial update keeps the other fields
	if err := svc.Update(&Settings{FontSize: 18}); err != nil {
		t.Fatalf("partial Update: %v", err)
	}
	got, _ = svc.Get()
	if got.Theme != "dark" || got.FontSize != 18 {
		t.Fatalf("partial update clobbered settings: %+v", got)
	}
}
