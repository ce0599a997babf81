package storage

import "testing"

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	type rec struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	in := []rec{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	if err := s.Set("clients", in); err != nil {
		t.Fatalf("set: %v", err)
	}
	var out []rec
	if err := s.Get("clients", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(out) != 2 || out[1].Name != "b" {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestMemoryStoreMissingKeyKeepsDefault(t *testing.T) {
	s := NewMemoryStore()
	out := []string{"default"}
	if err := s.Get("absent", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(out) != 1 || out[0] != "default" {
		t.Fatalf("default not preserved: %v", out)
	}
}

func TestMemoryStoreCorruptValueKeepsDefault(t *testing.T) {
	s := NewMemoryStore()
	if err := s.SetRaw("clients", "{not json"); err != nil {
		t.Fatalf("set raw: %v", err)
	}
	out := []string{}
	if err := s.Get("clients", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty default, got %v", out)
	}
}
