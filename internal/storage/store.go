package storage

import "encoding/json"

// Storage keys used by the application. Every value is a JSON blob.
const (
	KeyClients  = "clients"
	KeyResults  = "results"
	KeyAnalyses = "ai-analyses"
	KeyTheme    = "theme"
	KeyFontSize = "fontSize"
	KeyAIKey    = "geminiApiKey"
)

// Store is a durable key-value accessor with JSON (de)serialization.
// Get decodes the stored blob into out; a missing key or a corrupt blob
// leaves out untouched so the caller's default survives.
type Store interface {
	Get(key string, out any) error
	Set(key string, v any) error
	GetRaw(key string) (string, bool, error)
	SetRaw(key, value string) error
	Keys() ([]string, error)
}

func decodeInto(raw string, out any) bool {
	if raw == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

func encodeValue(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
