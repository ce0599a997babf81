package services

import (
	"strings"

	"github.com/avmaksimov/psycab/internal/storage"
)

const (
	defaultTheme    = "light"
	defaultFontSize = 16
)

// SettingsService keeps display preferences and the AI credential as
// scalar keys in the store.
type SettingsService struct {
	store storage.Store
}

func NewSettingsService(store storage.Store) *SettingsService {
	return &SettingsService{store: store}
}

func (s *SettingsService) Get() (*Settings, error) {
	out := &Settings{Theme: defaultTheme, FontSize: defaultFontSize}
	if err := s.store.Get(storage.KeyTheme, &out.Theme); err != nil {
		return nil, err
	}
	if err := s.store.Get(storage.KeyFontSize, &out.FontSize); err != nil {
		return nil, err
	}
	if err := s.store.Get(storage.KeyAIKey, &out.APIKey); err != nil {
		return nil, err
	}
	if out.Theme == "" {
		out.Theme = defaultTheme
	}
	if out.FontSize <= 0 {
		out.FontSize = defaultFontSize
	}
	return out, nil
}

func (s *SettingsService) Update(in *Settings) error {
	if in == nil {
		return NewInvalidError("settings required")
	}
	if in.Theme != "" && in.Theme != "light" && in.Theme != "dark" {
		return NewInvalidError("theme must be light or dark")
	}
	if in.FontSize < 0 || in.FontSize > 32 {
		return NewInvalidError("font size out of range")
	}
	if in.Theme != "" {
		if err := s.store.Set(storage.KeyTheme, in.Theme); err != nil {
			return err
		}
	}
	if in.FontSize > 0 {
		if err := s.store.Set(storage.KeyFontSize, in.FontSize); err != nil {
			return err
		}
	}
	if key := strings.TrimSpace(in.APIKey); key != "" {
		if err := s.store.Set(storage.KeyAIKey, key); err != nil {
			return err
		}
	}
	return nil
}

// APIKey returns the stored generation credential, empty when unset.
func (s *SettingsService) APIKey() string {
	var key string
	if err := s.store.Get(storage.KeyAIKey, &key); err != nil {
		return ""
	}
	return strings.TrimSpace(key)
}
