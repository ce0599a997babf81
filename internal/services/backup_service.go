package services

import (
	"encoding/json"

	"github.com/avmaksimov/psycab/internal/storage"
)

// BackupService exports and imports the whole local state as one JSON
// object with a field per storage key (each holding that key's raw JSON).
type BackupService struct {
	store storage.Store
}

func NewBackupService(store storage.Store) *BackupService {
	return &BackupService{store: store}
}

func (s *BackupService) Export() ([]byte, error) {
	keys, err := s.store.Keys()
	if err != nil {
		return nil, err
	}
	backup := map[string]json.RawMessage{}
	for _, key := range keys {
		raw, ok, err := s.store.GetRaw(key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if !json.Valid([]byte(raw)) {
			// corrupt entries are skipped rather than poisoning the backup
			continue
		}
		backup[key] = json.RawMessage(raw)
	}
	return json.MarshalIndent(backup, "", "  ")
}

func (s *BackupService) Import(data []byte) error {
	backup := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &backup); err != nil {
		return NewInvalidError("backup file is not valid JSON: " + err.Error())
	}
	if len(backup) == 0 {
		return NewInvalidError("backup file is empty")
	}
	for key, raw := range backup {
		if err := s.store.SetRaw(key, string(raw)); err != nil {
			return err
		}
	}
	return nil
}
