package offline

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"warung-pos/internal/domain"
)

// Store is the durable backing for the reconciliation queue.
type Store interface {
	Load() ([]domain.OrderPayload, error)
	Save(pending []domain.OrderPayload) error
}

// FileStore keeps the queue in a JSON file so it survives a terminal
// restart. Writes go through a temp file plus rename so a crash mid-write
// never corrupts the queue.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load() ([]domain.OrderPayload, error) {
	payload, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.OrderPayload{}, nil
	}
	if err != nil {
		return nil, err
	}

	var pending []domain.OrderPayload
	if err := json.Unmarshal(payload, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

func (s *FileStore) Save(pending []domain.OrderPayload) error {
	payload, err := json.Marshal(pending)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}
