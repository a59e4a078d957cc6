package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore writes file content to randomly named files under a root
// directory. Derivative writes go through a temp file and rename so a
// re-delivered thumbnail job overwrites cleanly.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Save(data []byte) (string, error) {
	path := filepath.Join(s.root, uuid.New().String())
	if err := s.Write(path, data); err != nil {
		return "", err
	}
	return path, nil
}

func (s *LocalStore) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	return data, nil
}

func (s *LocalStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *LocalStore) Write(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to finalize content: %w", err)
	}
	return nil
}
