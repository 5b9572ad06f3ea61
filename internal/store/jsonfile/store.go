// internal/store/jsonfile/store.go
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/models"
)

// Store keeps subscribers as one JSON array on disk. The file is read
// in full and rewritten in full on every append, so the mutex covers
// the whole read-modify-write sequence: concurrent appends queue up
// instead of clobbering each other.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Append(subscriber models.Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscribers, err := s.readAll()
	if err != nil {
		return err
	}

	subscribers = append(subscribers, subscriber)
	return s.writeAll(subscribers)
}

func (s *Store) List() ([]models.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readAll()
}

// readAll treats a missing file or undecodable content as an empty
// array, matching how the store bootstraps itself on first append
func (s *Store) readAll() ([]models.Subscriber, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read subscriber file: %w", err)
	}

	var subscribers []models.Subscriber
	if err := json.Unmarshal(data, &subscribers); err != nil {
		logger.Error.Printf("Subscriber file %s is not valid JSON, starting over: %v", s.path, err)
		return nil, nil
	}
	return subscribers, nil
}

// writeAll goes through a temp file and a rename so a failed write
// leaves the previous content intact
func (s *Store) writeAll(subscribers []models.Subscriber) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".subscribers-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(subscribers); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode subscribers: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to flush subscribers: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace subscriber file: %w", err)
	}
	return nil
}
