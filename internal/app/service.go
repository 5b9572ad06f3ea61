package app

import (
	"fmt"

	"github.com/shrimpsizemoose/semla/internal/store"
	"github.com/shrimpsizemoose/semla/internal/store/jsonfile"
)

// Service owns the stores for both endpoints and hands them to the
// handlers. Nothing here lives in package-level state.
type Service struct {
	Config      *Config
	Students    store.StudentStore
	Subscribers *jsonfile.Store
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	students, err := NewStudentStore(config.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to init student store: %w", err)
	}

	return &Service{
		Config:      config,
		Students:    students,
		Subscribers: jsonfile.New(config.Subscribers.File),
	}, nil
}

func (s *Service) Close() error {
	if err := s.Students.Close(); err != nil {
		return fmt.Errorf("error while closing student store: %w", err)
	}
	return nil
}
