package profile

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/smallbiznis/megabooks/internal/storage"
	"go.uber.org/zap"
)

type Store struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger

	current BusinessProfile
}

// NewStore loads the business profile, starting blank when the file is absent.
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	s := &Store{path: path, log: logger}

	var data BusinessProfile
	if err := storage.Load(path, &data); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return s, nil
	}
	s.current = data
	return s, nil
}

// Get returns the current profile.
func (s *Store) Get() BusinessProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Save validates and commits the whole profile.
func (s *Store) Save(next BusinessProfile) error {
	if err := next.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = next
	if err := storage.Save(s.path, next); err != nil {
		s.log.Error("persist business profile failed", zap.Error(err))
		return err
	}
	return nil
}

// Reset clears every field and persists the blank profile.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = BusinessProfile{}
	if err := storage.Save(s.path, s.current); err != nil {
		s.log.Error("persist business profile failed", zap.Error(err))
		return err
	}
	return nil
}
