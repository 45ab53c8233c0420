package settings

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

	current Settings
}

// NewStore loads settings, falling back to defaults when the file is absent.
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	s := &Store{path: path, log: logger, current: Default()}

	var data Settings
	if err := storage.Load(path, &data); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return s, nil
	}
	s.current = data
	return s, nil
}

// Get returns the current settings.
func (s *Store) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Save validates and commits the whole document. On validation failure
// nothing changes.
func (s *Store) Save(next Settings) error {
	if err := next.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = next
	if err := storage.Save(s.path, next); err != nil {
		s.log.Error("persist settings failed", zap.Error(err))
		return err
	}
	return nil
}
