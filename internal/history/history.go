// Package history keeps the append-only record of generated documents. An
// entry outlives its artifact: deleting the PDF by hand leaves a dangling but
// inert entry.
package history

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/smallbiznis/megabooks/internal/storage"
	"go.uber.org/zap"
)

// Entry is the durable projection of a generated document kept for display.
type Entry struct {
	Date       string `json:"date"`
	Kind       string `json:"kind"`
	ClientName string `json:"client_name"`
	Total      string `json:"total"`
	OutputPath string `json:"output_path"`
}

type Store struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger

	// entries in insertion order; the file is a flat array, not wrapped.
	entries []Entry
}

// NewStore loads the log, starting empty when the file is absent.
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	s := &Store{path: path, log: logger}

	var data []Entry
	if err := storage.Load(path, &data); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	s.entries = data
	return s, nil
}

// Append records an entry and immediately rewrites the whole log.
func (s *Store) Append(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	data := s.entries
	if data == nil {
		data = []Entry{}
	}
	if err := storage.Save(s.path, data); err != nil {
		s.log.Error("persist history failed", zap.Error(err))
		return err
	}
	return nil
}

// List returns entries newest-first. The slice is detached from the store;
// mutating it never feeds back.
func (s *Store) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[len(s.entries)-1-i] = e
	}
	return out
}
