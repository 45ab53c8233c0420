// Package store persists the item catalog and its id counter in one JSON
// document. Ids come from the persisted counter and are never reused, even
// after deletion.
package store

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/smallbiznis/megabooks/internal/item/domain"
	"github.com/smallbiznis/megabooks/internal/storage"
	"go.uber.org/zap"
)

type fileShape struct {
	Items   []domain.CatalogItem `json:"items"`
	Counter int                  `json:"counter"`
}

type Store struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger

	items   []domain.CatalogItem
	counter int
}

// New loads the catalog, starting empty with a zero counter when the file is
// absent.
func New(path string, logger *zap.Logger) (*Store, error) {
	s := &Store{path: path, log: logger}

	var data fileShape
	if err := storage.Load(path, &data); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	s.items = data.Items
	s.counter = data.Counter
	return s, nil
}

// Add validates the item, assigns the next id from the counter and persists.
func (s *Store) Add(name, description string, unitPrice float64) (domain.CatalogItem, error) {
	item := domain.CatalogItem{Name: name, Description: description, UnitPrice: unitPrice}
	if err := item.Validate(); err != nil {
		return domain.CatalogItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	item.ID = domain.FormatItemID(s.counter)
	s.items = append(s.items, item)

	if err := s.persist(); err != nil {
		return domain.CatalogItem{}, err
	}
	return item, nil
}

// Update replaces the mutable fields of the item identified by id.
func (s *Store) Update(id, name, description string, unitPrice float64) (domain.CatalogItem, error) {
	item := domain.CatalogItem{ID: id, Name: name, Description: description, UnitPrice: unitPrice}
	if err := item.Validate(); err != nil {
		return domain.CatalogItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.CatalogItem{}, domain.ErrNotFound
	}
	s.items[i] = item

	if err := s.persist(); err != nil {
		return domain.CatalogItem{}, err
	}
	return item, nil
}

// Delete removes the item. The counter is untouched, so the id is never
// reassigned; past documents hold copies and are unaffected.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return s.persist()
}

// Find returns the item identified by id.
func (s *Store) Find(id string) (domain.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.CatalogItem{}, domain.ErrNotFound
	}
	return s.items[i], nil
}

// List returns a copy of the catalog in insertion order.
func (s *Store) List() []domain.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CatalogItem(nil), s.items...)
}

// Counter returns the current value of the id counter.
func (s *Store) Counter() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter
}

// indexOf is called with s.mu held.
func (s *Store) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// persist is called with s.mu held.
func (s *Store) persist() error {
	data := fileShape{Items: s.items, Counter: s.counter}
	if data.Items == nil {
		data.Items = []domain.CatalogItem{}
	}
	if err := storage.Save(s.path, data); err != nil {
		s.log.Error("persist items failed", zap.Error(err))
		return err
	}
	return nil
}
