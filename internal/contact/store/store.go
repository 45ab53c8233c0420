// Package store persists clients and prospects in a single JSON document.
// Every mutation rewrites the whole file.
package store

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/smallbiznis/megabooks/internal/contact/domain"
	"github.com/smallbiznis/megabooks/internal/storage"
	"go.uber.org/zap"
)

type fileShape struct {
	Clients   []domain.Contact `json:"clients"`
	Prospects []domain.Contact `json:"prospects"`
}

type Store struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger

	clients   []domain.Contact
	prospects []domain.Contact
}

// New loads the contact collections, starting empty when the file is absent.
func New(path string, logger *zap.Logger) (*Store, error) {
	s := &Store{path: path, log: logger}

	var data fileShape
	if err := storage.Load(path, &data); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	s.clients = data.Clients
	s.prospects = data.Prospects
	return s, nil
}

// Add appends a contact to the given list after validation.
func (s *Store) Add(list domain.List, c domain.Contact) error {
	if !list.Valid() {
		return domain.ErrInvalidList
	}
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(list, c.Name) >= 0 {
		return domain.ErrDuplicateName
	}
	if list == domain.Clients {
		s.clients = append(s.clients, c)
	} else {
		s.prospects = append(s.prospects, c)
	}
	return s.persist()
}

// Update replaces the contact identified by name within its list.
func (s *Store) Update(list domain.List, name string, c domain.Contact) error {
	if !list.Valid() {
		return domain.ErrInvalidList
	}
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(list, name)
	if i < 0 {
		return domain.ErrNotFound
	}
	if c.Name != name && s.indexOf(list, c.Name) >= 0 {
		return domain.ErrDuplicateName
	}
	if list == domain.Clients {
		s.clients[i] = c
	} else {
		s.prospects[i] = c
	}
	return s.persist()
}

// Delete removes the contact identified by name from its list. Past documents
// hold copies, so deletion never cascades.
func (s *Store) Delete(list domain.List, name string) error {
	if !list.Valid() {
		return domain.ErrInvalidList
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(list, name)
	if i < 0 {
		return domain.ErrNotFound
	}
	if list == domain.Clients {
		s.clients = append(s.clients[:i], s.clients[i+1:]...)
	} else {
		s.prospects = append(s.prospects[:i], s.prospects[i+1:]...)
	}
	return s.persist()
}

// Convert moves a prospect into the client list. Same field values, no
// duplication in both lists.
func (s *Store) Convert(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(domain.Prospects, name)
	if i < 0 {
		return domain.ErrNotFound
	}
	if s.indexOf(domain.Clients, name) >= 0 {
		return domain.ErrDuplicateName
	}

	c := s.prospects[i]
	s.prospects = append(s.prospects[:i], s.prospects[i+1:]...)
	s.clients = append(s.clients, c)
	return s.persist()
}

// Find returns the contact identified by name within its list.
func (s *Store) Find(list domain.List, name string) (domain.Contact, error) {
	if !list.Valid() {
		return domain.Contact{}, domain.ErrInvalidList
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(list, name)
	if i < 0 {
		return domain.Contact{}, domain.ErrNotFound
	}
	if list == domain.Clients {
		return s.clients[i], nil
	}
	return s.prospects[i], nil
}

// Clients returns a copy of the client list in insertion order.
func (s *Store) Clients() []domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Contact(nil), s.clients...)
}

// Prospects returns a copy of the prospect list in insertion order.
func (s *Store) Prospects() []domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Contact(nil), s.prospects...)
}

// indexOf is called with s.mu held.
func (s *Store) indexOf(list domain.List, name string) int {
	coll := s.clients
	if list == domain.Prospects {
		coll = s.prospects
	}
	for i, c := range coll {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// persist is called with s.mu held.
func (s *Store) persist() error {
	data := fileShape{Clients: s.clients, Prospects: s.prospects}
	if data.Clients == nil {
		data.Clients = []domain.Contact{}
	}
	if data.Prospects == nil {
		data.Prospects = []domain.Contact{}
	}
	if err := storage.Save(s.path, data); err != nil {
		s.log.Error("persist contacts failed", zap.Error(err))
		return err
	}
	return nil
}
