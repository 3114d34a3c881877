// Package memory provides an in-process address book store.
package memory

import (
	"context"
	"slices"
	"sync"

	"addressbook/internal/domain"
	"addressbook/internal/ports"
)

// Store keeps the snapshot in memory; nothing survives the process
type Store struct {
	mu       sync.Mutex
	snapshot domain.Snapshot
}

// Ensure Store implements AddressBookStore
var _ ports.AddressBookStore = (*Store)(nil)

// NewStore creates an empty store, optionally seeded with persons as the first state
func NewStore(seed ...domain.Person) (*Store, error) {
	s := &Store{}
	if len(seed) > 0 {
		book, err := domain.NewAddressBook(seed...)
		if err != nil {
			return nil, err
		}
		s.snapshot.States = []domain.AddressBook{book}
	}
	return s, nil
}

// Load returns a copy of the stored snapshot
func (s *Store) Load(_ context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &domain.Snapshot{
		States:  slices.Clone(s.snapshot.States),
		Current: s.snapshot.Current,
		Filter:  s.snapshot.Filter,
	}, nil
}

// SaveHistory replaces the stored snapshot
func (s *Store) SaveHistory(_ context.Context, snapshot *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = domain.Snapshot{
		States:  slices.Clone(snapshot.States),
		Current: snapshot.Current,
		Filter:  snapshot.Filter,
	}
	return nil
}

// SaveView replaces the stored filter
func (s *Store) SaveView(_ context.Context, filter domain.Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Filter = filter
	return nil
}

// Close is a no-op
func (s *Store) Close() error {
	return nil
}
