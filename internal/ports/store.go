package ports

import (
	"context"

	"addressbook/internal/domain"
)

// AddressBookStore defines the interface for durable address book state
type AddressBookStore interface {
	// Load returns the saved snapshot, or an empty snapshot if nothing was saved yet
	Load(ctx context.Context) (*domain.Snapshot, error)

	// SaveHistory replaces the stored history, cursor and filter atomically
	SaveHistory(ctx context.Context, snapshot *domain.Snapshot) error

	// SaveView stores only the active filter
	SaveView(ctx context.Context, filter domain.Filter) error

	Close() error
}
