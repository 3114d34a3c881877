package ports

import (
	"context"

	"addressbook/internal/domain"
)

// Model is the address book state commands operate on.
// Mutations stay in memory until Commit records them as a new history state.
type Model interface {
	// Views
	Persons() []domain.Person
	FilteredPersons() []domain.Person
	Filter() domain.Filter
	UpdateFilter(filter domain.Filter)

	// Queries
	HasPerson(person domain.Person) bool

	// Mutations
	AddPerson(person domain.Person) error
	SetPerson(target, edited domain.Person) error
	DeletePerson(target domain.Person) error
	SortPersons(field domain.SortField)
	ClearPersons()

	// History
	Commit(ctx context.Context) error
	CanUndo() bool
	CanRedo() bool
	Undo(ctx context.Context) error
	Redo(ctx context.Context) error
}

// Session is a Model whose active filter can be persisted between invocations
type Session interface {
	Model
	SaveView(ctx context.Context) error
}
