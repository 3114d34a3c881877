package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"addressbook/internal/domain"
	"addressbook/internal/ports"
)

// ModelOptions configures a Model
type ModelOptions struct {
	Logger       *zap.Logger
	HistoryLimit int
}

// Model holds the working address book, the active filter and the commit history.
// It is not safe for concurrent use; callers run one command at a time.
type Model struct {
	store   ports.AddressBookStore
	logger  *zap.Logger
	book    domain.AddressBook
	filter  domain.Filter
	history *History

	// filter shown before the first uncommitted change, restored when a commit fails
	changing     bool
	filterBefore domain.Filter
}

// Ensure Model implements ports.Session
var _ ports.Session = (*Model)(nil)

// LoadModel restores the model from store
func LoadModel(ctx context.Context, store ports.AddressBookStore, opts ModelOptions) (*Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load address book: %w", err)
	}
	if snapshot == nil {
		snapshot = &domain.Snapshot{}
	}

	history := RestoreHistory(snapshot, opts.HistoryLimit)
	m := &Model{
		store:   store,
		logger:  logger,
		book:    history.Current(),
		filter:  snapshot.Filter,
		history: history,
	}

	logger.Debug("address book loaded",
		zap.Int("persons", m.book.Len()),
		zap.Int("states", history.Len()),
		zap.Stringer("filter", m.filter.Kind))

	return m, nil
}

// Persons returns every person in display order
func (m *Model) Persons() []domain.Person {
	return m.book.Persons()
}

// FilteredPersons returns the persons passing the active filter, in display order
func (m *Model) FilteredPersons() []domain.Person {
	all := m.book.Persons()
	if m.filter.IsShowAll() {
		return all
	}
	shown := make([]domain.Person, 0, len(all))
	for _, p := range all {
		if m.filter.Matches(p) {
			shown = append(shown, p)
		}
	}
	return shown
}

// Filter returns the active filter
func (m *Model) Filter() domain.Filter {
	return m.filter
}

// UpdateFilter replaces the active filter. Use SaveView to persist it.
func (m *Model) UpdateFilter(filter domain.Filter) {
	m.filter = filter
}

// HasPerson reports whether a person with the same identity exists
func (m *Model) HasPerson(person domain.Person) bool {
	return m.book.Contains(person)
}

// AddPerson appends person to the working book
func (m *Model) AddPerson(person domain.Person) error {
	if err := m.book.Add(person); err != nil {
		return err
	}
	m.beginChange()
	return nil
}

// SetPerson replaces target with edited in the working book
func (m *Model) SetPerson(target, edited domain.Person) error {
	if err := m.book.Set(target, edited); err != nil {
		return err
	}
	m.beginChange()
	return nil
}

// DeletePerson removes target from the working book
func (m *Model) DeletePerson(target domain.Person) error {
	if err := m.book.Remove(target); err != nil {
		return err
	}
	m.beginChange()
	return nil
}

// SortPersons reorders the working book
func (m *Model) SortPersons(field domain.SortField) {
	m.beginChange()
	m.book.Sort(field)
}

// ClearPersons empties the working book
func (m *Model) ClearPersons() {
	m.beginChange()
	m.book.Clear()
}

func (m *Model) beginChange() {
	if !m.changing {
		m.changing = true
		m.filterBefore = m.filter
	}
}

// Commit records the working book as a new history state and persists it.
// If persisting fails, the working book, history and filter return to the last committed state.
func (m *Model) Commit(ctx context.Context) error {
	saved := m.history.clone()
	savedFilter := m.filter
	if m.changing {
		savedFilter = m.filterBefore
	}
	m.changing = false

	m.history.Commit(m.book)
	if err := m.store.SaveHistory(ctx, m.history.Snapshot(m.filter)); err != nil {
		m.history = saved
		m.book = saved.Current()
		m.filter = savedFilter
		return &PersistError{Op: "commit address book", Err: err}
	}

	m.logger.Debug("address book committed",
		zap.Int("persons", m.book.Len()),
		zap.Int("states", m.history.Len()))
	return nil
}

// CanUndo reports whether a previous state exists
func (m *Model) CanUndo() bool {
	return m.history.CanUndo()
}

// CanRedo reports whether an undone state can be restored
func (m *Model) CanRedo() bool {
	return m.history.CanRedo()
}

// Undo restores the previous committed state and shows all persons
func (m *Model) Undo(ctx context.Context) error {
	return m.move(ctx, "undo", m.history.Undo)
}

// Redo restores the most recently undone state and shows all persons
func (m *Model) Redo(ctx context.Context) error {
	return m.move(ctx, "redo", m.history.Redo)
}

func (m *Model) move(ctx context.Context, op string, step func() (domain.AddressBook, error)) error {
	saved := m.history.clone()
	savedBook, savedFilter := m.book, m.filter

	book, err := step()
	if err != nil {
		return err
	}
	m.book = book
	m.filter = domain.ShowAll

	if err := m.store.SaveHistory(ctx, m.history.Snapshot(m.filter)); err != nil {
		m.history = saved
		m.book, m.filter = savedBook, savedFilter
		return &PersistError{Op: op, Err: err}
	}

	m.logger.Debug("address book "+op,
		zap.Int("persons", m.book.Len()),
		zap.Bool("can_undo", m.history.CanUndo()),
		zap.Bool("can_redo", m.history.CanRedo()))
	return nil
}

// SaveView persists the active filter so the next session shows the same listing
func (m *Model) SaveView(ctx context.Context) error {
	if err := m.store.SaveView(ctx, m.filter); err != nil {
		return &PersistError{Op: "save view", Err: err}
	}
	return nil
}
