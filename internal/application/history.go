package application

import (
	"slices"

	"addressbook/internal/domain"
)

// DefaultHistoryLimit is the number of undoable commits kept when none is configured
const DefaultHistoryLimit = 100

// History keeps committed address book states and a cursor for undo/redo.
// States are never modified after being recorded; every change builds a new slice.
type History struct {
	states  []domain.AddressBook
	current int
	limit   int
}

// NewHistory creates a history whose only state is initial
func NewHistory(initial domain.AddressBook, limit int) *History {
	return &History{
		states:  []domain.AddressBook{initial.Clone()},
		current: 0,
		limit:   normalizeLimit(limit),
	}
}

// RestoreHistory rebuilds a history from a stored snapshot
func RestoreHistory(s *domain.Snapshot, limit int) *History {
	if s == nil || len(s.States) == 0 {
		return NewHistory(domain.AddressBook{}, limit)
	}
	current := min(max(s.Current, 0), len(s.States)-1)
	h := &History{
		states:  slices.Clone(s.States),
		current: current,
		limit:   normalizeLimit(limit),
	}
	h.trim()
	return h
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return limit
}

// Current returns a copy of the state under the cursor
func (h *History) Current() domain.AddressBook {
	return h.states[h.current].Clone()
}

// Commit records ab as the newest state, discarding any redoable states
func (h *History) Commit(ab domain.AddressBook) {
	states := slices.Clone(h.states[:h.current+1])
	states = append(states, ab.Clone())
	h.states = states
	h.current = len(states) - 1
	h.trim()
}

// trim drops the oldest states so at most limit undo steps remain
func (h *History) trim() {
	if excess := len(h.states) - (h.limit + 1); excess > 0 {
		drop := min(excess, h.current)
		h.states = slices.Clone(h.states[drop:])
		h.current -= drop
	}
}

// CanUndo reports whether an older state exists
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo reports whether a newer state exists
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}

// Undo moves the cursor back and returns the restored state
func (h *History) Undo() (domain.AddressBook, error) {
	if !h.CanUndo() {
		return domain.AddressBook{}, ErrNothingToUndo
	}
	h.current--
	return h.Current(), nil
}

// Redo moves the cursor forward and returns the restored state
func (h *History) Redo() (domain.AddressBook, error) {
	if !h.CanRedo() {
		return domain.AddressBook{}, ErrNothingToRedo
	}
	h.current++
	return h.Current(), nil
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.states)
}

// Snapshot returns the durable form of the history with the given filter
func (h *History) Snapshot(filter domain.Filter) *domain.Snapshot {
	return &domain.Snapshot{
		States:  slices.Clone(h.states),
		Current: h.current,
		Filter:  filter,
	}
}

func (h *History) clone() *History {
	c := *h
	return &c
}
