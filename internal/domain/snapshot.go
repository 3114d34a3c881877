package domain

// Snapshot is the durable state of an address book session:
// every committed state, the history cursor and the active filter.
type Snapshot struct {
	States  []AddressBook
	Current int
	Filter  Filter
}

// CurrentBook returns the state the cursor points at, or an empty book
func (s *Snapshot) CurrentBook() AddressBook {
	if s == nil || s.Current < 0 || s.Current >= len(s.States) {
		return AddressBook{}
	}
	return s.States[s.Current].Clone()
}
