package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrDuplicatePerson = errors.New("this person already exists in the address book")
	ErrPersonNotFound  = errors.New("person not found in the address book")
)

// SortField selects the person field used to order the address book
type SortField int

const (
	SortByName SortField = iota
	SortByPhone
	SortByEmail
	SortByAddress
)

// String returns the string representation of a SortField
func (f SortField) String() string {
	switch f {
	case SortByName:
		return "name"
	case SortByPhone:
		return "phone"
	case SortByEmail:
		return "email"
	case SortByAddress:
		return "address"
	default:
		return "unknown"
	}
}

// ParseSortField parses a sort field name; an empty string means name
func ParseSortField(s string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name", "n":
		return SortByName, nil
	case "phone", "p":
		return SortByPhone, nil
	case "email", "e":
		return SortByEmail, nil
	case "address", "a":
		return SortByAddress, nil
	default:
		return SortByName, &ValidationError{
			Field:   "field",
			Message: fmt.Sprintf("cannot sort by %q (expected name, phone, email or address)", s),
		}
	}
}

func (f SortField) key(p Person) string {
	switch f {
	case SortByPhone:
		return string(p.phone)
	case SortByEmail:
		return strings.ToLower(string(p.email))
	case SortByAddress:
		return strings.ToLower(string(p.address))
	default:
		return strings.ToLower(string(p.name))
	}
}

// AddressBook is an ordered list of persons in which no two entries are the same person
type AddressBook struct {
	persons []Person
}

// NewAddressBook builds an address book, rejecting duplicate persons
func NewAddressBook(persons ...Person) (AddressBook, error) {
	var ab AddressBook
	for _, p := range persons {
		if err := ab.Add(p); err != nil {
			return AddressBook{}, fmt.Errorf("%s: %w", p.Name(), err)
		}
	}
	return ab, nil
}

// Persons returns a copy of the persons in display order
func (ab AddressBook) Persons() []Person {
	return slices.Clone(ab.persons)
}

// Len returns the number of persons
func (ab AddressBook) Len() int {
	return len(ab.persons)
}

// Contains reports whether a person that IsSamePerson as p is present
func (ab AddressBook) Contains(p Person) bool {
	return ab.indexOf(p) >= 0
}

// Clone returns an independent copy of the address book
func (ab AddressBook) Clone() AddressBook {
	return AddressBook{persons: slices.Clone(ab.persons)}
}

// Equal reports whether both books hold equal persons in the same order
func (ab AddressBook) Equal(other AddressBook) bool {
	return slices.EqualFunc(ab.persons, other.persons, Person.Equal)
}

// Add appends p to the end of the book
func (ab *AddressBook) Add(p Person) error {
	if ab.Contains(p) {
		return ErrDuplicatePerson
	}
	ab.persons = append(slices.Clip(ab.persons), p)
	return nil
}

// Set replaces target with edited in place, keeping its position
func (ab *AddressBook) Set(target, edited Person) error {
	i := ab.indexOfExact(target)
	if i < 0 {
		return ErrPersonNotFound
	}
	if !target.IsSamePerson(edited) && ab.Contains(edited) {
		return ErrDuplicatePerson
	}
	ab.persons = slices.Clone(ab.persons)
	ab.persons[i] = edited
	return nil
}

// Remove deletes the entry equal to p
func (ab *AddressBook) Remove(p Person) error {
	i := ab.indexOfExact(p)
	if i < 0 {
		return ErrPersonNotFound
	}
	ab.persons = slices.Delete(slices.Clone(ab.persons), i, i+1)
	return nil
}

// Sort orders persons by field, case-insensitively; ties keep their relative order
func (ab *AddressBook) Sort(field SortField) {
	sorted := slices.Clone(ab.persons)
	slices.SortStableFunc(sorted, func(a, b Person) int {
		return strings.Compare(field.key(a), field.key(b))
	})
	ab.persons = sorted
}

// Clear removes every person
func (ab *AddressBook) Clear() {
	ab.persons = nil
}

func (ab AddressBook) indexOf(p Person) int {
	return slices.IndexFunc(ab.persons, p.IsSamePerson)
}

func (ab AddressBook) indexOfExact(p Person) int {
	return slices.IndexFunc(ab.persons, p.Equal)
}
