package domain

import (
	"slices"
	"strings"
)

// Person is an immutable contact record. Use NewPerson or PersonDescriptor.Apply
// to obtain a modified copy; fields are never changed in place.
type Person struct {
	name    Name
	phone   Phone
	email   Email
	address Address
	tags    []Tag
	remark  Remark
}

// NewPerson creates a Person from already validated fields.
// The tag slice is copied, sorted and de-duplicated.
func NewPerson(name Name, phone Phone, email Email, address Address, tags []Tag, remark Remark) Person {
	return Person{
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		tags:    normalizeTags(tags),
		remark:  remark,
	}
}

func (p Person) Name() Name       { return p.name }
func (p Person) Phone() Phone     { return p.phone }
func (p Person) Email() Email     { return p.email }
func (p Person) Address() Address { return p.address }
func (p Person) Remark() Remark   { return p.remark }

// Tags returns a copy of the person's tags in sorted order
func (p Person) Tags() []Tag {
	return slices.Clone(p.tags)
}

// HasTag reports whether the person carries tag t
func (p Person) HasTag(t Tag) bool {
	_, found := slices.BinarySearch(p.tags, t)
	return found
}

// IsSamePerson reports whether other represents the same contact.
// Only identity fields take part; tags and remark are ignored.
func (p Person) IsSamePerson(other Person) bool {
	return p.name == other.name &&
		p.phone == other.phone &&
		p.email == other.email &&
		p.address == other.address
}

// Equal reports whether every field of p and other matches
func (p Person) Equal(other Person) bool {
	return p.IsSamePerson(other) &&
		p.remark == other.remark &&
		slices.Equal(p.tags, other.tags)
}

// String renders the person as shown in command results
func (p Person) String() string {
	var sb strings.Builder
	sb.WriteString(string(p.name))
	sb.WriteString(" Phone: ")
	sb.WriteString(string(p.phone))
	sb.WriteString(" Email: ")
	sb.WriteString(string(p.email))
	sb.WriteString(" Address: ")
	sb.WriteString(string(p.address))
	sb.WriteString(" Remark: ")
	sb.WriteString(string(p.remark))
	sb.WriteString(" Tags: ")
	for _, t := range p.tags {
		sb.WriteString("[" + string(t) + "]")
	}
	return sb.String()
}
