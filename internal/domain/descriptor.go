package domain

import "slices"

// DescriptorFields carries raw, unvalidated overrides for a PersonDescriptor.
// A nil field means "leave unchanged". A non-nil Remark pointing at "" clears the remark.
type DescriptorFields struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	Tags    []string // nil leaves tags unchanged, an empty non-nil slice clears them
	Remark  *string
}

// PersonDescriptor is an immutable sparse patch over a Person.
// Each set field replaces the corresponding field of the target.
type PersonDescriptor struct {
	name    *Name
	phone   *Phone
	email   *Email
	address *Address
	tags    []Tag
	hasTags bool
	remark  *Remark
}

// NewPersonDescriptor validates every set field and builds the descriptor in one step.
// The tag input is copied; later changes to the caller's slice are not observed.
func NewPersonDescriptor(f DescriptorFields) (PersonDescriptor, error) {
	var d PersonDescriptor

	if f.Name != nil {
		n, err := NewName(*f.Name)
		if err != nil {
			return PersonDescriptor{}, err
		}
		d.name = &n
	}
	if f.Phone != nil {
		p, err := NewPhone(*f.Phone)
		if err != nil {
			return PersonDescriptor{}, err
		}
		d.phone = &p
	}
	if f.Email != nil {
		e, err := NewEmail(*f.Email)
		if err != nil {
			return PersonDescriptor{}, err
		}
		d.email = &e
	}
	if f.Address != nil {
		a, err := NewAddress(*f.Address)
		if err != nil {
			return PersonDescriptor{}, err
		}
		d.address = &a
	}
	if f.Tags != nil {
		tags, err := NewTags(f.Tags)
		if err != nil {
			return PersonDescriptor{}, err
		}
		d.tags = tags
		d.hasTags = true
	}
	if f.Remark != nil {
		r := NewRemark(*f.Remark)
		d.remark = &r
	}

	return d, nil
}

// Name returns the name override, if any
func (d PersonDescriptor) Name() (Name, bool) { return deref(d.name) }

// Phone returns the phone override, if any
func (d PersonDescriptor) Phone() (Phone, bool) { return deref(d.phone) }

// Email returns the email override, if any
func (d PersonDescriptor) Email() (Email, bool) { return deref(d.email) }

// Address returns the address override, if any
func (d PersonDescriptor) Address() (Address, bool) { return deref(d.address) }

// Remark returns the remark override, if any
func (d PersonDescriptor) Remark() (Remark, bool) { return deref(d.remark) }

// Tags returns a fresh copy of the tag override, if any
func (d PersonDescriptor) Tags() ([]Tag, bool) {
	if !d.hasTags {
		return nil, false
	}
	return slices.Clone(d.tags), true
}

// IsAnyFieldEdited reports whether at least one field is set
func (d PersonDescriptor) IsAnyFieldEdited() bool {
	return d.name != nil || d.phone != nil || d.email != nil ||
		d.address != nil || d.hasTags || d.remark != nil
}

// IsRemarkEdited reports whether the remark field is set
func (d PersonDescriptor) IsRemarkEdited() bool {
	return d.remark != nil
}

// TouchesIdentity reports whether any identity field is set
func (d PersonDescriptor) TouchesIdentity() bool {
	return d.name != nil || d.phone != nil || d.email != nil || d.address != nil
}

// Apply returns a new Person taking each set field from d and the rest from target
func (d PersonDescriptor) Apply(target Person) Person {
	tags := target.tags
	if d.hasTags {
		tags = d.tags
	}
	return NewPerson(
		orElse(d.name, target.name),
		orElse(d.phone, target.phone),
		orElse(d.email, target.email),
		orElse(d.address, target.address),
		tags,
		orElse(d.remark, target.remark),
	)
}

// Equal reports whether both descriptors set the same fields to the same values
func (d PersonDescriptor) Equal(other PersonDescriptor) bool {
	return ptrEqual(d.name, other.name) &&
		ptrEqual(d.phone, other.phone) &&
		ptrEqual(d.email, other.email) &&
		ptrEqual(d.address, other.address) &&
		d.hasTags == other.hasTags &&
		slices.Equal(d.tags, other.tags) &&
		ptrEqual(d.remark, other.remark)
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

func orElse[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
