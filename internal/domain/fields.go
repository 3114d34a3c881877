package domain

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ValidationError represents a field value that failed validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	namePattern  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phonePattern = regexp.MustCompile(`^\d{3,}$`)
	tagPattern   = regexp.MustCompile(`^[\p{L}\p{N}]+$`)

	emailLocalPattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N}+_.\-]*$`)
	emailLabelPattern = regexp.MustCompile(`^[\p{L}\p{N}]([\p{L}\p{N}\-]*[\p{L}\p{N}])?$`)
)

// Name is a person's full name (alphanumeric words separated by spaces)
type Name string

// NewName validates and returns a Name
func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if !namePattern.MatchString(s) {
		return "", &ValidationError{
			Field:   "name",
			Message: "names should only contain alphanumeric characters and spaces, and it should not be blank",
		}
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Phone is a phone number of at least 3 digits
type Phone string

// NewPhone validates and returns a Phone
func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phonePattern.MatchString(s) {
		return "", &ValidationError{
			Field:   "phone",
			Message: "phone numbers should only contain numbers, and it should be at least 3 digits long",
		}
	}
	return Phone(s), nil
}

func (p Phone) String() string { return string(p) }

// Email is an address of the form local-part@domain
type Email string

// NewEmail validates and returns an Email
func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !isValidEmail(s) {
		return "", &ValidationError{
			Field:   "email",
			Message: "emails should be of the format local-part@domain",
		}
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

func isValidEmail(s string) bool {
	local, host, ok := strings.Cut(s, "@")
	if !ok || strings.Contains(host, "@") {
		return false
	}
	if !emailLocalPattern.MatchString(local) {
		return false
	}
	for _, label := range strings.Split(host, ".") {
		if !emailLabelPattern.MatchString(label) {
			return false
		}
	}
	return true
}

// Address is a free-form postal address; it may not be blank
type Address string

// NewAddress validates and returns an Address
func NewAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ValidationError{
			Field:   "address",
			Message: "addresses can take any values, and it should not be blank",
		}
	}
	return Address(s), nil
}

func (a Address) String() string { return string(a) }

// Remark is free text attached to a person. Empty means no remark.
type Remark string

// NewRemark returns a Remark. Any text is accepted, including the empty string.
func NewRemark(s string) Remark {
	return Remark(strings.TrimSpace(s))
}

func (r Remark) String() string { return string(r) }

// Tag is a single alphanumeric label
type Tag string

// NewTag validates and returns a Tag
func NewTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if !tagPattern.MatchString(s) {
		return "", &ValidationError{
			Field:   "tag",
			Message: fmt.Sprintf("tag names should be alphanumeric, got %q", s),
		}
	}
	return Tag(s), nil
}

func (t Tag) String() string { return string(t) }

// NewTags validates every raw tag and returns a sorted set without duplicates
func NewTags(raw []string) ([]Tag, error) {
	tags := make([]Tag, 0, len(raw))
	for _, r := range raw {
		t, err := NewTag(r)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return normalizeTags(tags), nil
}

// normalizeTags returns a sorted, de-duplicated copy of tags
func normalizeTags(tags []Tag) []Tag {
	out := slices.Clone(tags)
	if out == nil {
		out = []Tag{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
