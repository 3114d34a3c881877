package domain

import (
	"slices"
	"strings"
)

// FilterKind identifies which predicate a Filter applies
type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterNameKeywords
	FilterTag
)

// String returns the string representation of a FilterKind
func (k FilterKind) String() string {
	switch k {
	case FilterAll:
		return "all"
	case FilterNameKeywords:
		return "name"
	case FilterTag:
		return "tag"
	default:
		return "unknown"
	}
}

// ParseFilterKind is the inverse of FilterKind.String
func ParseFilterKind(s string) (FilterKind, bool) {
	switch s {
	case "all", "":
		return FilterAll, true
	case "name":
		return FilterNameKeywords, true
	case "tag":
		return FilterTag, true
	default:
		return FilterAll, false
	}
}

// Filter is the explicit view state deciding which persons are displayed
type Filter struct {
	Kind     FilterKind
	Keywords []string
}

// ShowAll displays every person in the address book
var ShowAll = Filter{Kind: FilterAll}

// NameContainsKeywords matches persons whose name contains any keyword as a whole word,
// ignoring case
func NameContainsKeywords(keywords ...string) Filter {
	return Filter{Kind: FilterNameKeywords, Keywords: cleanKeywords(keywords)}
}

// HasAnyTag matches persons carrying at least one of the given tags, ignoring case
func HasAnyTag(tags ...string) Filter {
	return Filter{Kind: FilterTag, Keywords: cleanKeywords(tags)}
}

// Matches reports whether p passes the filter
func (f Filter) Matches(p Person) bool {
	switch f.Kind {
	case FilterNameKeywords:
		words := strings.Fields(string(p.name))
		for _, kw := range f.Keywords {
			for _, w := range words {
				if strings.EqualFold(w, kw) {
					return true
				}
			}
		}
		return false
	case FilterTag:
		for _, kw := range f.Keywords {
			for _, t := range p.tags {
				if strings.EqualFold(string(t), kw) {
					return true
				}
			}
		}
		return false
	default:
		return true
	}
}

// IsShowAll reports whether the filter displays every person
func (f Filter) IsShowAll() bool {
	return f.Kind == FilterAll
}

// Equal reports whether two filters select the same persons by the same rule
func (f Filter) Equal(other Filter) bool {
	return f.Kind == other.Kind && slices.Equal(f.Keywords, other.Keywords)
}

func cleanKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, kw := range in {
		out = append(out, strings.Fields(kw)...)
	}
	return out
}
