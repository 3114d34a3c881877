package domain

import (
	"strconv"
	"strings"
)

// Index is a position in the displayed person list.
// It is stored zero-based; users see and type one-based numbers.
type Index struct {
	zeroBased int
}

// IndexFromOneBased creates an Index from a one-based position
func IndexFromOneBased(i int) (Index, error) {
	if i < 1 {
		return Index{}, &ValidationError{
			Field:   "index",
			Message: "index is not a non-zero unsigned integer",
		}
	}
	return Index{zeroBased: i - 1}, nil
}

// ParseIndex parses a one-based index as typed on the command line.
// Only plain digits are accepted, so "+1" and "1e0" are rejected.
func ParseIndex(s string) (Index, error) {
	s = strings.TrimSpace(s)
	invalid := &ValidationError{
		Field:   "index",
		Message: "index is not a non-zero unsigned integer",
	}
	if s == "" || strings.IndexFunc(s, isNotDigit) >= 0 {
		return Index{}, invalid
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return Index{}, invalid
	}
	return Index{zeroBased: n - 1}, nil
}

func isNotDigit(r rune) bool {
	return r < '0' || r > '9'
}

// ZeroBased returns the position for slice access
func (i Index) ZeroBased() int { return i.zeroBased }

// OneBased returns the position as shown to users
func (i Index) OneBased() int { return i.zeroBased + 1 }

func (i Index) String() string { return strconv.Itoa(i.OneBased()) }
