package application

import (
	"fmt"
	"strings"

	"addressbook/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts field names to words for readable error messages
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"index":    "person index",
		"keywords": "at least one keyword",
		"tags":     "at least one tag",
		"field":    "sort field",
		"line":     "command",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ResolveIndex returns the person displayed at idx.
// Returns an IndexError (matching ErrInvalidIndex) when idx is outside the listing.
func ResolveIndex(idx domain.Index, listed []domain.Person) (domain.Person, error) {
	if idx.ZeroBased() >= len(listed) {
		return domain.Person{}, &IndexError{Index: idx, ListedLen: len(listed)}
	}
	return listed[idx.ZeroBased()], nil
}
