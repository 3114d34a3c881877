package application

import (
	"errors"
	"fmt"

	"addressbook/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrInvalidIndex    = errors.New("the person index provided is invalid")
	ErrDuplicatePerson = domain.ErrDuplicatePerson
	ErrNoFieldsEdited  = errors.New("at least one field to edit must be provided")
	ErrNothingToUndo   = errors.New("no more commands to undo")
	ErrNothingToRedo   = errors.New("no more commands to redo")
	ErrUnknownCommand  = errors.New("unknown command")
)

// ValidationError represents a validation failure with details
type ValidationError = domain.ValidationError

// IndexError reports an index outside the displayed list
type IndexError struct {
	Index     domain.Index
	ListedLen int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s (only %d listed)", ErrInvalidIndex, e.Index, e.ListedLen)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrInvalidIndex
}

// PersistError wraps a store failure; the in-memory state was rolled back
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
