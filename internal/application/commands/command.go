package commands

import (
	"context"

	"addressbook/internal/domain"
)

// Command words, one per variant
const (
	WordAdd    = "add"
	WordEdit   = "edit"
	WordRemark = "remark"
	WordDelete = "delete"
	WordSort   = "sort"
	WordFind   = "find"
	WordList   = "list"
	WordClear  = "clear"
	WordUndo   = "undo"
	WordRedo   = "redo"
)

// Words lists every command word in help order
var Words = []string{
	WordAdd, WordEdit, WordRemark, WordDelete, WordSort,
	WordFind, WordList, WordClear, WordUndo, WordRedo,
}

// Result contains the outcome of a command
type Result struct {
	Message string
	Person  *domain.Person // the person added, edited or deleted, if any
}

// Command is one executable address book operation
type Command interface {
	// Word returns the command word that selects this variant
	Word() string

	// Execute runs the command against its model
	Execute(ctx context.Context) (*Result, error)
}
