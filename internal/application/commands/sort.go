package commands

import (
	"context"
	"fmt"

	"addressbook/internal/domain"
	"addressbook/internal/ports"
)

const MessageSortSuccess = "Sorted all persons by %s"

// SortCommand reorders the whole address book by one field
type SortCommand struct {
	model ports.Model
	Field domain.SortField
}

// NewSortCommand creates a new SortCommand
func NewSortCommand(model ports.Model, field domain.SortField) *SortCommand {
	return &SortCommand{
		model: model,
		Field: field,
	}
}

// Word returns sort
func (c *SortCommand) Word() string {
	return WordSort
}

// Execute runs the sort command
func (c *SortCommand) Execute(ctx context.Context) (*Result, error) {
	c.model.SortPersons(c.Field)
	c.model.UpdateFilter(domain.ShowAll)

	if err := c.model.Commit(ctx); err != nil {
		return nil, err
	}

	return &Result{
		Message: fmt.Sprintf(MessageSortSuccess, c.Field),
	}, nil
}
