package commands

import (
	"context"
	"fmt"

	"addressbook/internal/application"
	"addressbook/internal/domain"
	"addressbook/internal/ports"
)

const MessageDeleteSuccess = "Deleted Person: %s"

// DeleteCommand deletes the person at Index in the displayed list
type DeleteCommand struct {
	model ports.Model
	Index domain.Index
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(model ports.Model, index domain.Index) *DeleteCommand {
	return &DeleteCommand{
		model: model,
		Index: index,
	}
}

// Word returns delete
func (c *DeleteCommand) Word() string {
	return WordDelete
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*Result, error) {
	target, err := application.ResolveIndex(c.Index, c.model.FilteredPersons())
	if err != nil {
		return nil, err
	}

	if err := c.model.DeletePerson(target); err != nil {
		return nil, fmt.Errorf("failed to delete person: %w", err)
	}

	if err := c.model.Commit(ctx); err != nil {
		return nil, err
	}

	return &Result{
		Message: fmt.Sprintf(MessageDeleteSuccess, target),
		Person:  &target,
	}, nil
}
