package commands

import (
	"context"

	"addressbook/internal/application"
	"addressbook/internal/ports"
)

const (
	MessageUndoSuccess = "Undo success!"
	MessageRedoSuccess = "Redo success!"
)

// UndoCommand restores the previous committed state
type UndoCommand struct {
	model ports.Model
}

// NewUndoCommand creates a new UndoCommand
func NewUndoCommand(model ports.Model) *UndoCommand {
	return &UndoCommand{model: model}
}

// Word returns undo
func (c *UndoCommand) Word() string {
	return WordUndo
}

// Execute runs the undo command
func (c *UndoCommand) Execute(ctx context.Context) (*Result, error) {
	if !c.model.CanUndo() {
		return nil, application.ErrNothingToUndo
	}
	if err := c.model.Undo(ctx); err != nil {
		return nil, err
	}
	return &Result{Message: MessageUndoSuccess}, nil
}

// RedoCommand restores the most recently undone state
type RedoCommand struct {
	model ports.Model
}

// NewRedoCommand creates a new RedoCommand
func NewRedoCommand(model ports.Model) *RedoCommand {
	return &RedoCommand{model: model}
}

// Word returns redo
func (c *RedoCommand) Word() string {
	return WordRedo
}

// Execute runs the redo command
func (c *RedoCommand) Execute(ctx context.Context) (*Result, error) {
	if !c.model.CanRedo() {
		return nil, application.ErrNothingToRedo
	}
	if err := c.model.Redo(ctx); err != nil {
		return nil, err
	}
	return &Result{Message: MessageRedoSuccess}, nil
}
