package commands

import (
	"context"

	"addressbook/internal/domain"
	"addressbook/internal/ports"
)

const MessageClearSuccess = "Address book has been cleared!"

// ClearCommand removes every person
type ClearCommand struct {
	model ports.Model
}

// NewClearCommand creates a new ClearCommand
func NewClearCommand(model ports.Model) *ClearCommand {
	return &ClearCommand{model: model}
}

// Word returns clear
func (c *ClearCommand) Word() string {
	return WordClear
}

// Execute runs the clear command
func (c *ClearCommand) Execute(ctx context.Context) (*Result, error) {
	c.model.ClearPersons()
	c.model.UpdateFilter(domain.ShowAll)

	if err := c.model.Commit(ctx); err != nil {
		return nil, err
	}

	return &Result{Message: MessageClearSuccess}, nil
}
