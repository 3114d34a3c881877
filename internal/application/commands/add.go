package commands

import (
	"context"
	"fmt"

	"addressbook/internal/application"
	"addressbook/internal/domain"
	"addressbook/internal/ports"
)

const MessageAddSuccess = "New person added: %s"

// AddCommand adds a new person to the end of the address book
type AddCommand struct {
	model  ports.Model
	Person domain.Person
}

// NewAddCommand creates a new AddCommand
func NewAddCommand(model ports.Model, person domain.Person) *AddCommand {
	return &AddCommand{
		model:  model,
		Person: person,
	}
}

// Word returns add
func (c *AddCommand) Word() string {
	return WordAdd
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context) (*Result, error) {
	if c.model.HasPerson(c.Person) {
		return nil, application.ErrDuplicatePerson
	}

	if err := c.model.AddPerson(c.Person); err != nil {
		return nil, fmt.Errorf("failed to add person: %w", err)
	}

	if err := c.model.Commit(ctx); err != nil {
		return nil, err
	}

	added := c.Person
	return &Result{
		Message: fmt.Sprintf(MessageAddSuccess, added),
		Person:  &added,
	}, nil
}
