package commands

import (
	"context"
	"fmt"

	"addressbook/internal/application"
	"addressbook/internal/domain"
	"addressbook/internal/ports"
)

const (
	MessageEditSuccess    = "Edited Person: %s"
	MessageRemarkSuccess  = "Remark updated: %s"
	MessageRemarkNotAdded = "remark not added, remark requires text input"
)

// UpdateCommand applies a sparse PersonDescriptor to the person at Index
// in the displayed list. It backs both the edit and remark commands.
type UpdateCommand struct {
	model      ports.Model
	word       string
	Index      domain.Index
	Descriptor domain.PersonDescriptor
}

// NewEditCommand creates an UpdateCommand that requires at least one edited field
func NewEditCommand(model ports.Model, index domain.Index, descriptor domain.PersonDescriptor) *UpdateCommand {
	return &UpdateCommand{
		model:      model,
		word:       WordEdit,
		Index:      index,
		Descriptor: descriptor,
	}
}

// NewRemarkCommand creates an UpdateCommand that requires the remark field to be set
func NewRemarkCommand(model ports.Model, index domain.Index, descriptor domain.PersonDescriptor) *UpdateCommand {
	return &UpdateCommand{
		model:      model,
		word:       WordRemark,
		Index:      index,
		Descriptor: descriptor,
	}
}

// Word returns edit or remark
func (c *UpdateCommand) Word() string {
	return c.word
}

// Validate checks that the descriptor carries something to apply
func (c *UpdateCommand) Validate() error {
	if c.word == WordRemark {
		if !c.Descriptor.IsRemarkEdited() {
			return &application.ValidationError{
				Field:   "remark",
				Message: MessageRemarkNotAdded,
			}
		}
		return nil
	}

	if !c.Descriptor.IsAnyFieldEdited() {
		return application.ErrNoFieldsEdited
	}
	return nil
}

// Execute resolves the target, builds the updated person, guards against
// duplicates and commits the replacement. Nothing changes when an error is returned.
func (c *UpdateCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	target, err := application.ResolveIndex(c.Index, c.model.FilteredPersons())
	if err != nil {
		return nil, err
	}

	edited := c.Descriptor.Apply(target)

	if c.Descriptor.TouchesIdentity() && !target.IsSamePerson(edited) && c.model.HasPerson(edited) {
		return nil, application.ErrDuplicatePerson
	}

	if err := c.model.SetPerson(target, edited); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}
	c.model.UpdateFilter(domain.ShowAll)

	if err := c.model.Commit(ctx); err != nil {
		return nil, err
	}

	format := MessageEditSuccess
	if c.word == WordRemark {
		format = MessageRemarkSuccess
	}
	return &Result{
		Message: fmt.Sprintf(format, edited),
		Person:  &edited,
	}, nil
}

// Equal reports whether both commands would apply the same patch to the same index
func (c *UpdateCommand) Equal(other *UpdateCommand) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.word == other.word &&
		c.Index == other.Index &&
		c.Descriptor.Equal(other.Descriptor)
}
