package commands

import (
	"context"
	"fmt"

	"addressbook/internal/application"
	"addressbook/internal/domain"
	"addressbook/internal/ports"
)

const (
	MessageListSuccess   = "Listed all persons"
	MessagePersonsListed = "%d persons listed!"
)

// ListCommand shows every person
type ListCommand struct {
	model ports.Model
}

// NewListCommand creates a new ListCommand
func NewListCommand(model ports.Model) *ListCommand {
	return &ListCommand{model: model}
}

// Word returns list
func (c *ListCommand) Word() string {
	return WordList
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) (*Result, error) {
	c.model.UpdateFilter(domain.ShowAll)
	return &Result{Message: MessageListSuccess}, nil
}

// FindCommand narrows the displayed list with a filter
type FindCommand struct {
	model  ports.Model
	Filter domain.Filter
}

// NewFindCommand creates a FindCommand matching any of the name keywords
func NewFindCommand(model ports.Model, keywords []string) *FindCommand {
	return &FindCommand{
		model:  model,
		Filter: domain.NameContainsKeywords(keywords...),
	}
}

// NewFindByTagCommand creates a FindCommand matching any of the tags
func NewFindByTagCommand(model ports.Model, tags []string) *FindCommand {
	return &FindCommand{
		model:  model,
		Filter: domain.HasAnyTag(tags...),
	}
}

// Word returns find
func (c *FindCommand) Word() string {
	return WordFind
}

// Validate checks that the filter has something to match
func (c *FindCommand) Validate() error {
	if len(c.Filter.Keywords) == 0 {
		field := "keywords"
		if c.Filter.Kind == domain.FilterTag {
			field = "tags"
		}
		return application.ValidateRequired(field, "")
	}
	return nil
}

// Execute runs the find command
func (c *FindCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.model.UpdateFilter(c.Filter)
	return &Result{
		Message: fmt.Sprintf(MessagePersonsListed, len(c.model.FilteredPersons())),
	}, nil
}
