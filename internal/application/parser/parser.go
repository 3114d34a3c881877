// Package parser turns a textual command line into a command variant.
package parser

import (
	"fmt"
	"strings"
	"unicode"

	"addressbook/internal/application"
	"addressbook/internal/application/commands"
	"addressbook/internal/domain"
	"addressbook/internal/ports"
)

// Usage holds the help text for each command word
var Usage = map[string]string{
	commands.WordAdd:    "add n/NAME p/PHONE e/EMAIL a/ADDRESS [r/REMARK] [t/TAG]...",
	commands.WordEdit:   "edit INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...",
	commands.WordRemark: "remark INDEX r/[REMARK]",
	commands.WordDelete: "delete INDEX",
	commands.WordSort:   "sort [name|phone|email|address]",
	commands.WordFind:   "find KEYWORD [MORE_KEYWORDS]... | find t/TAG [t/MORE_TAGS]...",
	commands.WordList:   "list",
	commands.WordClear:  "clear",
	commands.WordUndo:   "undo",
	commands.WordRedo:   "redo",
}

var personPrefixes = []Prefix{PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag, PrefixRemark}

// Parse reads a full command line such as "remark 1 r/Likes coffee"
// and returns the command bound to model
func Parse(model ports.Model, line string) (commands.Command, error) {
	if err := application.ValidateRequired("line", line); err != nil {
		return nil, err
	}

	line = strings.TrimSpace(line)
	word, args := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		word, args = line[:i], line[i:]
	}
	return ParseArgs(model, word, strings.TrimSpace(args))
}

// ParseArgs dispatches on word and parses the remaining arguments
func ParseArgs(model ports.Model, word, args string) (commands.Command, error) {
	switch strings.ToLower(word) {
	case commands.WordAdd:
		return parseAdd(model, args)
	case commands.WordEdit:
		return parseUpdate(model, commands.WordEdit, args)
	case commands.WordRemark:
		return parseUpdate(model, commands.WordRemark, args)
	case commands.WordDelete:
		idx, err := parseIndex(commands.WordDelete, args)
		if err != nil {
			return nil, err
		}
		return commands.NewDeleteCommand(model, idx), nil
	case commands.WordSort:
		field, err := domain.ParseSortField(args)
		if err != nil {
			return nil, err
		}
		return commands.NewSortCommand(model, field), nil
	case commands.WordFind:
		return parseFind(model, args)
	case commands.WordList:
		return commands.NewListCommand(model), nil
	case commands.WordClear:
		return commands.NewClearCommand(model), nil
	case commands.WordUndo:
		return commands.NewUndoCommand(model), nil
	case commands.WordRedo:
		return commands.NewRedoCommand(model), nil
	default:
		return nil, fmt.Errorf("%w: %s", application.ErrUnknownCommand, word)
	}
}

func invalidFormat(word string) error {
	return &application.ValidationError{
		Field:   "format",
		Message: fmt.Sprintf("invalid command format, usage: %s", Usage[word]),
	}
}

func parseIndex(word, s string) (domain.Index, error) {
	if strings.TrimSpace(s) == "" {
		return domain.Index{}, invalidFormat(word)
	}
	return domain.ParseIndex(s)
}

func parseAdd(model ports.Model, args string) (commands.Command, error) {
	m := Tokenize(args, personPrefixes...)
	if m.Preamble != "" {
		return nil, invalidFormat(commands.WordAdd)
	}
	for _, p := range []Prefix{PrefixName, PrefixPhone, PrefixEmail, PrefixAddress} {
		if !m.Has(p) {
			return nil, invalidFormat(commands.WordAdd)
		}
	}

	d, err := domain.NewPersonDescriptor(descriptorFields(m))
	if err != nil {
		return nil, err
	}
	return commands.NewAddCommand(model, d.Apply(domain.Person{})), nil
}

func parseUpdate(model ports.Model, word, args string) (commands.Command, error) {
	m := Tokenize(args, personPrefixes...)

	idx, err := parseIndex(word, m.Preamble)
	if err != nil {
		return nil, err
	}

	d, err := domain.NewPersonDescriptor(descriptorFields(m))
	if err != nil {
		return nil, err
	}

	var cmd *commands.UpdateCommand
	if word == commands.WordRemark {
		cmd = commands.NewRemarkCommand(model, idx, d)
	} else {
		cmd = commands.NewEditCommand(model, idx, d)
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return cmd, nil
}

func parseFind(model ports.Model, args string) (commands.Command, error) {
	m := Tokenize(args, PrefixTag)

	var cmd *commands.FindCommand
	if m.Has(PrefixTag) {
		if m.Preamble != "" {
			return nil, invalidFormat(commands.WordFind)
		}
		cmd = commands.NewFindByTagCommand(model, m.All(PrefixTag))
	} else {
		cmd = commands.NewFindCommand(model, strings.Fields(args))
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// descriptorFields maps prefixes to raw descriptor input.
// A single empty t/ clears all tags; an r/ with no text clears the remark.
func descriptorFields(m ArgMultimap) domain.DescriptorFields {
	f := domain.DescriptorFields{
		Name:    m.ValuePtr(PrefixName),
		Phone:   m.ValuePtr(PrefixPhone),
		Email:   m.ValuePtr(PrefixEmail),
		Address: m.ValuePtr(PrefixAddress),
		Remark:  m.ValuePtr(PrefixRemark),
	}
	if tags := m.All(PrefixTag); len(tags) > 0 {
		if len(tags) == 1 && tags[0] == "" {
			f.Tags = []string{}
		} else {
			f.Tags = tags
		}
	}
	return f
}
