package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"addressbook/internal/application/commands"
	"addressbook/internal/application/parser"
	"addressbook/internal/domain"
	"addressbook/internal/ports"
)

func personFieldOptions(required bool) []mcp.ToolOption {
	field := func(name, desc string) mcp.ToolOption {
		opts := []mcp.PropertyOption{mcp.Description(desc)}
		if required {
			opts = append(opts, mcp.Required())
		}
		return mcp.WithString(name, opts...)
	}
	return []mcp.ToolOption{
		field("name", "Full name, letters, digits and spaces"),
		field("phone", "Phone number, at least 3 digits"),
		field("email", "Email address, local-part@domain"),
		field("address", "Postal address"),
		mcp.WithString("tags",
			mcp.Description("Comma or space separated alphanumeric tags. On edit, an empty string removes all tags."),
		),
		mcp.WithString("remark",
			mcp.Description("Free-text remark. An empty string clears it."),
		),
	}
}

// personFields reads the person arguments; arguments not passed stay unset
func personFields(req mcp.CallToolRequest) domain.DescriptorFields {
	f := domain.DescriptorFields{
		Name:    optString(req, "name"),
		Phone:   optString(req, "phone"),
		Email:   optString(req, "email"),
		Address: optString(req, "address"),
		Remark:  optString(req, "remark"),
	}
	if tags := optString(req, "tags"); tags != nil {
		f.Tags = splitList(*tags)
		if f.Tags == nil {
			f.Tags = []string{}
		}
	}
	return f
}

func indexOption() mcp.ToolOption {
	return mcp.WithString("index",
		mcp.Description("One-based index of the person in the current listing"),
		mcp.Required(),
	)
}

// --- add ---

func addTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Add a new person. Fails if a person with the same name, phone, email and address exists."),
	}, personFieldOptions(true)...)
	return mcp.NewTool(commands.WordAdd, opts...)
}

func (t *Tools) addHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fields := personFields(req)

		return t.execute(ctx, func(m ports.Model) (commands.Command, error) {
			required := []struct {
				name  string
				value *string
			}{
				{"name", fields.Name}, {"phone", fields.Phone}, {"email", fields.Email}, {"address", fields.Address},
			}
			for _, r := range required {
				if r.value == nil {
					return nil, &domain.ValidationError{Field: r.name, Message: r.name + " is required"}
				}
			}
			d, err := domain.NewPersonDescriptor(fields)
			if err != nil {
				return nil, err
			}
			return commands.NewAddCommand(m, d.Apply(domain.Person{})), nil
		})
	}
}

// --- edit ---

func editTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Edit the person at index. Only the fields passed are changed."),
		indexOption(),
	}, personFieldOptions(false)...)
	return mcp.NewTool(commands.WordEdit, opts...)
}

func (t *Tools) editHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		index := req.GetString("index", "")
		fields := personFields(req)

		return t.execute(ctx, func(m ports.Model) (commands.Command, error) {
			return buildUpdate(m, commands.WordEdit, index, fields)
		})
	}
}

// --- remark ---

func remarkTool() mcp.Tool {
	return mcp.NewTool(commands.WordRemark,
		mcp.WithDescription("Set or clear the remark of the person at index."),
		indexOption(),
		mcp.WithString("remark",
			mcp.Description("Remark text. An empty string clears the remark."),
			mcp.Required(),
		),
	)
}

func (t *Tools) remarkHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		index := req.GetString("index", "")
		fields := domain.DescriptorFields{Remark: optString(req, "remark")}

		return t.execute(ctx, func(m ports.Model) (commands.Command, error) {
			return buildUpdate(m, commands.WordRemark, index, fields)
		})
	}
}

func buildUpdate(m ports.Model, word, index string, fields domain.DescriptorFields) (commands.Command, error) {
	idx, err := domain.ParseIndex(index)
	if err != nil {
		return nil, err
	}
	d, err := domain.NewPersonDescriptor(fields)
	if err != nil {
		return nil, err
	}

	var cmd *commands.UpdateCommand
	if word == commands.WordRemark {
		cmd = commands.NewRemarkCommand(m, idx, d)
	} else {
		cmd = commands.NewEditCommand(m, idx, d)
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool(commands.WordDelete,
		mcp.WithDescription("Delete the person at index in the current listing."),
		indexOption(),
	)
}

func (t *Tools) deleteHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		index := req.GetString("index", "")

		return t.execute(ctx, func(m ports.Model) (commands.Command, error) {
			idx, err := domain.ParseIndex(index)
			if err != nil {
				return nil, err
			}
			return commands.NewDeleteCommand(m, idx), nil
		})
	}
}

// --- sort ---

func sortTool() mcp.Tool {
	return mcp.NewTool(commands.WordSort,
		mcp.WithDescription("Sort the whole address book. Can be undone."),
		mcp.WithString("field",
			mcp.Description("One of name, phone, email, address. Defaults to name."),
			mcp.Enum("name", "phone", "email", "address"),
		),
	)
}

func (t *Tools) sortHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		field := req.GetString("field", "")

		return t.execute(ctx, func(m ports.Model) (commands.Command, error) {
			f, err := domain.ParseSortField(field)
			if err != nil {
				return nil, err
			}
			return commands.NewSortCommand(m, f), nil
		})
	}
}

// --- clear, undo, redo ---

func clearTool() mcp.Tool {
	return mcp.NewTool(commands.WordClear,
		mcp.WithDescription("Remove every person. Can be undone."),
	)
}

func (t *Tools) clearHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return t.execute(ctx, func(m ports.Model) (commands.Command, error) {
			return commands.NewClearCommand(m), nil
		})
	}
}

func undoTool() mcp.Tool {
	return mcp.NewTool(commands.WordUndo,
		mcp.WithDescription("Restore the address book to the state before the last change."),
	)
}

func (t *Tools) undoHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return t.execute(ctx, func(m ports.Model) (commands.Command, error) {
			return commands.NewUndoCommand(m), nil
		})
	}
}

func redoTool() mcp.Tool {
	return mcp.NewTool(commands.WordRedo,
		mcp.WithDescription("Reapply the most recently undone change."),
	)
}

func (t *Tools) redoHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return t.execute(ctx, func(m ports.Model) (commands.Command, error) {
			return commands.NewRedoCommand(m), nil
		})
	}
}

// --- run ---

func runTool() mcp.Tool {
	return mcp.NewTool("run",
		mcp.WithDescription("Run one command line, e.g. \"remark 1 r/Likes coffee\" or \"edit 2 p/91234567 t/\"."),
		mcp.WithString("line",
			mcp.Description("The command line to run"),
			mcp.Required(),
		),
	)
}

func (t *Tools) runHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		line := req.GetString("line", "")

		return t.execute(ctx, func(m ports.Model) (commands.Command, error) {
			return parser.Parse(m, line)
		})
	}
}
