package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"addressbook/internal/application/commands"
	"addressbook/internal/ports"
)

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool(commands.WordList,
		mcp.WithDescription("List every person and reset any active filter. Each line starts with the index used by edit, remark and delete."),
	)
}

func (t *Tools) listHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return t.execute(ctx, func(m ports.Model) (commands.Command, error) {
			return commands.NewListCommand(m), nil
		})
	}
}

// --- find ---

func findTool() mcp.Tool {
	return mcp.NewTool(commands.WordFind,
		mcp.WithDescription("Filter the listing by name keywords (whole words, case-insensitive) or by tags. Indices of later commands refer to this filtered listing."),
		mcp.WithString("keywords",
			mcp.Description("Space separated name keywords, e.g. \"alex david\""),
		),
		mcp.WithString("tags",
			mcp.Description("Comma or space separated tags, e.g. \"friends,colleagues\". Used instead of keywords."),
		),
	)
}

func (t *Tools) findHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keywords := req.GetString("keywords", "")
		tags := req.GetString("tags", "")

		return t.execute(ctx, func(m ports.Model) (commands.Command, error) {
			var cmd *commands.FindCommand
			switch {
			case tags != "" && keywords != "":
				return nil, fmt.Errorf("pass either keywords or tags, not both")
			case tags != "":
				cmd = commands.NewFindByTagCommand(m, splitList(tags))
			default:
				cmd = commands.NewFindCommand(m, splitList(keywords))
			}
			if err := cmd.Validate(); err != nil {
				return nil, err
			}
			return cmd, nil
		})
	}
}
