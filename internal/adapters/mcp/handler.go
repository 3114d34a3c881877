// Package mcp exposes address book commands as MCP tools.
package mcp

import (
	"context"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"addressbook/internal/adapters/render"
	"addressbook/internal/application/commands"
	"addressbook/internal/ports"
)

// Tools runs tool calls against one session, one call at a time
type Tools struct {
	mu      sync.Mutex
	session ports.Session
	logger  *zap.Logger
}

// NewTools creates the tool set for session
func NewTools(session ports.Session, logger *zap.Logger) *Tools {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tools{session: session, logger: logger}
}

// Register adds every address book tool to the MCP server.
func (t *Tools) Register(s *server.MCPServer) {
	s.AddTool(listTool(), t.listHandler())
	s.AddTool(findTool(), t.findHandler())
	s.AddTool(addTool(), t.addHandler())
	s.AddTool(editTool(), t.editHandler())
	s.AddTool(remarkTool(), t.remarkHandler())
	s.AddTool(deleteTool(), t.deleteHandler())
	s.AddTool(sortTool(), t.sortHandler())
	s.AddTool(clearTool(), t.clearHandler())
	s.AddTool(undoTool(), t.undoHandler())
	s.AddTool(redoTool(), t.redoHandler())
	s.AddTool(runTool(), t.runHandler())
}

// execute builds and runs one command, then saves the view.
// build runs under the lock so it sees the state left by the previous call.
// Once the command has run its change is committed, so a failed view save
// only adds a note to the result.
func (t *Tools) execute(ctx context.Context, build func(ports.Model) (commands.Command, error)) (*mcp.CallToolResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cmd, err := build(t.session)
	if err != nil {
		return toolError(err)
	}

	result, err := cmd.Execute(ctx)
	if err != nil {
		t.logger.Warn("tool command failed", zap.String("command", cmd.Word()), zap.Error(err))
		return toolError(err)
	}

	t.logger.Debug("tool command executed", zap.String("command", cmd.Word()))

	text := result.Message
	switch cmd.Word() {
	case commands.WordList, commands.WordFind, commands.WordUndo, commands.WordRedo:
		if listing := render.Plain(t.session.FilteredPersons()); listing != "" {
			text += "\n" + listing
		}
	}

	if err := t.session.SaveView(ctx); err != nil {
		t.logger.Warn("failed to save view", zap.String("command", cmd.Word()), zap.Error(err))
		text += "\nwarning: " + err.Error()
	}
	return mcp.NewToolResultText(text), nil
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// optString returns nil when key was not passed, so absent and empty stay distinct
func optString(req mcp.CallToolRequest, key string) *string {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// splitList splits a comma or space separated argument
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
