package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"addressbook/internal/adapters/memory"
	"addressbook/internal/application"
	"addressbook/internal/domain"
)

func newTools(t *testing.T, seed ...domain.Person) (*Tools, *application.Model, *memory.Store) {
	t.Helper()
	store, err := memory.NewStore(seed...)
	require.NoError(t, err)
	model, err := application.LoadModel(context.Background(), store, application.ModelOptions{})
	require.NoError(t, err)
	return NewTools(model, nil), model, store
}

func request(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	var sb strings.Builder
	for _, c := range res.Content {
		switch tc := c.(type) {
		case mcp.TextContent:
			sb.WriteString(tc.Text)
		case *mcp.TextContent:
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}

func call(t *testing.T, h server.ToolHandlerFunc, name string, args map[string]any) (string, bool) {
	t.Helper()
	res, err := h(context.Background(), request(name, args))
	require.NoError(t, err, "handlers report failures in the result, not as errors")
	return resultText(t, res), res.IsError
}

var (
	alice = domain.NewPerson("Alice Pauline", "94351253", "alice@example.com", "123, Jurong West Ave 6", []domain.Tag{"friends"}, "")
	bob   = domain.NewPerson("Bob Choo", "22222222", "bob@example.com", "Block 123, Bobby Street 3", nil, "")
)

func TestAddThenList(t *testing.T) {
	tools, model, _ := newTools(t)

	text, isErr := call(t, tools.addHandler(), "add", map[string]any{
		"name": "John Doe", "phone": "98765432", "email": "johnd@example.com",
		"address": "311, Clementi Ave 2", "tags": "friends, owesMoney",
	})
	require.False(t, isErr, text)
	assert.Contains(t, text, "New person added: John Doe")
	require.Len(t, model.Persons(), 1)
	assert.Equal(t, []domain.Tag{"friends", "owesMoney"}, model.Persons()[0].Tags())

	text, isErr = call(t, tools.listHandler(), "list", nil)
	require.False(t, isErr, text)
	assert.Contains(t, text, "Listed all persons")
	assert.Contains(t, text, "1. John Doe")
}

func TestAddMissingField(t *testing.T) {
	tools, model, _ := newTools(t)

	text, isErr := call(t, tools.addHandler(), "add", map[string]any{
		"name": "John Doe", "phone": "98765432", "email": "johnd@example.com",
	})
	assert.True(t, isErr)
	assert.Contains(t, text, "address")
	assert.Empty(t, model.Persons())
}

func TestRemark(t *testing.T) {
	tools, model, _ := newTools(t, alice, bob)

	text, isErr := call(t, tools.remarkHandler(), "remark", map[string]any{"index": "2", "remark": "Likes coffee"})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Remark updated: Bob Choo")
	assert.Equal(t, domain.Remark("Likes coffee"), model.Persons()[1].Remark())

	text, isErr = call(t, tools.remarkHandler(), "remark", map[string]any{"index": "2", "remark": ""})
	require.False(t, isErr, text)
	assert.Equal(t, domain.Remark(""), model.Persons()[1].Remark())

	_, isErr = call(t, tools.remarkHandler(), "remark", map[string]any{"index": "2"})
	assert.True(t, isErr, "remark without text must fail")
}

func TestEditPartial(t *testing.T) {
	tools, model, _ := newTools(t, alice, bob)

	text, isErr := call(t, tools.editHandler(), "edit", map[string]any{"index": "1", "phone": "91234567", "tags": ""})
	require.False(t, isErr, text)

	got := model.Persons()[0]
	assert.Equal(t, domain.Phone("91234567"), got.Phone())
	assert.Equal(t, alice.Name(), got.Name())
	assert.Empty(t, got.Tags())
}

func TestEditErrors(t *testing.T) {
	tools, model, _ := newTools(t, alice, bob)

	tests := []struct {
		name string
		args map[string]any
	}{
		{"no fields", map[string]any{"index": "1"}},
		{"index out of range", map[string]any{"index": "9", "phone": "123"}},
		{"bad index", map[string]any{"index": "zero", "phone": "123"}},
		{"invalid email", map[string]any{"index": "1", "email": "nope"}},
		{"duplicate", map[string]any{
			"index": "1", "name": "Bob Choo", "phone": "22222222",
			"email": "bob@example.com", "address": "Block 123, Bobby Street 3",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, isErr := call(t, tools.editHandler(), "edit", tt.args)
			assert.True(t, isErr)
			assert.True(t, model.Persons()[0].Equal(alice), "failed edit must not change state")
		})
	}
}

func TestFindThenDeleteUsesFilteredIndex(t *testing.T) {
	tools, model, store := newTools(t, alice, bob)

	text, isErr := call(t, tools.findHandler(), "find", map[string]any{"keywords": "bob"})
	require.False(t, isErr, text)
	assert.Contains(t, text, "1 persons listed!")

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.FilterNameKeywords, snap.Filter.Kind, "view is saved after each call")

	text, isErr = call(t, tools.deleteHandler(), "delete", map[string]any{"index": "1"})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Deleted Person: Bob Choo")
	require.Len(t, model.Persons(), 1)
	assert.True(t, model.Persons()[0].Equal(alice))
}

func TestFindArgs(t *testing.T) {
	tools, _, _ := newTools(t, alice, bob)

	text, isErr := call(t, tools.findHandler(), "find", map[string]any{"tags": "friends"})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Alice Pauline")
	assert.NotContains(t, text, "Bob Choo")

	_, isErr = call(t, tools.findHandler(), "find", nil)
	assert.True(t, isErr)

	_, isErr = call(t, tools.findHandler(), "find", map[string]any{"tags": "friends", "keywords": "alice"})
	assert.True(t, isErr)
}

func TestSortUndoRedo(t *testing.T) {
	tools, model, _ := newTools(t, bob, alice)

	text, isErr := call(t, tools.sortHandler(), "sort", map[string]any{"field": "name"})
	require.False(t, isErr, text)
	assert.True(t, model.Persons()[0].Equal(alice))

	text, isErr = call(t, tools.undoHandler(), "undo", nil)
	require.False(t, isErr, text)
	assert.Contains(t, text, "Undo success!")
	assert.True(t, model.Persons()[0].Equal(bob))

	text, isErr = call(t, tools.redoHandler(), "redo", nil)
	require.False(t, isErr, text)
	assert.True(t, model.Persons()[0].Equal(alice))

	_, isErr = call(t, tools.redoHandler(), "redo", nil)
	assert.True(t, isErr, "nothing left to redo")
}

func TestClear(t *testing.T) {
	tools, model, _ := newTools(t, alice, bob)

	text, isErr := call(t, tools.clearHandler(), "clear", nil)
	require.False(t, isErr, text)
	assert.Empty(t, model.Persons())
}

func TestRun(t *testing.T) {
	tools, model, _ := newTools(t, alice, bob)

	text, isErr := call(t, tools.runHandler(), "run", map[string]any{"line": "remark 1 r/Likes coffee"})
	require.False(t, isErr, text)
	assert.Equal(t, domain.Remark("Likes coffee"), model.Persons()[0].Remark())

	text, isErr = call(t, tools.runHandler(), "run", map[string]any{"line": "teleport 1"})
	assert.True(t, isErr)
	assert.Contains(t, text, application.ErrUnknownCommand.Error())
}

type failingSession struct {
	*application.Model
}

func (f failingSession) SaveView(context.Context) error {
	return errors.New("disk full")
}

func TestSaveViewFailureAfterChangeIsWarning(t *testing.T) {
	_, model, store := newTools(t, alice, bob)
	tools := NewTools(failingSession{model}, nil)

	text, isErr := call(t, tools.deleteHandler(), "delete", map[string]any{"index": "1"})
	assert.False(t, isErr, "the delete was committed and must not be reported as failed")
	assert.Contains(t, text, "Deleted Person: Alice Pauline")
	assert.Contains(t, text, "disk full")

	require.Len(t, model.Persons(), 1)
	assert.True(t, model.Persons()[0].Equal(bob))

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	stored := snap.CurrentBook().Persons()
	require.Len(t, stored, 1)
	assert.True(t, stored[0].Equal(bob))
}

func TestSaveViewFailureOnListIsWarning(t *testing.T) {
	_, model, _ := newTools(t, alice)
	tools := NewTools(failingSession{model}, nil)

	text, isErr := call(t, tools.listHandler(), "list", nil)
	assert.False(t, isErr)
	assert.Contains(t, text, "1. Alice Pauline")
	assert.Contains(t, text, "disk full")
}

func TestConcurrentCallsSerialized(t *testing.T) {
	defer goleak.VerifyNone(t)
	tools, model, _ := newTools(t)

	g, ctx := errgroup.WithContext(context.Background())
	for i := range 10 {
		g.Go(func() error {
			res, err := tools.addHandler()(ctx, request("add", map[string]any{
				"name": "Person " + string(rune('A'+i)), "phone": "12345678",
				"email": "p@example.com", "address": "Street 1",
			}))
			if err != nil {
				return err
			}
			if res.IsError {
				return errors.New(resultText(t, res))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, model.Persons(), 10)
	assert.Equal(t, 10, len(model.FilteredPersons()))
}

func TestRegister(t *testing.T) {
	tools, _, _ := newTools(t)
	s := server.NewMCPServer("addressbook-test", "0.0.0", server.WithToolCapabilities(true))
	tools.Register(s)
	require.NotNil(t, s)
}
