package render

import (
	"strings"
	"testing"

	"addressbook/internal/domain"
)

func person(name, remark string, tags ...domain.Tag) domain.Person {
	return domain.NewPerson(domain.Name(name), "94351253", "alice@example.com", "123, Jurong West Ave 6", tags, domain.Remark(remark))
}

func TestRenderPerson(t *testing.T) {
	out := RenderPerson(3, person("Alice Pauline", "Likes coffee", "friends"))

	for _, want := range []string{"3.", "Alice Pauline", "friends", "Phone:", "94351253", "Email:", "Address:", "Likes coffee"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderPerson output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPerson_NoRemark(t *testing.T) {
	out := RenderPerson(1, person("Bob", ""))
	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("expected 4 lines without remark, got %d:\n%s", got, out)
	}
}

func TestRenderFilter(t *testing.T) {
	tests := []struct {
		filter domain.Filter
		want   string
	}{
		{domain.ShowAll, "all persons"},
		{domain.NameContainsKeywords("alice", "bob"), "name contains alice or bob"},
		{domain.HasAnyTag("friends"), "tagged friends"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := RenderFilter(tt.filter); got != tt.want {
				t.Errorf("RenderFilter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListing(t *testing.T) {
	out := Listing([]domain.Person{person("Alice", ""), person("Bob", "")}, domain.ShowAll)
	if !strings.Contains(out, "2 shown, all persons") {
		t.Errorf("Listing missing summary:\n%s", out)
	}

	empty := Listing(nil, domain.NameContainsKeywords("zed"))
	if !strings.Contains(empty, "No persons to show.") {
		t.Errorf("empty Listing missing note:\n%s", empty)
	}
}

func TestPlain(t *testing.T) {
	p := person("Alice", "note", "friends")
	got := Plain([]domain.Person{p})
	want := "1. " + p.String() + "\n"
	if got != want {
		t.Errorf("Plain() = %q, want %q", got, want)
	}
}

func TestRenderMessage(t *testing.T) {
	if RenderMessage("", false) != "" {
		t.Error("empty message should render empty")
	}
	if !strings.Contains(RenderMessage("Undo success!", false), "Undo success!") {
		t.Error("success message lost its text")
	}
	if !strings.Contains(RenderMessage("boom", true), "boom") {
		t.Error("error message lost its text")
	}
}

func TestViewBuilder_Message(t *testing.T) {
	if got := NewViewBuilder().Message("", false).String(); got != "" {
		t.Errorf("empty message should add nothing, got %q", got)
	}

	out := NewViewBuilder().Message("New person added: Bob", false).String()
	if !strings.Contains(out, "New person added: Bob") || !strings.HasSuffix(out, "\n") {
		t.Errorf("unexpected message output %q", out)
	}
}
