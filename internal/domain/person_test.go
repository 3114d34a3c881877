package domain

import (
	"strings"
	"testing"
)

func TestPerson_IsSamePerson(t *testing.T) {
	a := alice(t)

	tests := []struct {
		name  string
		other Person
		same  bool
	}{
		{name: "identical", other: a, same: true},
		{
			name:  "different remark and tags",
			other: mustPerson(t, "Alice Pauline", "94351253", "alice@example.com", "123, Jurong West Ave 6, #08-111", []string{"family"}, "Likes coffee"),
			same:  true,
		},
		{
			name:  "different phone",
			other: mustPerson(t, "Alice Pauline", "999", "alice@example.com", "123, Jurong West Ave 6, #08-111", []string{"friends"}, ""),
			same:  false,
		},
		{name: "different person", other: bob(t), same: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.IsSamePerson(tt.other); got != tt.same {
				t.Errorf("IsSamePerson() = %v, want %v", got, tt.same)
			}
		})
	}
}

func TestPerson_Equal(t *testing.T) {
	a := alice(t)
	withRemark := mustPerson(t, "Alice Pauline", "94351253", "alice@example.com", "123, Jurong West Ave 6, #08-111", []string{"friends"}, "x")

	if !a.Equal(alice(t)) {
		t.Error("expected equal persons")
	}
	if a.Equal(withRemark) {
		t.Error("expected persons with different remarks to differ")
	}
}

func TestPerson_TagsAreCopied(t *testing.T) {
	tags := []Tag{"friends"}
	p := NewPerson("Amy", "123", "amy@example.com", "Somewhere", tags, "")

	tags[0] = "enemies"
	if !p.HasTag("friends") {
		t.Error("mutating constructor input changed the person")
	}

	out := p.Tags()
	out[0] = "enemies"
	if !p.HasTag("friends") {
		t.Error("mutating accessor output changed the person")
	}
}

func TestPerson_String(t *testing.T) {
	p := mustPerson(t, "Alice Pauline", "94351253", "alice@example.com", "Jurong", []string{"friends", "colleagues"}, "Likes coffee")
	got := p.String()
	want := "Alice Pauline Phone: 94351253 Email: alice@example.com Address: Jurong Remark: Likes coffee Tags: [colleagues][friends]"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !strings.HasPrefix(got, "Alice Pauline") {
		t.Errorf("expected rendering to start with the name, got %q", got)
	}
}
