package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func names(ab AddressBook) []string {
	var out []string
	for _, p := range ab.Persons() {
		out = append(out, string(p.Name()))
	}
	return out
}

func TestNewAddressBook_RejectsDuplicates(t *testing.T) {
	_, err := NewAddressBook(alice(t), alice(t))
	if !errors.Is(err, ErrDuplicatePerson) {
		t.Fatalf("expected ErrDuplicatePerson, got %v", err)
	}
}

func TestAddressBook_Set(t *testing.T) {
	a, b := alice(t), bob(t)
	ab, err := NewAddressBook(a, b)
	if err != nil {
		t.Fatalf("NewAddressBook failed: %v", err)
	}

	remarked := mustPerson(t, "Alice Pauline", "94351253", "alice@example.com", "123, Jurong West Ave 6, #08-111", []string{"friends"}, "Likes coffee")
	if err := ab.Set(a, remarked); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := ab.Persons()[0]; !got.Equal(remarked) {
		t.Errorf("expected %v at position 0, got %v", remarked, got)
	}

	asBob := mustPerson(t, "Bob Choo", "22222222", "bob@example.com", "Block 123, Bobby Street 3", nil, "")
	if err := ab.Set(remarked, asBob); !errors.Is(err, ErrDuplicatePerson) {
		t.Errorf("expected ErrDuplicatePerson, got %v", err)
	}

	if err := ab.Set(a, remarked); !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("expected ErrPersonNotFound for stale target, got %v", err)
	}
}

func TestAddressBook_CloneIsIndependent(t *testing.T) {
	ab, _ := NewAddressBook(alice(t))
	clone := ab.Clone()

	if err := clone.Add(bob(t)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if ab.Len() != 1 {
		t.Errorf("original changed after mutating clone: %v", names(ab))
	}

	snapshot := ab
	if err := ab.Set(alice(t), mustPerson(t, "Alice Tan", "111", "a@b.com", "X", nil, "")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if names(snapshot)[0] != "Alice Pauline" {
		t.Errorf("value copy observed Set: %v", names(snapshot))
	}
}

func TestAddressBook_RemoveAndClear(t *testing.T) {
	ab, _ := NewAddressBook(alice(t), bob(t))

	if err := ab.Remove(alice(t)); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if diff := cmp.Diff([]string{"Bob Choo"}, names(ab)); diff != "" {
		t.Errorf("after remove (-want +got):\n%s", diff)
	}
	if err := ab.Remove(alice(t)); !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("expected ErrPersonNotFound, got %v", err)
	}

	ab.Clear()
	if ab.Len() != 0 {
		t.Errorf("expected empty book, got %v", names(ab))
	}
}

func TestAddressBook_Sort(t *testing.T) {
	carl := mustPerson(t, "carl Kurz", "95352563", "heinz@example.com", "wall street", nil, "")
	daniel := mustPerson(t, "Daniel Meier", "87652533", "cornelia@example.com", "10th street", nil, "")

	tests := []struct {
		name  string
		field SortField
		want  []string
	}{
		{name: "by name ignores case", field: SortByName, want: []string{"Alice Pauline", "Bob Choo", "carl Kurz", "Daniel Meier"}},
		{name: "by phone", field: SortByPhone, want: []string{"Bob Choo", "Daniel Meier", "Alice Pauline", "carl Kurz"}},
		{name: "by email", field: SortByEmail, want: []string{"Alice Pauline", "Bob Choo", "Daniel Meier", "carl Kurz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab, err := NewAddressBook(daniel, carl, bob(t), alice(t))
			if err != nil {
				t.Fatalf("NewAddressBook failed: %v", err)
			}
			ab.Sort(tt.field)
			if diff := cmp.Diff(tt.want, names(ab)); diff != "" {
				t.Errorf("Sort(%s) (-want +got):\n%s", tt.field, diff)
			}
		})
	}
}

func TestParseSortField(t *testing.T) {
	tests := []struct {
		in      string
		want    SortField
		wantErr bool
	}{
		{in: "", want: SortByName},
		{in: "Phone", want: SortByPhone},
		{in: "e", want: SortByEmail},
		{in: "address", want: SortByAddress},
		{in: "tags", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortField(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSortField(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSortField(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
