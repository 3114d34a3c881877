package commands

import (
	"context"
	"strings"
	"testing"

	"addressbook/internal/adapters/memory"
	"addressbook/internal/application"
	"addressbook/internal/domain"
)

func newModel(t *testing.T, seed ...domain.Person) *application.Model {
	t.Helper()
	store, err := memory.NewStore(seed...)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	m, err := application.LoadModel(context.Background(), store, application.ModelOptions{})
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	return m
}

func person(name, phone, email, address string, remark string, tags ...domain.Tag) domain.Person {
	return domain.NewPerson(domain.Name(name), domain.Phone(phone), domain.Email(email), domain.Address(address), tags, domain.Remark(remark))
}

var (
	alice = person("Alice Pauline", "94351253", "alice@example.com", "123, Jurong West Ave 6", "", "friends")
	bob   = person("Bob Choo", "22222222", "bob@example.com", "Block 123, Bobby Street 3", "", "friends", "owesMoney")
	carl  = person("Carl Kurz", "95352563", "heinz@example.com", "wall street", "")
)

func index(t *testing.T, oneBased int) domain.Index {
	t.Helper()
	idx, err := domain.IndexFromOneBased(oneBased)
	if err != nil {
		t.Fatalf("IndexFromOneBased(%d): %v", oneBased, err)
	}
	return idx
}

func descriptor(t *testing.T, f domain.DescriptorFields) domain.PersonDescriptor {
	t.Helper()
	d, err := domain.NewPersonDescriptor(f)
	if err != nil {
		t.Fatalf("NewPersonDescriptor failed: %v", err)
	}
	return d
}

func str(s string) *string { return &s }

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
