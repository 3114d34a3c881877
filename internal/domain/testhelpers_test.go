package domain

import "testing"

func mustPerson(t *testing.T, name, phone, email, address string, tags []string, remark string) Person {
	t.Helper()

	n, err := NewName(name)
	if err != nil {
		t.Fatalf("NewName(%q): %v", name, err)
	}
	p, err := NewPhone(phone)
	if err != nil {
		t.Fatalf("NewPhone(%q): %v", phone, err)
	}
	e, err := NewEmail(email)
	if err != nil {
		t.Fatalf("NewEmail(%q): %v", email, err)
	}
	a, err := NewAddress(address)
	if err != nil {
		t.Fatalf("NewAddress(%q): %v", address, err)
	}
	tg, err := NewTags(tags)
	if err != nil {
		t.Fatalf("NewTags(%v): %v", tags, err)
	}
	return NewPerson(n, p, e, a, tg, NewRemark(remark))
}

func alice(t *testing.T) Person {
	return mustPerson(t, "Alice Pauline", "94351253", "alice@example.com",
		"123, Jurong West Ave 6, #08-111", []string{"friends"}, "")
}

func bob(t *testing.T) Person {
	return mustPerson(t, "Bob Choo", "22222222", "bob@example.com",
		"Block 123, Bobby Street 3", []string{"owesMoney", "friends"}, "")
}

func ptr(s string) *string { return &s }
