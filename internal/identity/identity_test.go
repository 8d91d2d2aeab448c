package identity

import (
	"strings"
	"testing"
)

func TestNewPerson_KnownFields(t *testing.T) {
	fields := []Field{
		{"fullname", "Mark Overmeer"},
		{"firstname", "Mark"},
		{"nickname", "markov"},
		{"birth", "1970-04-27"},
		{"language", "nl-NL"},
	}
	var warn Warnings
	p, err := NewPerson("markov", fields, &warn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warn) != 0 {
		t.Fatalf("unexpected warnings: %v", warn)
	}
	if p.FullName != "Mark Overmeer" || p.FirstName != "Mark" || p.Nickname != "markov" {
		t.Errorf("fields not applied: %+v", p)
	}
	if p.Kind() != KindPerson || p.Name() != "markov" {
		t.Errorf("expected person markov, got %s %q", p.Kind(), p.Name())
	}
	if p.ID() == 0 {
		t.Error("expected a nonzero ID")
	}
	if p.ParentID() != 0 {
		t.Errorf("expected no parent before attach, got %d", p.ParentID())
	}
}

func TestNewPerson_EmptyNameIsFatal(t *testing.T) {
	var warn Warnings
	if _, err := NewPerson("", nil, &warn); err == nil {
		t.Error("expected an error for a nameless person")
	}
	if _, err := NewEmail("", nil, &warn); err == nil {
		t.Error("expected an error for a nameless e-mail role")
	}
	if _, err := NewLocation("", nil, &warn); err == nil {
		t.Error("expected an error for a nameless location")
	}
	if _, err := NewSystem("", nil, &warn); err == nil {
		t.Error("expected an error for a nameless system")
	}
	if _, err := NewEmailList("", nil, &warn); err == nil {
		t.Error("expected an error for a nameless list")
	}
}

func TestNewPerson_UnknownFieldWarnsAndKeeps(t *testing.T) {
	var warn Warnings
	p, err := NewPerson("markov", []Field{{"shoesize", "48"}}, &warn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warn) != 1 || !strings.Contains(warn[0], "shoesize") {
		t.Errorf("expected one warning naming the field, got %v", warn)
	}
	if p.Extra["shoesize"] != "48" {
		t.Errorf("expected the field kept in Extra, got %v", p.Extra)
	}
}

func TestNewPerson_DuplicateFieldLastWins(t *testing.T) {
	var warn Warnings
	p, err := NewPerson("markov", []Field{{"nickname", "one"}, {"nickname", "two"}}, &warn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Nickname != "two" {
		t.Errorf("expected the last value to win, got %q", p.Nickname)
	}
	if len(warn) != 0 {
		t.Errorf("expected duplicates to be silent, got %v", warn)
	}
}

func TestNewPerson_BadBirthWarns(t *testing.T) {
	var warn Warnings
	p, err := NewPerson("markov", []Field{{"birth", "in april"}}, &warn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warn) != 1 || !strings.Contains(warn[0], "birth") {
		t.Errorf("expected a birth warning, got %v", warn)
	}
	if p.Birth != "in april" {
		t.Errorf("expected the raw value kept, got %q", p.Birth)
	}
}

func TestNewEmail_AddressWithoutAtWarns(t *testing.T) {
	var warn Warnings
	e, err := NewEmail("home", []Field{{"address", "not-an-address"}}, &warn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warn) != 1 || !strings.Contains(warn[0], "@") {
		t.Errorf("expected an address warning, got %v", warn)
	}
	if e.Address != "not-an-address" {
		t.Errorf("expected the raw value kept, got %q", e.Address)
	}

	warn = nil
	if _, err := NewEmail("home", []Field{{"address", "mark@x.y"}}, &warn); err != nil || len(warn) != 0 {
		t.Errorf("expected a plain address to pass, got err %v, warnings %v", err, warn)
	}
}

func TestPerson_AttachRoles(t *testing.T) {
	var warn Warnings
	p, _ := NewPerson("markov", nil, &warn)
	e, _ := NewEmail("home", []Field{{"address", "mark@x.y"}}, &warn)
	l, _ := NewLocation("home", []Field{{"city", "Arnhem"}}, &warn)
	s, _ := NewSystem("shell", []Field{{"hostname", "box.x.y"}}, &warn)

	p.Attach(e, &warn)
	p.Attach(l, &warn)
	p.Attach(s, &warn)
	if len(warn) != 0 {
		t.Fatalf("unexpected warnings: %v", warn)
	}

	if p.Email("home") != e || p.Location("home") != l || p.System("shell") != s {
		t.Error("expected roles to be retrievable by name")
	}
	if e.ParentID() != p.ID() || l.ParentID() != p.ID() || s.ParentID() != p.ID() {
		t.Error("expected attach to set the parent ID")
	}
	if p.Email("work") != nil {
		t.Error("expected nil for an absent role name")
	}
}

func TestPerson_AttachDuplicateRoleReplaces(t *testing.T) {
	var warn Warnings
	p, _ := NewPerson("markov", nil, &warn)
	first, _ := NewEmail("home", []Field{{"address", "old@x.y"}}, &warn)
	second, _ := NewEmail("home", []Field{{"address", "new@x.y"}}, &warn)

	p.Attach(first, &warn)
	if len(warn) != 0 {
		t.Fatalf("unexpected warnings: %v", warn)
	}
	p.Attach(second, &warn)
	if len(warn) != 1 || !strings.Contains(warn[0], "replaced") {
		t.Errorf("expected a replacement warning, got %v", warn)
	}
	if len(p.Emails) != 1 || p.Email("home").Address != "new@x.y" {
		t.Errorf("expected the new role to replace the old, got %+v", p.Emails)
	}
}

func TestPerson_AttachRejectsOtherKinds(t *testing.T) {
	var warn Warnings
	p, _ := NewPerson("markov", nil, &warn)
	other, _ := NewPerson("sue", []Field{{"nickname", "s"}}, &warn)

	p.Attach(other, &warn)
	if len(warn) != 1 || !strings.Contains(warn[0], "cannot contain") {
		t.Errorf("expected a rejection warning, got %v", warn)
	}
	if other.ParentID() != 0 {
		t.Error("expected the rejected child to stay unattached")
	}
}

func TestLeafKinds_RejectChildren(t *testing.T) {
	var warn Warnings
	e, _ := NewEmail("home", nil, &warn)
	l, _ := NewLocation("home", nil, &warn)
	s, _ := NewSystem("shell", nil, &warn)
	child, _ := NewEmail("inner", nil, &warn)

	for _, rec := range []Record{e, l, s} {
		warn = nil
		rec.Attach(child, &warn)
		if len(warn) != 1 {
			t.Errorf("%s: expected a rejection warning, got %v", rec.Kind(), warn)
		}
	}
}

func TestEmailList_AttachEmailsOnly(t *testing.T) {
	var warn Warnings
	l, _ := NewEmailList("devs", []Field{{"description", "core team"}}, &warn)
	e1, _ := NewEmail("mark", []Field{{"address", "mark@x.y"}}, &warn)
	e2, _ := NewEmail("sue", []Field{{"address", "sue@x.y"}}, &warn)
	loc, _ := NewLocation("office", nil, &warn)

	l.Attach(e1, &warn)
	l.Attach(e2, &warn)
	if len(warn) != 0 {
		t.Fatalf("unexpected warnings: %v", warn)
	}
	if len(l.Emails) != 2 || l.Email("sue") != e2 {
		t.Errorf("expected two members, got %+v", l.Emails)
	}

	l.Attach(loc, &warn)
	if len(warn) != 1 || !strings.Contains(warn[0], "cannot contain") {
		t.Errorf("expected a rejection warning, got %v", warn)
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"person", "email", "location", "system", "list"} {
		if _, ok := ParseKind(s); !ok {
			t.Errorf("expected %q to parse", s)
		}
	}
	if _, ok := ParseKind("user"); ok {
		t.Error("keyword user is not a kind")
	}
	if _, ok := ParseKind(""); ok {
		t.Error("empty string is not a kind")
	}
}

func TestRecordIDs_Unique(t *testing.T) {
	var warn Warnings
	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		p, _ := NewPerson("x", nil, &warn)
		if seen[p.ID()] {
			t.Fatalf("duplicate ID %d", p.ID())
		}
		seen[p.ID()] = true
	}
}
