package store

import (
	"testing"

	"dossier/internal/identity"
)

func person(t *testing.T, name string) identity.Record {
	t.Helper()
	var warn identity.Warnings
	p, err := identity.NewPerson(name, []identity.Field{{Name: "nickname", Value: name}}, &warn)
	if err != nil {
		t.Fatalf("build person: %v", err)
	}
	return p
}

func TestStore_AddAllAndFind(t *testing.T) {
	s := New()
	n := s.AddAll([]identity.Record{person(t, "markov"), person(t, "sue")})
	if n != 2 {
		t.Fatalf("expected 2 stored, got %d", n)
	}

	if s.Find(identity.KindPerson, "markov") == nil {
		t.Error("expected to find markov")
	}
	if s.Find(identity.KindPerson, "nobody") != nil {
		t.Error("expected nil for an absent record")
	}
	if got := s.Names(identity.KindPerson); len(got) != 2 || got[0] != "markov" {
		t.Errorf("expected sorted names, got %v", got)
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 records, got %d", s.Len())
	}

	ingests, stored := s.Totals()
	if ingests != 1 || stored != 2 {
		t.Errorf("expected totals 1/2, got %d/%d", ingests, stored)
	}
}

func TestStore_Remove(t *testing.T) {
	s := New()
	s.AddAll([]identity.Record{person(t, "markov")})

	if !s.Remove(identity.KindPerson, "markov") {
		t.Fatal("expected Remove to succeed")
	}
	if s.Remove(identity.KindPerson, "markov") {
		t.Error("expected a second Remove to fail")
	}
	if s.Len() != 0 {
		t.Errorf("expected an empty store, got %d", s.Len())
	}
}

func TestStore_HashLedger(t *testing.T) {
	s := New()
	if _, ok := s.SeenHash("abc"); ok {
		t.Error("expected an empty ledger")
	}
	s.MarkHash("abc", "people.arch")
	source, ok := s.SeenHash("abc")
	if !ok || source != "people.arch" {
		t.Errorf("expected people.arch, got %q/%v", source, ok)
	}
}
