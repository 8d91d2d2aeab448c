package store

import (
	"sync"

	"dossier/internal/identity"
)

// Store is the shared record collection behind the HTTP surface: a
// Book guarded by a lock, plus a content-hash ledger used to skip
// re-ingesting identical uploads. Records are never mutated after
// they are stored, so readers may marshal them outside the lock.
type Store struct {
	mu     sync.RWMutex
	book   *identity.Book
	hashes map[string]string // content hash -> source label

	ingests int
	stored  int
}

func New() *Store {
	return &Store{
		book:   identity.NewBook(),
		hashes: make(map[string]string),
	}
}

// Add stores one finished top-level record.
func (s *Store) Add(rec identity.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.book.Add(rec)
}

// AddAll stores the records of one parse and bumps the ingest
// counters.
func (s *Store) AddAll(recs []identity.Record) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range recs {
		s.book.Add(rec)
	}
	s.ingests++
	s.stored += len(recs)
	return len(recs)
}

// Find returns the top-level record with the given kind and name, or
// nil.
func (s *Store) Find(kind identity.Kind, name string) identity.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book.Find(kind, name)
}

// Parent resolves a record's parent, or nil.
func (s *Store) Parent(rec identity.Record) identity.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book.Parent(rec)
}

// Names lists the top-level record names of one kind, sorted.
func (s *Store) Names(kind identity.Kind) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book.Names(kind)
}

// Counts reports top-level records per kind.
func (s *Store) Counts() map[identity.Kind]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book.Counts()
}

// Len is the number of top-level records currently stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book.Len()
}

// Remove drops a top-level record.
func (s *Store) Remove(kind identity.Kind, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Remove(kind, name)
}

// Totals reports how many ingests ran and how many records they
// stored, cumulatively.
func (s *Store) Totals() (ingests, stored int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ingests, s.stored
}

// SeenHash reports whether content with this hash was already
// ingested, and from which source.
func (s *Store) SeenHash(hash string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	source, ok := s.hashes[hash]
	return source, ok
}

// MarkHash records that content with this hash came from source.
func (s *Store) MarkHash(hash, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashes[hash] = source
}
