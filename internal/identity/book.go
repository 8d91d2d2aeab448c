package identity

import "sort"

// Book holds finished top-level records keyed by kind and name, and
// owns the ID index for every record in every stored tree. Parent
// links are plain IDs resolved through the index on demand, so
// dropping a tree never leaves dangling pointers behind. A Book is
// not goroutine-safe.
type Book struct {
	records map[Kind]map[string]Record
	index   map[uint64]Record
}

func NewBook() *Book {
	return &Book{
		records: make(map[Kind]map[string]Record),
		index:   make(map[uint64]Record),
	}
}

// Add stores a top-level record and indexes its whole subtree. A
// record with the same kind and name replaces the previous one.
func (b *Book) Add(rec Record) {
	byName := b.records[rec.Kind()]
	if byName == nil {
		byName = make(map[string]Record)
		b.records[rec.Kind()] = byName
	}
	if old := byName[rec.Name()]; old != nil {
		b.dropTree(old)
	}
	byName[rec.Name()] = rec
	b.indexTree(rec)
}

// Find returns the top-level record with the given kind and name, or
// nil.
func (b *Book) Find(kind Kind, name string) Record {
	return b.records[kind][name]
}

// ByID resolves any indexed record, top-level or nested, or nil.
func (b *Book) ByID(id uint64) Record {
	return b.index[id]
}

// Parent resolves a record's parent through the index. A record that
// was never attached, or whose tree has been removed, yields nil.
func (b *Book) Parent(rec Record) Record {
	if rec.ParentID() == 0 {
		return nil
	}
	return b.index[rec.ParentID()]
}

// Remove drops a top-level record and unindexes its subtree.
func (b *Book) Remove(kind Kind, name string) bool {
	rec := b.records[kind][name]
	if rec == nil {
		return false
	}
	delete(b.records[kind], name)
	b.dropTree(rec)
	return true
}

// Names lists the top-level record names of one kind, sorted.
func (b *Book) Names(kind Kind) []string {
	byName := b.records[kind]
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Counts reports the number of top-level records per kind.
func (b *Book) Counts() map[Kind]int {
	counts := make(map[Kind]int)
	for kind, byName := range b.records {
		if len(byName) > 0 {
			counts[kind] = len(byName)
		}
	}
	return counts
}

// Len is the total number of top-level records.
func (b *Book) Len() int {
	n := 0
	for _, byName := range b.records {
		n += len(byName)
	}
	return n
}

func (b *Book) indexTree(rec Record) {
	b.index[rec.ID()] = rec
	for _, child := range rec.children() {
		b.indexTree(child)
	}
}

func (b *Book) dropTree(rec Record) {
	delete(b.index, rec.ID())
	for _, child := range rec.children() {
		b.dropTree(child)
	}
}
