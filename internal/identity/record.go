package identity

import (
	"fmt"
	"sync/atomic"
)

// Kind identifies one of the record types an archive can produce.
type Kind string

const (
	KindPerson   Kind = "person"
	KindEmail    Kind = "email"
	KindLocation Kind = "location"
	KindSystem   Kind = "system"
	KindList     Kind = "list"
)

// ParseKind maps an external kind string to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindPerson, KindEmail, KindLocation, KindSystem, KindList:
		return Kind(s), true
	}
	return "", false
}

// Field is one ordered name/value pair taken from an archive block.
type Field struct {
	Name  string
	Value string
}

// Warnings collects non-fatal problems raised while building or
// assembling a record. Each construction call gets its own sink.
type Warnings []string

// Addf appends a formatted warning.
func (w *Warnings) Addf(format string, args ...any) {
	*w = append(*w, fmt.Sprintf(format, args...))
}

// Record is anything an archive block can construct. The set of
// implementations is closed: every kind lives in this package.
type Record interface {
	ID() uint64
	Kind() Kind
	Name() string
	ParentID() uint64

	// Attach adds a child record to the collection for its kind.
	// Unacceptable children are dropped with a warning.
	Attach(child Record, warn *Warnings)

	setParent(id uint64)
	children() []Record
}

var lastID atomic.Uint64

// meta carries the state every record shares. IDs come from a
// process-wide counter so records can point at each other without
// holding pointers.
type meta struct {
	id     uint64
	kind   Kind
	name   string
	parent uint64
}

func newMeta(kind Kind, name string) meta {
	return meta{id: lastID.Add(1), kind: kind, name: name}
}

func (m *meta) ID() uint64          { return m.id }
func (m *meta) Kind() Kind          { return m.kind }
func (m *meta) Name() string        { return m.name }
func (m *meta) ParentID() uint64    { return m.parent }
func (m *meta) setParent(id uint64) { m.parent = id }
