package archive

import (
	"sort"

	"dossier/internal/identity"
)

// Factory builds one record from a block's name and ordered fields.
// Non-fatal problems go to warn; a returned error aborts the whole
// parse.
type Factory func(name string, fields []identity.Field, warn *identity.Warnings) (identity.Record, error)

// Registry maps block keywords to record factories. Matching is
// case-sensitive and exact; there is no prefix expansion. A Registry
// is safe for concurrent lookups but not for mutation during an
// active parse.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry seeded with the standard archive
// keywords.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("user", func(name string, fields []identity.Field, warn *identity.Warnings) (identity.Record, error) {
		return identity.NewPerson(name, fields, warn)
	})
	r.Register("email", func(name string, fields []identity.Field, warn *identity.Warnings) (identity.Record, error) {
		return identity.NewEmail(name, fields, warn)
	})
	r.Register("location", func(name string, fields []identity.Field, warn *identity.Warnings) (identity.Record, error) {
		return identity.NewLocation(name, fields, warn)
	})
	r.Register("system", func(name string, fields []identity.Field, warn *identity.Warnings) (identity.Record, error) {
		return identity.NewSystem(name, fields, warn)
	})
	r.Register("list", func(name string, fields []identity.Field, warn *identity.Warnings) (identity.Record, error) {
		return identity.NewEmailList(name, fields, warn)
	})
	return r
}

// Resolve looks up the factory for a keyword. An unknown keyword is
// not an error; the caller decides what the miss means.
func (r *Registry) Resolve(keyword string) (Factory, bool) {
	f, ok := r.factories[keyword]
	return f, ok
}

// Register binds a keyword to a factory. A nil factory removes the
// binding.
func (r *Registry) Register(keyword string, f Factory) {
	if f == nil {
		delete(r.factories, keyword)
		return
	}
	r.factories[keyword] = f
}

// Unregister removes a keyword and returns the factory it had, or
// nil.
func (r *Registry) Unregister(keyword string) Factory {
	f := r.factories[keyword]
	delete(r.factories, keyword)
	return f
}

// Keywords lists the registered keywords, sorted.
func (r *Registry) Keywords() []string {
	out := make([]string, 0, len(r.factories))
	for k := range r.factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
