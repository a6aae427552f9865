package parse

import (
	"go/types"
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sublee/declare/internal/codefmt"
	"github.com/sublee/declare/internal/typeinfo"
)

// Registry holds the schemas of a package. Schemas are looked up by DSL name
// when an invocation is expanded, and iterated in registration order.
type Registry struct {
	names *linkedhashmap.Map // string -> *Schema
	types *typeinfo.Index[*Schema]
}

// NewRegistry creates an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{
		names: linkedhashmap.New(),
		types: typeinfo.NewIndex[*Schema](),
	}
}

// Register adds the schema. It fails if the type or the DSL name is already
// registered.
func (r *Registry) Register(s *Schema) error {
	if prev, ok := r.types.Get(s.Type.T); ok {
		return codefmt.Errorf(s, s, "%t is already declared at %b", s.Type, prev.Pos())
	}

	if v, ok := r.names.Get(s.Name); ok {
		prev := v.(*Schema)
		return codefmt.Errorf(s, s, "DSL name %q of %t is already used by %t declared at %b", s.Name, s.Type, prev.Type, prev.Pos())
	}

	r.names.Put(s.Name, s)
	r.types.Put(s.Type.T, s)
	return nil
}

// Lookup finds the schema by DSL name.
func (r *Registry) Lookup(name string) (*Schema, bool) {
	v, ok := r.names.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Schema), true
}

// LookupType finds the schema by type.
func (r *Registry) LookupType(typ types.Type) (*Schema, bool) {
	return r.types.Get(typ)
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int { return r.names.Size() }

// All iterates the schemas in registration order.
func (r *Registry) All() iter.Seq[*Schema] {
	return func(yield func(*Schema) bool) {
		it := r.names.Iterator()
		for it.Next() {
			if !yield(it.Value().(*Schema)) {
				return
			}
		}
	}
}

// Names returns the registered DSL names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.names.Size())
	for _, k := range r.names.Keys() {
		names = append(names, k.(string))
	}
	return names
}
