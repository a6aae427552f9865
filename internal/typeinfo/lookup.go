package typeinfo

import (
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Index maps types to values. Identical types share an entry, even if they are
// distinct [types.Type] values.
type Index[V any] struct {
	m *typeutil.Map
}

// NewIndex creates a new [Index].
func NewIndex[V any]() *Index[V] {
	m := new(typeutil.Map)
	m.SetHasher(typeutil.MakeHasher())
	return &Index[V]{m}
}

// Put stores v for typ. If typ already has a value, it keeps the old value and
// returns it with false.
func (idx *Index[V]) Put(typ types.Type, v V) (V, bool) {
	if old, ok := idx.m.At(typ).(V); ok {
		return old, false
	}
	idx.m.Set(typ, v)
	return *new(V), true
}

// Get finds the value stored for typ.
func (idx *Index[V]) Get(typ types.Type) (V, bool) {
	if idx == nil {
		return *new(V), false
	}
	v, ok := idx.m.At(typ).(V)
	return v, ok
}

// Len returns the number of entries.
func (idx *Index[V]) Len() int {
	if idx == nil {
		return 0
	}
	return idx.m.Len()
}
