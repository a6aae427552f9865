// Package typeinfo inspects the Go types that declare registers.
package typeinfo

import (
	"go/token"
	"go/types"
)

// Type describes a type information. It holds information of [types.Type] that
// is necessary to extract a struct schema.
type Type struct {
	T types.Type

	Basic     *types.Basic
	Array     *types.Array
	Slice     *types.Slice
	Map       *types.Map
	Chan      *types.Chan
	Signature *types.Signature
	Struct    *types.Struct
	Interface *types.Interface
	Pointer   *types.Pointer
	Named     *types.Named
	TypeParam *types.TypeParam
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsStruct() bool    { return t.Struct != nil }
func (t Type) IsPointer() bool   { return t.Pointer != nil }
func (t Type) IsNamed() bool     { return t.Named != nil }
func (t Type) IsInterface() bool { return t.Interface != nil }

func (t Type) Identical(u Type) bool { return types.Identical(t.T, u.T) }

// TypeOf inspects the given type and returns a new [Type].
func TypeOf(t types.Type) Type {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return Type{T: t, Basic: tt}
	case *types.Array:
		return Type{T: t, Array: tt}
	case *types.Slice:
		return Type{T: t, Slice: tt}
	case *types.Map:
		return Type{T: t, Map: tt}
	case *types.Chan:
		return Type{T: t, Chan: tt}
	case *types.Signature:
		return Type{T: t, Signature: tt}
	case *types.Struct:
		return Type{T: t, Struct: tt}
	case *types.Interface:
		return Type{T: t, Interface: tt}
	case *types.Pointer:
		return Type{T: t, Pointer: tt}
	case *types.TypeParam:
		return Type{T: t, TypeParam: tt}
	case *types.Named:
		info := TypeOf(tt.Underlying())
		info.T = t
		info.Named = tt
		return info
	}
	return Type{T: t}
}

// Shape names the kind of the underlying type, such as "struct" or "basic".
// Diagnostics use it to explain why a type cannot be declared.
func (t Type) Shape() string {
	switch {
	case t.Struct != nil:
		return "struct"
	case t.Basic != nil:
		return "basic"
	case t.Array != nil:
		return "array"
	case t.Slice != nil:
		return "slice"
	case t.Map != nil:
		return "map"
	case t.Chan != nil:
		return "channel"
	case t.Signature != nil:
		return "func"
	case t.Interface != nil:
		return "interface"
	case t.Pointer != nil:
		return "pointer"
	case t.TypeParam != nil:
		return "type parameter"
	}
	return "unknown"
}

// Name returns the name of the named type. It returns an empty string if the
// type is not named.
func (t Type) Name() string {
	if !t.IsNamed() {
		return ""
	}
	return t.Named.Obj().Name()
}

// Pkg returns the package where the type is defined. It returns nil if the type
// is not a named type.
func (t Type) Pkg() *types.Package {
	if !t.IsNamed() {
		return nil
	}
	return t.Named.Obj().Pkg()
}

// Pos returns the position where the type is defined. It returns token.NoPos if
// the type is not a named type.
func (t Type) Pos() token.Pos {
	if t.IsNamed() {
		return t.Named.Obj().Pos()
	}
	return token.NoPos
}

// Ref returns the pointer type of the type. For type of X, it returns type of
// *X.
func (t Type) Ref() Type {
	return TypeOf(types.NewPointer(t.T))
}

// Method looks up the method with the given name in the method set of *T, so
// that methods with pointer receivers are found too. It returns nil and false
// if there is no such method.
func (t Type) Method(pkg *types.Package, name string) (*types.Func, bool) {
	if !t.IsNamed() {
		return nil, false
	}

	obj, _, _ := types.LookupFieldOrMethod(t.T, true, pkg, name)
	fn, ok := obj.(*types.Func)
	if !ok {
		return nil, false
	}
	return fn, true
}

// HasPointerRecv reports whether the method has a pointer receiver.
func HasPointerRecv(fn *types.Func) bool {
	recv := fn.Signature().Recv()
	if recv == nil {
		return false
	}
	_, ok := types.Unalias(recv.Type()).(*types.Pointer)
	return ok
}

// Fields returns the struct fields that code in pkg can set, in declaration
// order. Blank fields are skipped, and so are unexported fields of structs
// defined in other packages. Embedded fields are named by their type names.
func (t Type) Fields(pkg *types.Package) []*types.Var {
	if !t.IsStruct() {
		return nil
	}

	var fields []*types.Var
	for field := range t.Struct.Fields() {
		if field.Name() == "_" {
			continue
		}
		if !field.Exported() && field.Pkg() != pkg {
			continue
		}
		fields = append(fields, field)
	}
	return fields
}

// IsGeneric reports whether the type is generic or has any generic type
// parameters. Even though the type has type parameters, if all type arguments
// are concrete types, it returns false.
func (t Type) IsGeneric() bool {
	return isGeneric(t.T)
}

func isGeneric(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.Named:
		if t.TypeParams().Len() == 0 {
			// No type parameters
			// e.g., Foo
			return false
		}

		targs := t.TypeArgs()
		if targs.Len() == 0 {
			// Have type parameters but no arguments
			// e.g., Foo[T]
			return true
		}

		for i := 0; i < targs.Len(); i++ {
			if isGeneric(targs.At(i)) {
				// Some type argument is generic
				// e.g., Foo[int, T]
				return true
			}
		}
	case *types.TypeParam:
		return true
	}
	return false
}
