// Package declareerrors classifies the diagnostics reported by the declare
// generator. Every diagnostic with a kind matches one of the sentinel errors
// below with [errors.Is]:
//
//	if errors.Is(err, declareerrors.ErrUnknownField) {
//		// the DSL block refers to a field the struct does not have
//	}
package declareerrors

import "errors"

var (
	// ErrSyntax reports a DSL block which does not match the grammar. The
	// whole invocation is rejected.
	ErrSyntax = errors.New("syntax error")

	// ErrUnknownField reports an assignment to a field that the target struct
	// does not declare. Each unknown field is reported on its own.
	ErrUnknownField = errors.New("unknown field")

	// ErrNameDerivation reports a type name which cannot be turned into a
	// usable DSL invocation name.
	ErrNameDerivation = errors.New("name derivation error")

	// ErrUnsupportedShape reports a registered type which is not a named struct
	// type.
	ErrUnsupportedShape = errors.New("unsupported shape")
)

// Kinds lists every diagnostic kind.
var Kinds = []error{ErrSyntax, ErrUnknownField, ErrNameDerivation, ErrUnsupportedShape}

// KindOf returns the kind of err, or nil if err has no kind.
func KindOf(err error) error {
	for _, kind := range Kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Flatten unrolls errors combined by [errors.Join] into a flat list in the
// order they were joined. Wrapped errors that are not joins are kept as they
// are.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}

	u, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	var list []error
	for _, err := range u.Unwrap() {
		list = append(list, Flatten(err)...)
	}
	return list
}
