// Package declare provides directives for a compact struct construction DSL.
//
// Go composite literals leave every omitted field zero. When a struct has a
// meaningful default, callers end up copying the default and assigning fields
// one by one. Declare lets you register the struct once and then build values
// with a small DSL that starts from the default and overrides only the fields
// you name. Unknown field names are diagnosed at generation time at the exact
// position of the offending identifier.
//
// To start with declare, add a build constraint to files containing declare
// directives:
//
//	//go:build declare
//
// Register a struct type with [Type]. Its DSL invocation name is derived from
// the type name in snake case, so MyStruct becomes my_struct:
//
//	type MyStruct struct {
//		FieldOne string
//		FieldTwo int
//	}
//
//	func (MyStruct) Default() MyStruct {
//		return MyStruct{FieldOne: "Default"}
//	}
//
//	var _ = declare.Type[MyStruct]()
//
// Then build values with [Build]. The argument is a DSL block in a string
// literal. A raw string literal keeps diagnostics pointing at the exact column:
//
//	// source:
//	x := declare.Build[MyStruct](`my_struct{ FieldOne: "Hello" }`)
//
//	// generated: (simplified)
//	x := func() MyStruct {
//		out := MyStruct{}.Default()
//		out.FieldOne = "Hello"
//		return out
//	}()
//
// After declaring, run the declare command. It will generate declare_gen.go
// for your package:
//
//	go run github.com/sublee/declare/cmd/declare
//
// # DSL
//
// A block is the DSL name followed by assignments in braces:
//
//	name{ Field: value, Other }
//
// A value is any Go expression. It is not type-checked by declare; the Go
// compiler checks it when it builds the generated code. A field without a
// value is a shorthand which assigns the variable of the same name, so
// `my_struct{ FieldTwo }` means `my_struct{ FieldTwo: FieldTwo }`. A trailing
// comma is allowed, newlines are insignificant, and `my_struct{}` yields the
// default value itself.
//
// Assignments apply in source order. If a field is assigned twice, the last
// one wins.
//
// # Defaults
//
// The default value is the first of:
//
//   - the function given by [DefaultFunc]
//   - the Default method of the type, with a value or pointer receiver, which
//     must have the signature func() T
//   - the zero value T{}
//
// # Diagnostics
//
// Every problem is reported with its position:
//
//	main.go:12:34: field "FieldThree" does not exist in struct MyStruct
//	main.go:13:44: expected ',' or '}', found FieldTwo
//
// Diagnostics of a kind match the sentinel errors of
// [github.com/sublee/declare/pkg/declareerrors].
package declare

// dsl is the result of [Type]. It is unexported so there is no way to hold a
// registration other than assigning it to the blank identifier.
type dsl *struct{}

// Option configures a registration by [Type].
type Option interface{ option() }

// Type directive registers the struct type T so that [Build] can construct it
// by a DSL block:
//
//	var _ = declare.Type[MyStruct]()
//
// It must be assigned to the blank identifier in a package-level var
// declaration. T must be a named struct type. Type aliases are resolved, but
// pointers, generic types and non-struct types are rejected.
//
// The DSL name is the snake case of the type name: HTTPServer becomes
// http_server. A name which is not an identifier or is a Go keyword cannot be
// used. For example, the derived name of Map is "map". Use [Name] to choose
// another one.
func Type[T any](opts ...Option) dsl {
	panic("declare: not generated")
}

// Build directive constructs a T by the DSL block:
//
//	p := declare.Build[Point](`point{ X: 1, Y }`)
//
// The DSL name of the block must be registered by [Type] for the same T. The
// call is replaced by the expansion when declare generates code.
func Build[T any](block string) T {
	panic("declare: not generated")
}

// Name overrides the derived DSL name:
//
//	var _ = declare.Type[Map](declare.Name("mapping"))
func Name(name string) Option {
	panic("declare: not generated")
}

// DefaultFunc makes fn produce the default value instead of the Default method
// or the zero value. fn is called once per invocation:
//
//	var _ = declare.Type[Config](declare.DefaultFunc(NewConfig))
func DefaultFunc[T any](fn func() T) Option {
	panic("declare: not generated")
}

// Overlay makes invocations expand to a composite literal instead of
// per-field assignments over the default:
//
//	var _ = declare.Type[Point](declare.Overlay())
//
//	// source:
//	p := declare.Build[Point](`point{ X: 1 }`)
//
//	// generated:
//	p := Point{X: 1}
//
// Unassigned fields take their zero values, so Overlay cannot be used with a
// Default method or [DefaultFunc]. Field names are checked by the Go compiler
// instead of declare.
func Overlay() Option {
	panic("declare: not generated")
}
