// Package dsl parses DSL invocations, the brace-delimited field assignment
// blocks that build struct values from their defaults:
//
//	my_struct{ FieldOne: "Hello", FieldTwo, }
//
// The grammar is:
//
//	invocation  := IDENT block
//	block       := '{' assignments '}'
//	assignments := (assignment (',' assignment)*)? ','?
//	assignment  := IDENT (':' EXPR)?
//
// EXPR is any Go expression. An assignment without a value is a shorthand which
// assigns the identifier of the same name as the field.
package dsl

import (
	"go/ast"
	"go/token"
)

// Invocation is a parsed DSL invocation.
type Invocation struct {
	// Name is the DSL invocation name, like "my_struct".
	Name *ast.Ident

	Lbrace token.Pos
	Rbrace token.Pos

	// Assignments are in source order. Duplicates are kept; the last one wins
	// when the invocation is expanded.
	Assignments []FieldAssignment
}

// Pos implements [codefmt.Poser].
func (inv *Invocation) Pos() token.Pos { return inv.Name.Pos() }

// End returns the position just after the closing brace.
func (inv *Invocation) End() token.Pos {
	if !inv.Rbrace.IsValid() {
		return token.NoPos
	}
	return inv.Rbrace + 1
}

// FieldAssignment is one entry of a block.
type FieldAssignment struct {
	// Field is the name of the assigned field.
	Field *ast.Ident

	// Value is the assigned expression. For a shorthand, it is an identifier
	// with the name of the field. Positions in Value are relative to the
	// value's own source, not to the host file.
	Value ast.Expr

	// ValuePos is where the value starts in the host file. It equals
	// Field.Pos() for a shorthand.
	ValuePos token.Pos

	// Code is the formatted Go source of Value. Comments inside the value
	// are dropped.
	Code string

	Shorthand bool
}

// Pos implements [codefmt.Poser]. It is the position of the field name.
func (a FieldAssignment) Pos() token.Pos { return a.Field.Pos() }

// End implements [codefmt.Ender].
func (a FieldAssignment) End() token.Pos { return a.Field.End() }

// Name returns the name of the assigned field.
func (a FieldAssignment) Name() string { return a.Field.Name }

// Idents returns the names of all identifiers referred by the value.
func (a FieldAssignment) Idents() []string {
	var names []string
	ast.Inspect(a.Value, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			names = append(names, id.Name)
		}
		return true
	})
	return names
}
