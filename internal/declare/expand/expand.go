// Package expand turns parsed DSL invocations into Go expressions.
//
// Per-field emission, the default strategy, starts from the default value and
// assigns only the supplied fields:
//
//	func() MyStruct {
//		out := MyStruct{}.Default()
//		out.FieldOne = "Hello"
//		out.FieldTwo = FieldTwo
//		return out
//	}()
//
// Overlay emission writes a composite literal instead, so unassigned fields
// take their zero values:
//
//	MyStruct{FieldOne: "Hello", FieldTwo: FieldTwo}
package expand

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/sublee/declare/internal/codefmt"
	"github.com/sublee/declare/internal/declare/dsl"
	"github.com/sublee/declare/internal/declare/parse"
	"github.com/sublee/declare/internal/naming"
	"github.com/sublee/declare/pkg/declareerrors"
)

// Resolve finds the schema named by the invocation. The schema's type must be
// identical to the type argument of the invocation.
func Resolve(reg *parse.Registry, inv *parse.Invocation) (*parse.Schema, error) {
	name := inv.Name.Name
	s, ok := reg.Lookup(name)
	if !ok {
		if s, ok := reg.LookupType(inv.Type.T); ok {
			return nil, codefmt.Errorf(inv, inv.Name, "unknown DSL name %q; %t is declared as %q", name, inv.Type, s.Name)
		}
		return nil, codefmt.Errorf(inv, inv.Name, "unknown DSL name %q", name)
	}

	if !s.Type.Identical(inv.Type) {
		return nil, codefmt.Errorf(inv, inv.Name, "DSL name %q builds %t, not %t", name, s.Type, inv.Type)
	}
	return s, nil
}

// Expand validates the invocation against the schema and returns the Go
// expression replacing it. Packages referred by the expression are recorded
// in w.
func Expand(w *codefmt.Writer, s *parse.Schema, inv *parse.Invocation) (string, error) {
	if s.Overlay {
		return overlay(w, s, inv), nil
	}
	return perField(w, s, inv)
}

// perField emits an immediately invoked function which copies the default
// value and assigns the supplied fields one by one. Every assignment is
// checked against the declared fields.
func perField(w *codefmt.Writer, s *parse.Schema, inv *parse.Invocation) (string, error) {
	var errs error
	for _, a := range inv.Assignments {
		errs = errors.Join(errs, checkField(s, inv, a))
	}
	if errs != nil {
		return "", errs
	}

	def := defaultValue(w, s)
	if len(inv.Assignments) == 0 {
		return def, nil
	}

	// The local variable must not shadow anything the values refer to.
	taken := idents(def)
	for _, a := range inv.Assignments {
		taken = append(taken, a.Idents()...)
	}
	out := codefmt.NewNS(taken...).Name("out")

	var buf strings.Builder
	fmt.Fprintf(&buf, "func() %s {\n", w.Sprintf("%t", s.Type))
	fmt.Fprintf(&buf, "%s := %s\n", out, def)
	for _, a := range inv.Assignments {
		fmt.Fprintf(&buf, "%s.%s = %s\n", out, a.Name(), a.Code)
	}
	fmt.Fprintf(&buf, "return %s\n}()", out)
	return buf.String(), nil
}

// overlay emits a composite literal. Field names are left to the Go compiler.
func overlay(w *codefmt.Writer, s *parse.Schema, inv *parse.Invocation) string {
	entries := make([]string, len(inv.Assignments))
	for i, a := range inv.Assignments {
		entries[i] = a.Name() + ": " + a.Code
	}
	return w.Sprintf("%t{%s}", s.Type, strings.Join(entries, ", "))
}

// defaultValue returns the expression of the default value.
func defaultValue(w *codefmt.Writer, s *parse.Schema) string {
	switch s.Default {
	case parse.DefaultMethod:
		return w.Sprintf("%t{}.Default()", s.Type)
	case parse.DefaultPtrMethod:
		return w.Sprintf("(&%t{}).Default()", s.Type)
	case parse.DefaultFunc:
		return w.Sprintf("%c()", codefmt.RewriteImports(w, s.DefaultExpr))
	}
	return w.Sprintf("%t{}", s.Type)
}

// checkField reports an unknown field error if the assigned field is not
// declared.
func checkField(s *parse.Schema, inv *parse.Invocation, a dsl.FieldAssignment) error {
	name := a.Name()
	if _, ok := s.Field(name); ok {
		return nil
	}

	kind := declareerrors.ErrUnknownField
	if s.Type.IsStruct() {
		for f := range s.Type.Struct.Fields() {
			if f.Name() == name && f.Name() != "_" {
				return codefmt.KindErrorf(inv, a, kind, "field %q of struct %t is not settable from package %s", name, s.Type, inv.Pkg().Name)
			}
		}
	}

	if hint := suggest(s, name); hint != "" {
		return codefmt.KindErrorf(inv, a, kind, "field %q does not exist in struct %t; did you mean %q?", name, s.Type, hint)
	}
	return codefmt.KindErrorf(inv, a, kind, "field %q does not exist in struct %t", name, s.Type)
}

// maxTypoDistance is the maximum edit distance of a suggested field name.
const maxTypoDistance = 2

// suggest finds the declared field the name probably meant. A field with the
// same snake case name wins. Otherwise the nearest field within a small edit
// distance is suggested.
func suggest(s *parse.Schema, name string) string {
	want := naming.Snake(name)
	if want == "" {
		return ""
	}
	for _, f := range s.Fields {
		if naming.Snake(f.Name()) == want {
			return f.Name()
		}
	}

	best, bestDist := "", maxTypoDistance+1
	for _, f := range s.Fields {
		dist := levenshtein.Distance(name, f.Name(), nil)
		if dist < bestDist && dist < len(f.Name()) {
			best, bestDist = f.Name(), dist
		}
	}
	return best
}

// idents lists identifiers in the Go expression.
func idents(code string) []string {
	expr, err := parser.ParseExpr(code)
	if err != nil {
		return nil
	}

	var names []string
	ast.Inspect(expr, func(node ast.Node) bool {
		if id, ok := node.(*ast.Ident); ok {
			names = append(names, id.Name)
		}
		return true
	})
	return names
}
