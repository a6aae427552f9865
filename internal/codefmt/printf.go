package codefmt

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/go/packages"
)

// Arguments of Sprintf-like functions may implement these interfaces to be
// formatted by the code verbs.
type (
	Pkger    interface{ Pkg() *packages.Package }
	Poser    interface{ Pos() token.Pos }
	Ender    interface{ End() token.Pos }
	Exprer   interface{ Expr() ast.Expr }
	Objecter interface{ Object() types.Object }
	Typer    interface{ Type() types.Type }
)

func (f Formatter) wrapPrintfArgs(args []any) []any {
	for i, arg := range args {
		switch arg.(type) {
		case token.Pos, token.Position, ast.Expr, types.Object, types.Type,
			Poser, Exprer, Objecter, Typer:
			args[i] = codeArg{arg, f}
		}
	}
	return args
}

// codeArg adapts a printf argument to the code verbs.
type codeArg struct {
	x   any
	fmt Formatter
}

func (a codeArg) object() types.Object {
	switch x := a.x.(type) {
	case types.Object:
		return x
	case Objecter:
		return x.Object()
	}
	if named, ok := a.typ().(*types.Named); ok {
		return named.Obj()
	}
	return nil
}

func (a codeArg) expr() ast.Expr {
	switch x := a.x.(type) {
	case ast.Expr:
		return x
	case Exprer:
		return x.Expr()
	}
	return nil
}

func (a codeArg) typ() types.Type {
	switch x := a.x.(type) {
	case types.Type:
		return x
	case Typer:
		return x.Type()
	case types.Object:
		return x.Type()
	case Objecter:
		return x.Object().Type()
	}
	if expr := a.expr(); expr != nil && a.fmt.TypesInfo != nil {
		return a.fmt.TypesInfo.TypeOf(expr)
	}
	return nil
}

func (a codeArg) position() (token.Position, bool) {
	switch x := a.x.(type) {
	case token.Position:
		return x, true
	case token.Pos:
		return a.fmt.Fset.Position(x), true
	case Poser:
		return a.fmt.Fset.Position(x.Pos()), true
	}
	if obj := a.object(); obj != nil {
		return a.fmt.Fset.Position(obj.Pos()), true
	}
	return token.Position{}, false
}

// Format implements fmt.Formatter.
//
//	%t: type in short form, e.g. "bytes.Buffer" or "MyStruct"
//	%c: expression as Go code
//	%b: position in "file:line:column" form
//
// Other verbs fall back to the fmt package.
func (a codeArg) Format(s fmt.State, verb rune) {
	switch verb {
	case 't':
		typ := a.typ()
		if typ == nil {
			fmt.Fprintf(s, "[%%t cannot format %T]", a.x)
			return
		}
		_, _ = io.WriteString(s, a.fmt.Type(typ))

	case 'c':
		expr := a.expr()
		if expr == nil {
			fmt.Fprintf(s, "[%%c cannot format %T]", a.x)
			return
		}
		_, _ = io.WriteString(s, a.fmt.Expr(expr))

	case 'b':
		pos, ok := a.position()
		if !ok {
			fmt.Fprintf(s, "[%%b cannot format %T]", a.x)
			return
		}
		_, _ = io.WriteString(s, FormatPosition(pos))

	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), a.x)
	}
}

// Sprintf formats like [fmt.Sprintf] with the code verbs.
func (f Formatter) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, f.wrapPrintfArgs(args)...)
}

// Fprintf formats like [fmt.Fprintf] with the code verbs.
func (f Formatter) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, f.wrapPrintfArgs(args)...)
}
