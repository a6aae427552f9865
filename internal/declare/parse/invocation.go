package parse

import (
	"errors"
	"go/ast"
	"go/constant"
	"go/token"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/declare/internal/codefmt"
	"github.com/sublee/declare/internal/declare/dsl"
	"github.com/sublee/declare/internal/typeinfo"
	"github.com/sublee/declare/pkg/declareerrors"
)

// Invocation is a declare.Build call with its parsed DSL block.
type Invocation struct {
	*dsl.Invocation

	// Call is the declare.Build call expression to be replaced.
	Call *ast.CallExpr
	// Type is the type argument of declare.Build.
	Type typeinfo.Type

	pkg *packages.Package
}

// Pkg returns the package where the invocation is. Invocation implements
// [codefmt.Pkger] by this method.
func (inv *Invocation) Pkg() *packages.Package { return inv.pkg }

// ParseInvocations parses all declare.Build calls in the declare-tagged files.
// A malformed block is reported as a syntax error and the other invocations
// are still parsed.
func (p *Parser) ParseInvocations() ([]*Invocation, error) {
	var errs error
	var invs []*Invocation

	for _, file := range p.DeclareGoFiles() {
		ast.Inspect(file, func(node ast.Node) bool {
			call, ok := node.(*ast.CallExpr)
			if !ok || !p.IsDirective(call, "Build") {
				return true
			}

			inv, err := p.parseInvocation(call)
			if err != nil {
				errs = errors.Join(errs, err)
				return false
			}
			invs = append(invs, inv)
			return false
		})
	}

	if errs != nil {
		return nil, errs
	}
	return invs, nil
}

// parseInvocation parses a declare.Build call.
//
//	declare.Build[MyStruct](`my_struct{ FieldOne: "Hello", FieldTwo }`)
func (p *Parser) parseInvocation(call *ast.CallExpr) (*Invocation, error) {
	t, _, ok := p.typeArg(call)
	if !ok {
		return nil, codefmt.Errorf(p, call, "declare.Build needs an explicit type argument")
	}

	expr, err := needArgs1(p, call)
	if err != nil {
		return nil, err
	}

	src, loc, err := p.dslSource(expr)
	if err != nil {
		return nil, err
	}

	block, err := dsl.Parse(src, loc)
	if err != nil {
		var dslErr *dsl.Error
		if errors.As(err, &dslErr) {
			return nil, codefmt.KindErrorf(p, codefmt.Span(dslErr.Pos, dslErr.End), declareerrors.ErrSyntax, "%s", dslErr.Msg)
		}
		return nil, codefmt.KindErrorf(p, expr, declareerrors.ErrSyntax, "%s", err.Error())
	}

	return &Invocation{
		Invocation: block,
		Call:       call,
		Type:       t,
		pkg:        p.Pkg(),
	}, nil
}

// dslSource returns the DSL block of the argument and a locator which maps
// offsets in the block to positions in the host file.
//
// The mapping is exact for raw string literals and for interpreted string
// literals without escapes. Otherwise every position falls back to the start
// of the argument.
func (p *Parser) dslSource(expr ast.Expr) (string, dsl.Locator, error) {
	tv, ok := p.Pkg().TypesInfo.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", nil, codefmt.Errorf(p, expr, "DSL block must be a constant string; got %c", expr)
	}
	src := constant.StringVal(tv.Value)

	lit, ok := ast.Unparen(expr).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		// Named constants
		return src, dsl.Fixed(expr.Pos()), nil
	}

	body := lit.Value[1 : len(lit.Value)-1]
	switch {
	case lit.Value[0] == '`' && !strings.Contains(body, "\r"):
		return src, dsl.Offset(lit.Pos() + 1), nil
	case lit.Value[0] == '"' && body == src:
		return src, dsl.Offset(lit.Pos() + 1), nil
	}

	// Escapes shift offsets.
	return src, dsl.Fixed(lit.Pos()), nil
}
