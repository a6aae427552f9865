package parse

import (
	"go/ast"
	"go/constant"

	"github.com/sublee/declare/internal/codefmt"
)

// stringArg evaluates a constant string argument. Named constants are
// accepted as well as literals.
func stringArg(p *Parser, expr ast.Expr) (string, error) {
	tv, ok := p.Pkg().TypesInfo.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", codefmt.Errorf(p, expr, "%c is not constant string", expr)
	}
	return constant.StringVal(tv.Value), nil
}

func needArgs0(p *Parser, call *ast.CallExpr) error {
	if len(call.Args) != 0 {
		return codefmt.Errorf(p, call, "need no arguments")
	}
	return nil
}

func needArgs1(p *Parser, call *ast.CallExpr) (ast.Expr, error) {
	if len(call.Args) != 1 {
		return nil, codefmt.Errorf(p, call, "need 1 argument")
	}
	return call.Args[0], nil
}
