package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/sublee/declare/internal/typeinfo"
)

// ImportPath is the import path of the directive package.
const ImportPath = "github.com/sublee/declare"

// BuildTag is the build tag of files containing directives.
const BuildTag = "declare"

// IsDeclareImport reports whether path imports the declare package, possibly
// through a vendor directory.
func IsDeclareImport(path string) bool {
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == ImportPath
}

// Parser parses an AST of the underlying package to collect declared types and
// DSL invocations.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// GetDirective returns the name of the directive function if the call
// expression calls a function of the directive package.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil {
		return "", false
	}

	pkg := callee.Pkg()
	if pkg == nil {
		// Built-in functions like panic()
		return "", false
	}

	if !IsDeclareImport(pkg.Path()) {
		return "", false
	}

	return callee.Name(), true
}

// IsDirective checks if the call expression is the directive with the given
// name. If name is empty, it checks if the call is any directive.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	calleeName, ok := p.GetDirective(call)
	if !ok {
		return false
	}
	return name == "" || calleeName == name
}

// typeArg returns the explicit type argument of a generic directive call like
// declare.Build[T](...).
func (p *Parser) typeArg(call *ast.CallExpr) (typeinfo.Type, ast.Expr, bool) {
	idx, ok := ast.Unparen(call.Fun).(*ast.IndexExpr)
	if !ok {
		return typeinfo.Type{}, nil, false
	}

	id, ok := tailIdent(idx.X)
	if !ok {
		return typeinfo.Type{}, nil, false
	}

	inst, ok := p.Pkg().TypesInfo.Instances[id]
	if !ok || inst.TypeArgs.Len() != 1 {
		return typeinfo.Type{}, nil, false
	}

	return typeinfo.TypeOf(inst.TypeArgs.At(0)), idx.Index, true
}

// DeclareGoFiles returns the Go files that have a "//go:build declare"
// constraint.
func (p *Parser) DeclareGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildDeclare(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildDeclare checks if the file has a "//go:build declare" constraint.
func hasGoBuildDeclare(file *ast.File) bool {
	ok := false
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			// Build constraints must precede the package clause.
			break
		}
		for _, comment := range group.List {
			if constraint.IsGoBuild(comment.Text) {
				expr, err := constraint.Parse(comment.Text)
				if err != nil {
					continue
				}
				expr.Eval(func(tag string) bool {
					if tag == BuildTag {
						ok = true
					}
					return true
				})
			}
		}
	}
	return ok
}

// tailIdent extracts the rightmost [ast.Ident] from the expression.
//
//	Foo
//	^^^
//	declare.Build
//	        ^^^^^
func tailIdent(expr ast.Expr) (*ast.Ident, bool) {
	expr = ast.Unparen(expr)
	switch expr := expr.(type) {
	case *ast.Ident:
		return expr, true
	case *ast.SelectorExpr:
		return tailIdent(expr.Sel)
	}
	return nil, false
}
