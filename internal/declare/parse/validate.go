package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"github.com/sublee/declare/internal/codefmt"
)

// Validate checks for usages outside expected paths. It collects all errors
// instead of stopping at the first error.
//
// Registrations and invocations are validated by the narrow parsing
// functions. But the generated file must not keep any reference to the
// directive package, so the rest of the usages are checked globally here.
func (p *Parser) Validate() error {
	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validateDirectiveUsages(file))
	}
	return errs
}

// validateConstraint checks if files importing "github.com/sublee/declare"
// have "//go:build declare" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	var declareImport *ast.ImportSpec
	for _, imp := range file.Imports {
		if IsDeclareImport(strings.Trim(imp.Path.Value, `"`)) {
			declareImport = imp
			break
		}
	}
	if declareImport == nil {
		return nil
	}

	if hasGoBuildDeclare(file) {
		return nil
	}

	return codefmt.Errorf(p, declareImport, `file must have "//go:build declare" constraint when importing declare`)
}

// validateDirectiveUsages checks that the directive package is used only by
// registrations and invocations.
//
// declare.Type must be assigned to a blank identifier in a package-level var
// declaration, and options must be arguments of declare.Type. Any other
// reference to the directive package would remain in the generated file.
func (p *Parser) validateDirectiveUsages(file *ast.File) error {
	if !hasGoBuildDeclare(file) {
		return nil
	}

	regs := make(map[token.Pos]bool)
	for _, call := range p.registrations() {
		regs[call.Lparen] = true
	}

	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		switch node := node.(type) {
		case *ast.ImportSpec:
			return false

		case *ast.CallExpr:
			directive, ok := p.GetDirective(node)
			if !ok {
				return true
			}

			switch directive {
			case "Build":
				return false
			case "Type":
				if !regs[node.Lparen] {
					errs = errors.Join(errs, codefmt.Errorf(p, node, "declare.Type must be assigned to _ in a package-level var declaration"))
				}
				return false
			}

			errs = errors.Join(errs, codefmt.Errorf(p, node, "cannot use declare.%s outside declare.Type", directive))
			return false

		case *ast.SelectorExpr:
			obj := p.Pkg().TypesInfo.ObjectOf(node.Sel)
			if obj == nil || obj.Pkg() == nil || !IsDeclareImport(obj.Pkg().Path()) {
				return true
			}

			errs = errors.Join(errs, codefmt.Errorf(p, node, "cannot use declare.%s outside directives; removed at code generation", node.Sel.Name))
			return false
		}
		return true
	})
	return errs
}
