package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/declare/internal/codefmt"
	"github.com/sublee/declare/internal/naming"
	"github.com/sublee/declare/internal/typeinfo"
	"github.com/sublee/declare/pkg/declareerrors"
)

// DefaultKind tells how the default value of a declared type is produced.
type DefaultKind int

const (
	// DefaultZero uses the zero value T{}.
	DefaultZero DefaultKind = iota
	// DefaultMethod calls T{}.Default().
	DefaultMethod
	// DefaultPtrMethod calls (&T{}).Default().
	DefaultPtrMethod
	// DefaultFunc calls the function given by declare.DefaultFunc.
	DefaultFunc
)

func (k DefaultKind) String() string {
	switch k {
	case DefaultZero:
		return "zero"
	case DefaultMethod:
		return "method"
	case DefaultPtrMethod:
		return "pointer method"
	case DefaultFunc:
		return "func"
	}
	return "unknown"
}

// Schema is a declared struct type registered by declare.Type.
type Schema struct {
	// Type is the declared struct type.
	Type typeinfo.Type
	// Name is the DSL invocation name.
	Name string
	// Fields is the set of fields an invocation may assign, in declaration
	// order.
	Fields []*types.Var

	Default     DefaultKind
	DefaultExpr ast.Expr // only for DefaultFunc

	// Overlay selects structural-overlay emission instead of per-field
	// assignments.
	Overlay bool

	pkg *packages.Package
	pos token.Pos
}

// Pkg returns the package where the type is registered. Schema implements
// [codefmt.Pkger] by this method.
func (s *Schema) Pkg() *packages.Package { return s.pkg }

// Pos returns the position of the registration. Schema implements
// [codefmt.Poser] by this method.
func (s *Schema) Pos() token.Pos { return s.pos }

// Field finds the declared field by name.
func (s *Schema) Field(name string) (*types.Var, bool) {
	for _, f := range s.Fields {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// FieldNames returns the names of the declared fields.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name()
	}
	return names
}

// Strategy names the emission strategy.
func (s *Schema) Strategy() string {
	if s.Overlay {
		return "overlay"
	}
	return "per-field"
}

// String returns a string representation of the schema. For example,
// "my_struct{FieldOne, FieldTwo}".
func (s *Schema) String() string {
	return s.Name + "{" + strings.Join(s.FieldNames(), ", ") + "}"
}

// ParseSchemas parses all [Schema]s registered by declare.Type in package-level
// blank var declarations. Misplaced registrations are reported by
// [Parser.Validate].
func (p *Parser) ParseSchemas() ([]*Schema, error) {
	var errs error
	var schemas []*Schema

	for _, call := range p.registrations() {
		s, err := p.parseSchema(call)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		schemas = append(schemas, s)
	}

	if errs != nil {
		return nil, errs
	}
	return schemas, nil
}

// registrations finds declare.Type calls assigned to blank identifiers in
// package-level var declarations.
//
//	var _ = declare.Type[MyStruct]()
//	        ^^^^^^^^^^^^^^^^^^^^^^^^
func (p *Parser) registrations() []*ast.CallExpr {
	var calls []*ast.CallExpr
	for _, file := range p.DeclareGoFiles() {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}

			for _, spec := range gen.Specs {
				spec := spec.(*ast.ValueSpec)
				if len(spec.Names) != len(spec.Values) {
					continue
				}

				for i, value := range spec.Values {
					call, ok := ast.Unparen(value).(*ast.CallExpr)
					if !ok || !p.IsDirective(call, "Type") {
						continue
					}
					if spec.Names[i].Name != "_" {
						continue
					}
					calls = append(calls, call)
				}
			}
		}
	}
	return calls
}

// parseSchema parses a declare.Type call.
//
//	declare.Type[MyStruct](declare.Name("my"), declare.Overlay())
func (p *Parser) parseSchema(call *ast.CallExpr) (*Schema, error) {
	t, texpr, ok := p.typeArg(call)
	if !ok {
		return nil, codefmt.Errorf(p, call, "declare.Type needs an explicit type argument")
	}

	if err := p.checkShape(t, texpr); err != nil {
		return nil, err
	}

	s := &Schema{
		Type:   t,
		Fields: t.Fields(p.Pkg().Types),
		pkg:    p.Pkg(),
		pos:    call.Pos(),
	}

	var errs error
	var overlay ast.Expr
	var named bool
	seen := make(map[string]bool)
	for _, arg := range call.Args {
		opt, ok := ast.Unparen(arg).(*ast.CallExpr)
		if !ok {
			errs = errors.Join(errs, codefmt.Errorf(p, arg, "option must be a declare directive call; got %c", arg))
			continue
		}

		name, ok := p.GetDirective(opt)
		if !ok {
			errs = errors.Join(errs, codefmt.Errorf(p, arg, "option must be a declare directive call; got %c", arg))
			continue
		}

		if seen[name] {
			errs = errors.Join(errs, codefmt.Errorf(p, opt, "duplicate declare.%s option", name))
			continue
		}
		seen[name] = true

		switch name {
		case "Name":
			expr, err := needArgs1(p, opt)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}

			dslName, err := stringArg(p, expr)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}

			if err := naming.Check(dslName); err != nil {
				errs = errors.Join(errs, codefmt.KindErrorf(p, expr, declareerrors.ErrNameDerivation, "invalid DSL name: %s", err.Error()))
				continue
			}
			s.Name = dslName
			named = true

		case "DefaultFunc":
			expr, err := needArgs1(p, opt)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}

			if err := p.checkDefaultFunc(t, expr); err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			s.Default = DefaultFunc
			s.DefaultExpr = expr

		case "Overlay":
			if err := needArgs0(p, opt); err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			s.Overlay = true
			overlay = opt

		default:
			errs = errors.Join(errs, codefmt.Errorf(p, opt, "declare.%s is not an option of declare.Type", name))
		}
	}

	if !named {
		dslName, err := naming.Derive(t.Name())
		if err != nil {
			errs = errors.Join(errs, codefmt.KindErrorf(p, texpr, declareerrors.ErrNameDerivation, "%s; use declare.Name to name it", err.Error()))
		}
		s.Name = dslName
	}

	if s.Default != DefaultFunc {
		kind, err := p.parseDefaultMethod(t, call)
		errs = errors.Join(errs, err)
		s.Default = kind
	}

	if s.Overlay && s.Default != DefaultZero {
		errs = errors.Join(errs, codefmt.Errorf(p, overlay, "cannot use declare.Overlay with %s default of %t; overlay leaves unassigned fields zero", s.Default, t))
	}

	if errs != nil {
		return nil, errs
	}
	return s, nil
}

// checkShape checks the type is a named struct type.
func (p *Parser) checkShape(t typeinfo.Type, expr ast.Expr) error {
	kind := declareerrors.ErrUnsupportedShape
	switch {
	case t.IsGeneric():
		return codefmt.KindErrorf(p, expr, kind, "cannot declare %t: generic type", t)
	case !t.IsNamed() && t.IsStruct():
		return codefmt.KindErrorf(p, expr, kind, "cannot declare %t: unnamed struct type", t)
	case !t.IsNamed():
		return codefmt.KindErrorf(p, expr, kind, "cannot declare %t: %s type, not named struct", t, t.Shape())
	case !t.IsStruct():
		return codefmt.KindErrorf(p, expr, kind, "cannot declare %t: underlying type is %s, not struct", t, t.Shape())
	}
	return nil
}

// checkDefaultFunc checks the argument of declare.DefaultFunc is func() T.
func (p *Parser) checkDefaultFunc(t typeinfo.Type, expr ast.Expr) error {
	typ := p.Pkg().TypesInfo.TypeOf(expr)
	if typ == nil {
		return codefmt.Errorf(p, expr, "cannot resolve default function %c", expr)
	}

	sig, ok := typ.Underlying().(*types.Signature)
	if !ok || !isDefaultSig(sig, t) {
		return codefmt.Errorf(p, expr, "default function must be func() %t; got %t", t, typ)
	}
	return nil
}

// parseDefaultMethod finds the Default method of the type. The method must be
// func() T if exists.
func (p *Parser) parseDefaultMethod(t typeinfo.Type, call *ast.CallExpr) (DefaultKind, error) {
	fn, ok := t.Method(p.Pkg().Types, "Default")
	if !ok {
		return DefaultZero, nil
	}

	// Default methods promoted from embedded fields build the embedded type,
	// not this one.
	recv := types.Unalias(fn.Signature().Recv().Type())
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}
	if !types.Identical(recv, types.Unalias(t.T)) {
		return DefaultZero, nil
	}

	if !isDefaultSig(fn.Signature(), t) {
		return DefaultZero, codefmt.Errorf(p, call, "%t.Default must be func() %t to be used as default; declared at %b", t, t, fn)
	}

	if typeinfo.HasPointerRecv(fn) {
		return DefaultPtrMethod, nil
	}
	return DefaultMethod, nil
}

func isDefaultSig(sig *types.Signature, t typeinfo.Type) bool {
	if sig.TypeParams().Len() != 0 || sig.Params().Len() != 0 || sig.Variadic() {
		return false
	}
	if sig.Results().Len() != 1 {
		return false
	}
	return types.Identical(sig.Results().At(0).Type(), t.T)
}
