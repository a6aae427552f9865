package declareinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"go/types"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"

	"github.com/sublee/declare/internal/codefmt"
	"github.com/sublee/declare/internal/declare/expand"
	"github.com/sublee/declare/internal/declare/parse"
)

// Declare expands DSL invocations of the target package. Call [Build] and then
// [Generate] to get the generated code. All potential errors are returned by
// [Build]. Once [Build] succeeds, [Generate] never fails.
type Declare struct {
	p   *parse.Parser
	buf *bytes.Buffer
	w   *codefmt.Writer
	reg *parse.Registry

	exps map[token.Pos]string // Lparen of invocations -> expansion
}

// New creates a new [Declare] for the given package. The package must have its
// Syntax, Types and TypesInfo.
func New(pkg *packages.Package) (*Declare, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Declare{
		p:    parser,
		buf:  &buf,
		w:    codefmt.NewWriter(&buf, pkg),
		reg:  parse.NewRegistry(),
		exps: make(map[token.Pos]string),
	}, nil
}

// Registry returns the schemas registered by [Build].
func (d *Declare) Registry() *parse.Registry { return d.reg }

// Build extracts schemas and expands every invocation. All potential errors
// are returned by this method. It must be called before [Generate].
func (d *Declare) Build() error {
	errs := d.p.Validate()

	// Phase 1: registrations
	schemas, err := d.p.ParseSchemas()
	errs = errors.Join(errs, err)

	for _, s := range schemas {
		if err := d.reg.Register(s); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
	}

	// Phase 2: invocations
	invs, err := d.p.ParseInvocations()
	errs = errors.Join(errs, err)

	for _, inv := range invs {
		s, err := expand.Resolve(d.reg, inv)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		code, err := expand.Expand(d.w, s, inv)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		d.importDSLPackages(inv)
		d.exps[inv.Call.Lparen] = code
	}

	return errs
}

// BuildSchemas only extracts and registers schemas. It is enough to inspect
// the registry.
func (d *Declare) BuildSchemas() error {
	schemas, err := d.p.ParseSchemas()
	errs := err
	for _, s := range schemas {
		errs = errors.Join(errs, d.reg.Register(s))
	}
	return errs
}

// importDSLPackages records the packages which DSL values refer to by the
// names imported in the invoking file. Such imports are unused while the
// declare-tagged file is type-checked, so nothing else would keep them.
func (d *Declare) importDSLPackages(inv *parse.Invocation) {
	file := d.fileOf(inv.Call.Pos())
	if file == nil {
		return
	}

	pkgNames := make(map[string]*types.PkgName)
	for _, spec := range file.Imports {
		var obj types.Object
		if spec.Name != nil {
			obj = d.p.Pkg().TypesInfo.Defs[spec.Name]
		} else {
			obj = d.p.Pkg().TypesInfo.Implicits[spec]
		}
		if pkgName, ok := obj.(*types.PkgName); ok && !parse.IsDeclareImport(pkgName.Imported().Path()) {
			pkgNames[pkgName.Name()] = pkgName
		}
	}

	for _, a := range inv.Assignments {
		for _, id := range a.Idents() {
			if pkgName, ok := pkgNames[id]; ok {
				d.w.Import(pkgName.Imported().Path(), pkgName.Name())
			}
		}
	}
}

func (d *Declare) fileOf(pos token.Pos) *ast.File {
	for _, file := range d.p.DeclareGoFiles() {
		if file.FileStart <= pos && pos <= file.FileEnd {
			return file
		}
	}
	return nil
}

// Generate generates the code for the package. It must be called after [Build]
// succeeds. filename is the path of the output file. It returns nil if the
// package has no declare-tagged files.
func (d *Declare) Generate(filename string) []byte {
	if len(d.p.DeclareGoFiles()) == 0 {
		return nil
	}
	d.writeSchemaComment()
	d.mergeCode()
	return d.frameCode(filename)
}

// writeSchemaComment lists the registered schemas so that readers of the
// generated file know which DSL names exist.
func (d *Declare) writeSchemaComment() {
	if d.reg.Len() == 0 {
		return
	}

	d.w.Printf("// declare: schemas\n//\n")
	for s := range d.reg.All() {
		d.w.Printf("//\t%s builds %t (%s, default: %s)\n", s, s.Type, s.Strategy(), s.Default)
	}
	d.w.Printf("\n")
}

// mergeCode copies code from the source files tagged with "//go:build
// declare". It erases registrations and replaces invocations with their
// expansions to remove any references to the declare package.
func (d *Declare) mergeCode() {
	for _, file := range d.p.DeclareGoFiles() {
		name := filepath.Base(d.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			// Replace invocations
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				call, ok := c.Node().(*ast.CallExpr)
				if !ok {
					return true
				}

				code, ok := d.exps[call.Lparen]
				if !ok {
					return true
				}

				// HACK: printer.Fprint does not validate the name of an Ident
				// node. It can be used to inject arbitrary code at the desired
				// position.
				c.Replace(&ast.Ident{NamePos: call.Pos(), Name: code})
				return false
			}, nil).(ast.Decl)

			// Erase registrations
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.ValueSpec)
				if !ok {
					return true
				}

				var names []*ast.Ident
				var values []ast.Expr
				for i := range spec.Names {
					if i >= len(spec.Values) {
						names = append(names, spec.Names[i])
						continue
					}

					if !d.isRegistration(spec.Values[i]) {
						names = append(names, spec.Names[i])
						values = append(values, spec.Values[i])
					}
				}

				switch {
				case len(names) == 0:
					// Input:  var ( _ = declare.Type[T]() )
					// Output: var ()
					c.Delete()
				case len(names) != len(spec.Names):
					// Input:  var ( _, b = declare.Type[T](), 42 )
					// Output: var ( b = 42 )
					c.Replace(&ast.ValueSpec{
						Doc:     spec.Doc,
						Names:   names,
						Type:    spec.Type,
						Values:  values,
						Comment: spec.Comment,
					})
				}

				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok {
				if len(gen.Specs) == 0 {
					continue
				}
			}

			if first {
				fmt.Fprintf(d.buf, "// %s:\n\n", name)
				first = false
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(d.w, decl)

			printer.Fprint(d.buf, d.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			fmt.Fprintf(d.buf, "\n\n")
		}
	}
}

func (d *Declare) isRegistration(expr ast.Expr) bool {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	return ok && d.p.IsDirective(call, "Type")
}

func (d *Declare) frameCode(filename string) []byte {
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !declare\n\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/declare%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", d.p.Pkg().Name)

	imps := d.w.Imports()
	if len(imps) != 0 {
		aliases := make([]string, 0, len(imps))
		for alias := range imps {
			aliases = append(aliases, alias)
		}
		slices.SortFunc(aliases, func(a, b string) int {
			return strings.Compare(imps[a].Path(), imps[b].Path())
		})

		fmt.Fprintf(&buf, "import (\n")
		for _, alias := range aliases {
			imp := imps[alias]
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, d.buf)
	code := buf.Bytes()

	// Add missing imports and apply gofmt if succeeded
	opts := &imports.Options{Comments: true, TabIndent: true, TabWidth: 8}
	if fixed, err := imports.Process(filename, code, opts); err == nil {
		return fixed
	}
	if fixed, err := format.Source(code); err == nil {
		return fixed
	}
	return code
}
