package codefmt

import (
	"go/ast"
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// Writer writes generated code for a package. It collects the packages which
// the written code refers to so that the caller can emit the import
// declaration afterward.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	fmt     Formatter
	imports map[string]Import
}

// NewWriter creates a [Writer] for code generated into pkg.
func NewWriter(w io.Writer, pkg *packages.Package) *Writer {
	return &Writer{
		w:       w,
		pkg:     pkg,
		fmt:     New(pkg),
		imports: make(map[string]Import),
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Printf writes code formatted by [Formatter.Fprintf]. Packages of the
// arguments are imported.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	w.importArgs(args...)
	return w.fmt.Fprintf(w.w, format, args...)
}

// Sprintf is like [Writer.Printf] but returns the code.
func (w *Writer) Sprintf(format string, args ...any) string {
	w.importArgs(args...)
	return w.fmt.Sprintf(format, args...)
}

// Import is a package which the generated code imports.
type Import struct {
	*types.Package

	// HasAlias is true if the package is imported by a name other than its
	// own.
	HasAlias bool
}

// Imports returns the collected imports by their names in the generated file.
func (w *Writer) Imports() map[string]Import {
	return w.imports
}

// Import imports the package at path and returns the name to refer to it. name
// is the preferred name. If it is empty, the name used by pkg is preferred. A
// number is appended to the name when another package or a package-level
// declaration already takes it:
//
//	strs := w.Import("strings", "")
//	w.Printf("%s.ToUpper(s)", strs)
func (w *Writer) Import(path, name string) string {
	var origName string
	for _, imp := range w.pkg.Types.Imports() {
		if imp.Path() == path {
			origName = imp.Name()
			break
		}
	}
	if name == "" {
		name = origName
	}

	pkg := types.NewPackage(path, name)
	for alt := range DisambiguateName(name) {
		prev, ok := w.imports[alt]
		if ok && prev.Path() == path {
			return alt
		}
		if !ok && w.pkg.Types.Scope().Lookup(alt) == nil {
			pkg.SetName(alt)
			w.imports[alt] = Import{Package: pkg, HasAlias: alt != origName}
			return alt
		}
	}
	panic("unreachable")
}

func (w *Writer) importArgs(args ...any) {
	for _, arg := range args {
		switch arg := arg.(type) {
		case ast.Expr:
			w.importExpr(arg)
		case types.Object:
			w.importObj(arg)
		case types.Type:
			w.importType(arg)
		case Exprer:
			w.importExpr(arg.Expr())
		case Objecter:
			w.importObj(arg.Object())
		case Typer:
			w.importType(arg.Type())
		}
	}
}

func (w *Writer) importExpr(expr ast.Expr) {
	ast.Inspect(expr, func(node ast.Node) bool {
		if id, ok := node.(*ast.Ident); ok {
			w.importType(w.pkg.TypesInfo.TypeOf(id))
			w.importObj(w.pkg.TypesInfo.ObjectOf(id))
		}
		return true
	})
}

func (w *Writer) importType(typ types.Type) {
	switch typ := typ.(type) {
	case *types.Pointer:
		w.importType(typ.Elem())
	case *types.Named:
		w.importObj(typ.Obj())
	}
}

func (w *Writer) importObj(obj types.Object) {
	if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() == w.pkg.PkgPath {
		return
	}
	if _, ok := obj.(*types.PkgName); ok {
		return
	}

	pkg := obj.Pkg()
	for alt := range DisambiguateName(pkg.Name()) {
		prev, ok := w.imports[alt]
		if ok && prev.Package == pkg {
			return
		}
		if !ok && w.pkg.Types.Scope().Lookup(alt) == nil {
			w.imports[alt] = Import{Package: pkg, HasAlias: alt != pkg.Name()}
			pkg.SetName(alt)
			return
		}
	}
}

// RewriteImports rewrites the package qualifiers in node to the names
// collected by w. Unqualified references to other packages, such as the names
// of a dot import, become qualified. node is modified in place.
func RewriteImports[T ast.Node](w *Writer, node T) T {
	return astutil.Apply(node, func(c *astutil.Cursor) bool {
		switch node := c.Node().(type) {
		case *ast.Ident:
			obj := w.pkg.TypesInfo.ObjectOf(node)
			if obj == nil {
				return false
			}

			pkg := obj.Pkg()
			if pkg == nil || pkg.Path() == w.pkg.PkgPath || obj.Parent() != pkg.Scope() {
				return true
			}

			name := w.Import(pkg.Path(), pkg.Name())
			c.Replace(qualified(name, node.NamePos, node))
			return false

		case *ast.SelectorExpr:
			x, ok := node.X.(*ast.Ident)
			if !ok {
				return true
			}
			pkgName, ok := w.pkg.TypesInfo.ObjectOf(x).(*types.PkgName)
			if !ok {
				return true
			}

			pkg := pkgName.Imported()
			name := w.Import(pkg.Path(), pkg.Name())
			c.Replace(qualified(name, x.NamePos, node.Sel))
			return false
		}
		return true
	}, nil).(T)
}

func qualified(pkgName string, pos token.Pos, sel *ast.Ident) *ast.SelectorExpr {
	return &ast.SelectorExpr{
		X: &ast.Ident{NamePos: pos, Name: pkgName},
		Sel: &ast.Ident{
			NamePos: pos + token.Pos(len(pkgName)+1),
			Name:    sel.Name,
			Obj:     sel.Obj,
		},
	}
}
