// Package declaretest type-checks small in-memory packages which use the
// declare directives.
package declaretest

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// PkgPath is the import path of loaded packages.
const PkgPath = "example.com/app"

// Load type-checks src as main.go of package [PkgPath].
func Load(t testing.TB, src string) *packages.Package {
	return LoadFiles(t, map[string]string{"main.go": src})
}

// LoadFiles type-checks the files of package [PkgPath] by their names. Unused
// variables and imports are tolerated because DSL blocks refer to them in
// strings.
func LoadFiles(t testing.TB, files map[string]string) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	imp := &testImporter{fallback: importer.ForCompiler(fset, "source", nil)}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	var syntax []*ast.File
	for _, name := range names {
		file, err := parser.ParseFile(fset, name, files[name], parser.ParseComments)
		require.NoError(t, err)
		syntax = append(syntax, file)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Instances:  make(map[*ast.Ident]types.Instance),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	var errs []error
	conf := types.Config{
		Importer: imp,
		Error: func(err error) {
			msg := err.Error()
			if strings.Contains(msg, "declared and not used") || strings.Contains(msg, "imported and not used") {
				return
			}
			errs = append(errs, err)
		},
	}
	pkg, _ := conf.Check(PkgPath, fset, syntax, info)
	require.Empty(t, errs, "type errors")

	return &packages.Package{
		ID:        PkgPath,
		Name:      pkg.Name(),
		PkgPath:   PkgPath,
		GoFiles:   names,
		Types:     pkg,
		Fset:      fset,
		Syntax:    syntax,
		TypesInfo: info,
	}
}

// testImporter imports the directive package from its source in this
// repository and the others from their sources in GOROOT.
type testImporter struct{ fallback types.Importer }

func (imp *testImporter) Import(path string) (*types.Package, error) {
	if path == "github.com/sublee/declare" {
		return declarePkg()
	}
	return imp.fallback.Import(path)
}

// declarePkg checks declare.go at the repository root once. Its positions are
// in a separate file set because they never appear in diagnostics.
var declarePkg = sync.OnceValues(func() (*types.Package, error) {
	_, file, _, _ := runtime.Caller(0)
	root := filepath.Join(filepath.Dir(file), "..", "..", "..", "..")

	fset := token.NewFileSet()
	syntax, err := parser.ParseFile(fset, filepath.Join(root, "declare.go"), nil, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	conf := types.Config{}
	return conf.Check("github.com/sublee/declare", fset, []*ast.File{syntax}, nil)
})
