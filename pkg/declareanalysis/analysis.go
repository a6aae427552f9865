// Package declareanalysis reports declare diagnostics through the Go analysis
// protocol, so that editors and linters show them next to the code.
//
// Run it with the declare build tag. Otherwise the files containing directives
// are not part of the analyzed package:
//
//	go vet -tags=declare -vettool=$(which declare-vet) ./...
//
// The analysis needs a package that type checks. A local variable or an import
// that is used only inside DSL strings is "declared and not used" to the Go
// compiler, so go vet and gopls fail on such a file before declare-vet runs:
//
//	FieldTwo := 42
//	_ = declare.Build[MyStruct](`my_struct{ FieldTwo }`)
//
// The declare command tolerates these errors in declare-tagged files. Use
// it to report diagnostics for such packages.
package declareanalysis

import (
	"errors"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/declare/internal/codefmt"
	declareinternal "github.com/sublee/declare/internal/declare"
	"github.com/sublee/declare/pkg/declareerrors"
)

// Analyzer validates the usage of declare in the package.
var Analyzer = &analysis.Analyzer{
	Name: "declare",
	Doc:  "linter for declare usage",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	d, err := declareinternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := d.Build(); err != nil {
		for _, err := range declareerrors.Flatten(err) {
			var codeErr *codefmt.CodeError
			if !errors.As(err, &codeErr) {
				continue
			}

			diag := analysis.Diagnostic{
				Pos:     codeErr.Pos(),
				End:     codeErr.End(),
				Message: codeErr.Unwrap().Error(),
			}
			if kind := declareerrors.KindOf(codeErr); kind != nil {
				diag.Category = kind.Error()
			}
			pass.Report(diag)
		}
	}

	return nil, nil
}
