// golangcilintdeclare package provides a plugin for golangci-lint to integrate
// the declare analyzer. To build a custom golangci-lint binary with this
// plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-declare binary that you can use to lint
// your Go code with the declare analyzer. Run it with the declare build tag so
// that the files containing directives are analyzed.
package golangcilintdeclare

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/declare/pkg/declareanalysis"
)

func init() {
	register.Plugin("declare", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return DeclareLinter{}, nil
}

type DeclareLinter struct{}

func (DeclareLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{declareanalysis.Analyzer}, nil
}

func (DeclareLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
