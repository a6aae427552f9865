// Command declare-vet runs the declare analyzer as a standalone checker or as
// a vet tool:
//
//	GOFLAGS=-tags=declare declare-vet ./...
//	go vet -tags=declare -vettool=$(which declare-vet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sublee/declare/pkg/declareanalysis"
)

func main() { singlechecker.Main(declareanalysis.Analyzer) }
