package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/declare/pkg/declareerrors"
)

func errorMessages(err error) []string {
	var msgs []string
	for _, err := range declareerrors.Flatten(err) {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func TestValidateConstraint(t *testing.T) {
	p := newParser(t, `package app

import "github.com/sublee/declare"
`)
	err := p.Validate()
	assert.Equal(t, []string{
		`main.go:3:8: file must have "//go:build declare" constraint when importing declare`,
	}, errorMessages(err))
}

func TestValidateDirectiveUsages(t *testing.T) {
	p := newParser(t, `//go:build declare

package app

import "github.com/sublee/declare"

type Point struct{ X int }

var P = declare.Type[Point]()
var opt = declare.Overlay()
var _ declare.Option

func f() {
	_ = declare.Type[Point]()
	_ = declare.Build[Point](`+"`point{}`"+`)
}
`)
	err := p.Validate()
	assert.ElementsMatch(t, []string{
		"main.go:9:9: declare.Type must be assigned to _ in a package-level var declaration",
		"main.go:10:11: cannot use declare.Overlay outside declare.Type",
		"main.go:11:7: cannot use declare.Option outside directives; removed at code generation",
		"main.go:14:6: declare.Type must be assigned to _ in a package-level var declaration",
	}, errorMessages(err))
}

func TestValidateOK(t *testing.T) {
	p := newParser(t, `//go:build declare

package app

import "github.com/sublee/declare"

type Point struct{ X int }

var _ = declare.Type[Point](declare.Name("pt"))

func f() Point {
	return declare.Build[Point](`+"`pt{ X: 1 }`"+`)
}
`)
	assert.NoError(t, p.Validate())
}
