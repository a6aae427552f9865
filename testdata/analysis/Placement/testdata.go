//go:build declare

package testdata

import "github.com/sublee/declare"

type Point struct{ X, Y int }

var _ = declare.Type[Point]() // ok

var p = declare.Type[Point]() // want `declare.Type must be assigned to _ in a package-level var declaration`

func F() {
	_ = declare.Type[Point]() // want `declare.Type must be assigned to _ in a package-level var declaration`
}

var opt = declare.Overlay() // want `cannot use declare.Overlay outside declare.Type`

var build = declare.Build[Point] // want `cannot use declare.Build outside directives; removed at code generation`

var _ = declare.Build[Point](`point{ X: 1 }`) // ok

func G() Point {
	return declare.Build[Point](`point{ Y: 2 }`) // ok
}
