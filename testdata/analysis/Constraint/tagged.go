//go:build declare

package testdata

import "github.com/sublee/declare" // ok

type Point struct{ X, Y int }

var _ = declare.Type[Point]()
