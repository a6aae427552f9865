//go:build declare

package testdata

import "github.com/sublee/declare"

type Point struct{ X, Y int }

type Point2 struct{ X, Y int }

type Pt struct{ X, Y int }

type Map struct{ Keys []string }

type Range struct{ Lo, Hi int }

type Celsius float64

type Bad struct{ A int }

func (Bad) Default() int { return 0 }

type Embedding struct {
	Bad
	B int
}

func newPt() Pt { return Pt{} }

func newPoint() *Point { return nil }

var (
	_ = declare.Type[Point]()                                           // ok
	_ = declare.Type[Point]()                                           // want `Point is already declared at`
	_ = declare.Type[Point2](declare.Name("point"))                     // want `DSL name "point" of Point2 is already used by Point declared at`
	_ = declare.Type[Pt](declare.DefaultFunc(newPt), declare.Overlay()) // want `cannot use declare.Overlay with func default of Pt; overlay leaves unassigned fields zero`
	_ = declare.Type[Pt](declare.DefaultFunc(newPoint))                 // want `default function must be func\(\) Pt; got func\(\) \*Point`
	_ = declare.Type[Map]()                                             // want `cannot derive DSL name from "Map": "map" is a Go keyword; use declare.Name to name it`
	_ = declare.Type[Range](declare.Name("range"))                      // want `invalid DSL name: "range" is a Go keyword`
	_ = declare.Type[Celsius]()                                         // want `cannot declare Celsius: underlying type is basic, not struct`
	_ = declare.Type[struct{ X int }]()                                 // want `cannot declare struct{X int}: unnamed struct type`
	_ = declare.Type[*Point]()                                          // want `cannot declare \*Point: pointer type, not named struct`
	_ = declare.Type[Bad]()                                             // want `Bad.Default must be func\(\) Bad to be used as default; declared at`
	_ = declare.Type[Embedding]()                                       // ok, promoted Default is ignored
	_ = declare.Type[Map](declare.Name("m"), declare.Name("n"))         // want `duplicate declare.Name option`
)
