//go:build declare

package main

import (
	"fmt"

	"github.com/sublee/declare"
)

type Map struct{ Keys []string }

type Celsius float64

type Point struct{ X, Y int }

func (Point) Default() Point { return Point{X: 1} }

var (
	_ = declare.Type[Map]()
	_ = declare.Type[Celsius]()
	_ = declare.Type[*Point]()
	_ = declare.Type[Point](declare.Overlay())
)

func main() {
	fmt.Println(declare.Build[Point](`point{ X: 2 }`))
}
