//go:build declare

package main

import (
	"fmt"

	"github.com/sublee/declare"
)

type MyStruct struct {
	FieldOne string
	FieldTwo int
}

var _ = declare.Type[MyStruct]()

func main() {
	fmt.Println(declare.Build[MyStruct](`my_struct{ FieldThree: 3 }`))
	fmt.Println(declare.Build[MyStruct](`my_struct{ FieldOne: "x", fieldTwo: 2 }`))
	fmt.Println(declare.Build[MyStruct](`my_struct{ field_one: "x" }`))
	fmt.Println(declare.Build[MyStruct](`my_struct{ FieldOen, FieldTwo }`))
}
