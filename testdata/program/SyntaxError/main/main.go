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
	fmt.Println(declare.Build[MyStruct](`my_struct{ FieldOne: "Hello" FieldTwo: 3 }`))
	fmt.Println(declare.Build[MyStruct](`my_struct{ FieldOne: }`))
	fmt.Println(declare.Build[MyStruct](`my_struct{ , }`))
	fmt.Println(declare.Build[MyStruct](`my_struct{ FieldOne: "Hello"`))
}
