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

func (MyStruct) Default() MyStruct {
	return MyStruct{FieldOne: "Default"}
}

var _ = declare.Type[MyStruct]()

func main() {
	FieldTwo := 42

	fmt.Printf("%+v\n", declare.Build[MyStruct](`my_struct{}`))
	fmt.Printf("%+v\n", declare.Build[MyStruct](`my_struct{ FieldOne: "Hello" }`))
	fmt.Printf("%+v\n", declare.Build[MyStruct](`my_struct{ FieldTwo }`))
	fmt.Printf("%+v\n", declare.Build[MyStruct](`my_struct{
		FieldOne: fmt.Sprint("multi", "line"),
		FieldTwo: FieldTwo + 1,
	}`))
	fmt.Printf("%+v\n", declare.Build[MyStruct](`my_struct{ FieldTwo: 1, FieldTwo: 2 }`))
	fmt.Printf("%+v\n", declare.Build[MyStruct]("my_struct{ FieldOne: \"interpreted\" }"))
}
