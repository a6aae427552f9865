//go:build declare

package testdata

import "github.com/sublee/declare"

type MyStruct struct {
	FieldOne string
	FieldTwo int
}

var _ = declare.Type[MyStruct]()

var dynamic = "my_struct{}"

var (
	_ = declare.Build[MyStruct](`my_struct{ FieldOne: "x" FieldTwo: 2 }`)            // want `expected ',' or '}', found FieldTwo`
	_ = declare.Build[MyStruct](`my_struct{ ; }`)                                    // want `expected field name, found ';'`
	_ = declare.Build[MyStruct](`my_struct{ FieldOne: "unterminated }`)              // want `string literal not terminated`
	_ = declare.Build[MyStruct]("my_struct{ FieldOne: \"x\", FieldTwo: }")           // want `expected expression, found '}'`
	_ = declare.Build[MyStruct](`my_struct{ FieldOne: "x" }, extra`)                 // want `unexpected ',' after block`
	_ = declare.Build[MyStruct](`{ FieldOne: "x" }`)                                 // want `expected DSL name, found '{'`
	_ = declare.Build[MyStruct](dynamic)                                             // want `DSL block must be a constant string; got dynamic`
	_ = declare.Build[MyStruct](`my_struct{ FieldOne: "a", FieldTwo: 1, FieldTwo }`) // ok
	_ = declare.Build[MyStruct](`my_struct{ FieldOne: "a", FieldTwo: 1, }`)          // ok
)
