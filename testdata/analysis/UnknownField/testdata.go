//go:build declare

package testdata

import "github.com/sublee/declare"

type MyStruct struct {
	FieldOne string
	FieldTwo int
	internal bool
}

var _ = declare.Type[MyStruct]()

const block = "my_struct{ FieldThree: 3 }"

var (
	_ = declare.Build[MyStruct](`my_struct{ FieldOne: "ok", FieldTwo: 2, internal: true }`) // ok
	_ = declare.Build[MyStruct](`my_struct{ FieldThree: 3 }`)                               // want `field "FieldThree" does not exist in struct MyStruct`
	_ = declare.Build[MyStruct](`my_struct{ fieldOne: "x" }`)                               // want `field "fieldOne" does not exist in struct MyStruct; did you mean "FieldOne"\?`
	_ = declare.Build[MyStruct](`my_struct{ FieldTow: 2 }`)                                 // want `did you mean "FieldTwo"\?`
	_ = declare.Build[MyStruct](block)                                                      // want `field "FieldThree" does not exist in struct MyStruct`
	_ = declare.Build[MyStruct](`struct_my{}`)                                              // want `unknown DSL name "struct_my"; MyStruct is declared as "my_struct"`
)
