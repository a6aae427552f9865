//go:build declare

package main

import (
	"fmt"

	"github.com/sublee/declare"
)

type Greeting struct {
	Word string
	Name string
}

func (g *Greeting) Default() Greeting {
	return Greeting{Word: "Hello", Name: "World"}
}

// greeting is the word to greet with.
var _, greeting = declare.Type[Greeting](), "Hi"

var (
	answer = 42
	_      = declare.Type[Pair](declare.Name("kv"))
)

type Pair struct {
	Key   string
	Value int
}

func main() {
	Word := greeting
	fmt.Printf("%+v\n", declare.Build[Greeting](`greeting{ Word }`))
	fmt.Printf("%+v\n", declare.Build[Pair](`kv{ Key: "answer", Value: answer, }`))
}
