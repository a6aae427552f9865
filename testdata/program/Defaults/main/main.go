//go:build declare

package main

import (
	"fmt"

	"github.com/sublee/declare"
)

type Server struct {
	Host string
	Port int
}

func NewServer() Server {
	return Server{Host: "localhost", Port: 8080}
}

type Counter struct {
	N    int
	Step int
}

func (c *Counter) Default() Counter {
	return Counter{Step: 1}
}

type Point struct{ X, Y int }

type Map struct{ Keys []string }

type Box[T any] struct{ Value T }

var (
	_ = declare.Type[Server](declare.DefaultFunc(NewServer))
	_ = declare.Type[Counter]()
	_ = declare.Type[Point](declare.Overlay())
	_ = declare.Type[Map](declare.Name("mapping"))
	_ = declare.Type[Box[int]]()
)

func main() {
	fmt.Printf("%+v\n", declare.Build[Server](`server{ Port: 9090 }`))
	fmt.Printf("%+v\n", declare.Build[Counter](`counter{ N: 10 }`))
	fmt.Printf("%+v\n", declare.Build[Point](`point{ Y: 2 }`))
	fmt.Printf("%+v\n", declare.Build[Map](`mapping{ Keys: []string{"a", "b"} }`))
	fmt.Printf("%+v\n", declare.Build[Box[int]](`box{ Value: 7 }`))
}
