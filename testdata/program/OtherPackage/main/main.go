//go:build declare

package main

import (
	"fmt"
	str "strings"

	"example.com/OtherPackage/conf"
	"github.com/sublee/declare"
)

var _ = declare.Type[conf.Options]()

func main() {
	opts := declare.Build[conf.Options](`options{ Name: str.ToUpper("custom"), Verbose: true }`)
	fmt.Println(opts.Name, opts.Verbose, opts.Level())

	opts = declare.Build[conf.Options](`options{}`)
	fmt.Println(opts.Name, opts.Verbose, opts.Level())
}
