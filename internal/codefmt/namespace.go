package codefmt

import (
	"fmt"
	"go/token"
	"iter"
)

// NS is a set of names taken in a scope of generated code.
type NS map[string]struct{}

// NewNS creates a namespace where the given names are already taken.
func NewNS(taken ...string) NS {
	ns := make(NS, len(taken))
	for _, name := range taken {
		ns.Reserve(name)
	}
	return ns
}

// Reserve takes name. It returns false if name was already taken.
func (ns NS) Reserve(name string) bool {
	if _, ok := ns[name]; ok {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Name takes and returns the first free alternative of name offered by
// [DisambiguateName]. It panics if name is not an identifier.
func (ns NS) Name(name string) string {
	if !token.IsIdentifier(name) {
		panic(fmt.Sprintf("codefmt: %q is not an identifier", name))
	}
	for alt := range DisambiguateName(name) {
		if ns.Reserve(alt) {
			return alt
		}
	}
	panic("unreachable")
}

// DisambiguateName yields name and then its numbered alternatives infinitely:
// "out", "out2", "out3", and so on. A name ending with a digit is separated
// from the number by "_", so "answer42" goes on to "answer42_2".
func DisambiguateName(name string) iter.Seq[string] {
	if name == "" {
		panic("codefmt: empty name")
	}

	sep := ""
	if last := name[len(name)-1]; '0' <= last && last <= '9' {
		sep = "_"
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}
		for i := 2; ; i++ {
			if !yield(fmt.Sprintf("%s%s%d", name, sep, i)) {
				return
			}
		}
	}
}
