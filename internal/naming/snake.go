package naming

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Snake converts a Go type name into its lowercase snake case form.
//
//	Snake("MyStruct")   // "my_struct"
//	Snake("HTTPServer") // "http_server"
//	Snake("Point3D")    // "point3_d"
//
// The result may be empty or otherwise unusable, see [Check].
func Snake(name string) string {
	words := SplitWords(name)
	for i, word := range words {
		words[i] = lower.String(word)
	}
	return strings.Join(words, "_")
}

var errEmpty = errors.New("empty name")

// Check reports why name cannot be used as a DSL invocation name. A usable name
// is a Go identifier which is neither blank nor a keyword.
func Check(name string) error {
	switch {
	case name == "":
		return errEmpty
	case name == "_":
		return fmt.Errorf("%q is the blank identifier", name)
	case token.IsKeyword(name):
		return fmt.Errorf("%q is a Go keyword", name)
	case !token.IsIdentifier(name):
		return fmt.Errorf("%q is not an identifier", name)
	}
	return nil
}

// Derive derives the DSL invocation name for a type name. It fails if the
// snake case form of typeName is not usable.
func Derive(typeName string) (string, error) {
	name := Snake(typeName)
	if err := Check(name); err != nil {
		if errors.Is(err, errEmpty) {
			return "", fmt.Errorf("cannot derive DSL name from %q", typeName)
		}
		return "", fmt.Errorf("cannot derive DSL name from %q: %w", typeName, err)
	}
	return name, nil
}
