// Package naming derives DSL invocation names from Go type names.
package naming

import "unicode"

// SplitWords splits a Go identifier into the words of its snake case form.
// A new word starts at:
//   - an uppercase letter after a lowercase letter or digit: "getID" -> "get" + "ID"
//   - the last uppercase letter of a run before a lowercase letter: "HTTPServer" -> "HTTP" + "Server"
//
// Digits stay with the word before them, so "Point3D" splits into "Point3" and
// "D". Underscores separate words and are dropped.
func SplitWords(s string) []string {
	var words []string
	rs := []rune(s)
	start := -1
	for i, r := range rs {
		if r == '_' {
			if start >= 0 {
				words = append(words, string(rs[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		var next rune
		if i+1 < len(rs) {
			next = rs[i+1]
		}
		if startsWord(rs[i-1], r, next) {
			words = append(words, string(rs[start:i]))
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(rs[start:]))
	}
	return words
}

func startsWord(prev, curr, next rune) bool {
	if !unicode.IsUpper(curr) {
		return false
	}
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	return unicode.IsUpper(prev) && unicode.IsLower(next)
}
