package codefmt

import (
	"go/token"
	"go/types"
)

// FormatType formats typ as it is referred from the package of pkger.
func FormatType(pkger Pkger, typ types.Type) string {
	return newByPkger(pkger).Type(typ)
}

// FormatPos formats pos in the file set of the package of pkger.
func FormatPos(pkger Pkger, pos token.Pos) string {
	return newByPkger(pkger).Pos(pos)
}

// Errorf is a shorthand for [Formatter.Errorf].
func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).Errorf(poser, format, args...)
}

// KindErrorf is a shorthand for [Formatter.KindErrorf].
func KindErrorf(pkger Pkger, poser Poser, kind error, format string, args ...any) error {
	return newByPkger(pkger).KindErrorf(poser, kind, format, args...)
}

type span struct{ pos, end token.Pos }

func (s span) Pos() token.Pos { return s.pos }
func (s span) End() token.Pos { return s.end }

// Span returns a [Poser] that also reports the end position.
func Span(pos, end token.Pos) Poser { return span{pos, end} }
