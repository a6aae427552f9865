package dsl

import (
	"go/token"

	"github.com/sublee/declare/pkg/declareerrors"
)

// Error is a syntax error in a DSL invocation. Parsing stops at the first one.
type Error struct {
	Pos token.Pos
	End token.Pos
	Msg string
}

func (e *Error) Error() string { return e.Msg }

// Unwrap makes every Error match [declareerrors.ErrSyntax].
func (e *Error) Unwrap() error { return declareerrors.ErrSyntax }
