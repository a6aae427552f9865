package declareerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/declare/pkg/declareerrors"
)

func TestFlattenNil(t *testing.T) {
	assert.Nil(t, declareerrors.Flatten(nil))
}

func TestFlattenSingle(t *testing.T) {
	err := errors.New("single")
	assert.Equal(t, []error{err}, declareerrors.Flatten(err))
}

func TestFlattenNested(t *testing.T) {
	a := errors.New("a")
	b := errors.New("b")
	c := errors.New("c")
	err := errors.Join(a, errors.Join(b, c))
	assert.Equal(t, []error{a, b, c}, declareerrors.Flatten(err))
}

func TestFlattenKeepsWrapped(t *testing.T) {
	a := fmt.Errorf("context: %w", declareerrors.ErrSyntax)
	list := declareerrors.Flatten(errors.Join(a))
	assert.Len(t, list, 1)
	assert.ErrorIs(t, list[0], declareerrors.ErrSyntax)
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("main.go:1:1: %w", declareerrors.ErrUnknownField)
	assert.Equal(t, declareerrors.ErrUnknownField, declareerrors.KindOf(err))
	assert.Nil(t, declareerrors.KindOf(errors.New("plain")))
}

func TestFlattenKeepsJoinOrder(t *testing.T) {
	a := errors.New("a")
	b := errors.New("b")
	c := errors.New("c")

	var err error
	for _, e := range []error{a, b, c} {
		err = errors.Join(err, e)
	}
	assert.Equal(t, []error{a, b, c}, declareerrors.Flatten(err))
}
