package codefmt

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func take[T any](seq iter.Seq[T], n int) []T {
	var out []T
	for v := range seq {
		if len(out) == n {
			break
		}
		out = append(out, v)
	}
	return out
}

func TestDisambiguateName(t *testing.T) {
	assert.Equal(t, []string{"out", "out2", "out3"}, take(DisambiguateName("out"), 3))
	assert.Equal(t, []string{"answer42", "answer42_2", "answer42_3"}, take(DisambiguateName("answer42"), 3))
	assert.Panics(t, func() { DisambiguateName("") })
}

func TestNSName(t *testing.T) {
	ns := NewNS("out", "out2", "x")
	assert.Equal(t, "out3", ns.Name("out"))
	assert.Equal(t, "out4", ns.Name("out"))
	assert.Equal(t, "y", ns.Name("y"))
	assert.Equal(t, "x2", ns.Name("x"))

	assert.False(t, ns.Reserve("y"))
	assert.True(t, ns.Reserve("z"))

	names := make([]string, 0, len(ns))
	for name := range ns {
		names = append(names, name)
	}
	slices.Sort(names)
	assert.Equal(t, []string{"out", "out2", "out3", "out4", "x", "x2", "y", "z"}, names)
}

func TestNSNamePanics(t *testing.T) {
	assert.Panics(t, func() { NewNS().Name("not an identifier") })
}
