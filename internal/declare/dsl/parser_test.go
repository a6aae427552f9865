package dsl_test

import (
	"go/token"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/declare/internal/declare/dsl"
	"github.com/sublee/declare/pkg/declareerrors"
)

const base = token.Pos(1000)

// entry is a comparable summary of a [dsl.FieldAssignment].
type entry struct {
	Field     string
	Code      string
	Shorthand bool
}

func summarize(inv *dsl.Invocation) []entry {
	var entries []entry
	for _, a := range inv.Assignments {
		entries = append(entries, entry{a.Name(), a.Code, a.Shorthand})
	}
	return entries
}

func mustParse(t *testing.T, src string) *dsl.Invocation {
	t.Helper()
	inv, err := dsl.Parse(src, dsl.Offset(base))
	require.NoError(t, err, src)
	return inv
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []entry
	}{
		{
			name: "Empty",
			src:  `my_struct{}`,
			want: nil,
		},
		{
			name: "EmptyWithSpaces",
			src:  "my_struct {\n}",
			want: nil,
		},
		{
			name: "Explicit",
			src:  `my_struct{ FieldOne: "Hello", FieldTwo: 42 }`,
			want: []entry{
				{"FieldOne", `"Hello"`, false},
				{"FieldTwo", "42", false},
			},
		},
		{
			name: "Shorthand",
			src:  `my_struct{ FieldOne, FieldTwo: 42 }`,
			want: []entry{
				{"FieldOne", "FieldOne", true},
				{"FieldTwo", "42", false},
			},
		},
		{
			name: "TrailingComma",
			src:  `my_struct{ FieldOne: "Hello", }`,
			want: []entry{
				{"FieldOne", `"Hello"`, false},
			},
		},
		{
			name: "Multiline",
			src: `my_struct{
				FieldOne: strings.ToUpper("hello"),
				FieldTwo: 42
			}`,
			want: []entry{
				{"FieldOne", `strings.ToUpper("hello")`, false},
				{"FieldTwo", "42", false},
			},
		},
		{
			name: "NestedCommas",
			src:  `my_struct{ A: f(1, 2), B: []int{3, 4}, C: m[k], D: g[int, string](x) }`,
			want: []entry{
				{"A", "f(1, 2)", false},
				{"B", "[]int{3, 4}", false},
				{"C", "m[k]", false},
				{"D", "g[int, string](x)", false},
			},
		},
		{
			name: "FuncLit",
			src: `my_struct{ A: func() int {
				x := 1
				return x
			}() }`,
			want: []entry{
				{"A", "func() int {\n\tx := 1\n\treturn x\n}()", false},
			},
		},
		{
			name: "Duplicates",
			src:  `my_struct{ A: 1, A: 2 }`,
			want: []entry{
				{"A", "1", false},
				{"A", "2", false},
			},
		},
		{
			name: "Comments",
			src:  `my_struct{ A: 1 /* one */, B /* shorthand */ }`,
			want: []entry{
				{"A", "1", false},
				{"B", "B", true},
			},
		},
		{
			name: "CommentsInsideValue",
			src:  `my_struct{ A: f(1 /* one */, 2), B: 1 + /* two */ 2 }`,
			want: []entry{
				{"A", "f(1, 2)", false},
				{"B", "1 + 2", false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := mustParse(t, tt.src)
			assert.Equal(t, "my_struct", inv.Name.Name)
			if diff := cmp.Diff(tt.want, summarize(inv)); diff != "" {
				t.Errorf("assignments mismatch (-want +got):\n%s\n%s", diff, spew.Sdump(inv.Assignments))
			}
		})
	}
}

func TestParseTrailingCommaEquivalence(t *testing.T) {
	with := mustParse(t, `dsl{ f: v, }`)
	without := mustParse(t, `dsl{ f: v }`)
	assert.Empty(t, cmp.Diff(summarize(without), summarize(with)))
}

func TestParseShorthandValue(t *testing.T) {
	inv := mustParse(t, `dsl{ f }`)
	require.Len(t, inv.Assignments, 1)

	a := inv.Assignments[0]
	assert.True(t, a.Shorthand)
	assert.Equal(t, []string{"f"}, a.Idents())
	assert.Equal(t, a.Field.Pos(), a.ValuePos)
}

func TestParsePositions(t *testing.T) {
	//                 0         1         2
	//                 0123456789012345678901234567
	inv := mustParse(t, `point{ X: 1, Y: f(x, y) }`)
	assert.Equal(t, base, inv.Name.Pos())
	assert.Equal(t, base+5, inv.Lbrace)
	assert.Equal(t, base+24, inv.Rbrace)
	assert.Equal(t, base+25, inv.End())

	require.Len(t, inv.Assignments, 2)
	assert.Equal(t, base+7, inv.Assignments[0].Pos())
	assert.Equal(t, base+8, inv.Assignments[0].End())
	assert.Equal(t, base+10, inv.Assignments[0].ValuePos)
	assert.Equal(t, base+13, inv.Assignments[1].Pos())
	assert.Equal(t, base+16, inv.Assignments[1].ValuePos)
	assert.Equal(t, []string{"f", "x", "y"}, inv.Assignments[1].Idents())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
		off  int
	}{
		{"NoName", `{ A: 1 }`, "expected DSL name, found '{'", 0},
		{"NoBrace", `point A: 1`, "expected '{', found A", 6},
		{"Unterminated", `point{ A: 1`, "unterminated block, expected '}'", 11},
		{"MissingComma", `point{ A B }`, "expected ',' or '}', found B", 9},
		{"MissingValue", `point{ A: }`, "expected expression, found '}'", 10},
		{"MissingValueBeforeComma", `point{ A:, B }`, "expected expression, found ','", 9},
		{"NumberAsField", `point{ 1: 2 }`, "expected field name, found 1", 7},
		{"LeadingComma", `point{ , A }`, "expected field name, found ','", 7},
		{"DoubleComma", `point{ A,, B }`, "expected field name, found ','", 9},
		{"Semicolon", `point{ A: 1; B: 2 }`, "expected ',' or '}', found ';'", 11},
		{"Junk", `point{} extra`, "unexpected extra after block", 8},
		{"MissingCommaAfterValue", `point{ A: 1 B: 2 }`, "expected ',' or '}', found B", 12},
		{"BadExpr", `point{ A: 1 + }`, "expected operand, found 'EOF'", 13},
		{"UnbalancedParen", `point{ A: f) }`, "unexpected ')'", 11},
		{"ScanError", `point{ A: "unterminated }`, "string literal not terminated", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dsl.Parse(tt.src, dsl.Offset(base))
			require.Error(t, err)
			assert.ErrorIs(t, err, declareerrors.ErrSyntax)

			var dslErr *dsl.Error
			require.ErrorAs(t, err, &dslErr)
			assert.Equal(t, tt.msg, dslErr.Msg)
			assert.Equal(t, base+token.Pos(tt.off), dslErr.Pos)
		})
	}
}

func TestParseFixedLocator(t *testing.T) {
	_, err := dsl.Parse(`point{ 1 }`, dsl.Fixed(42))

	var dslErr *dsl.Error
	require.ErrorAs(t, err, &dslErr)
	assert.Equal(t, token.Pos(42), dslErr.Pos)
}
