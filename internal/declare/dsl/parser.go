package dsl

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/scanner"
	"go/token"
	"strings"
)

// Locator maps a byte offset in the DSL source to a position in the host file.
type Locator func(offset int) token.Pos

// Offset locates positions relative to base. It suits sources copied verbatim
// from the host file, such as the contents of raw string literals.
func Offset(base token.Pos) Locator {
	return func(offset int) token.Pos {
		if !base.IsValid() {
			return token.NoPos
		}
		return base + token.Pos(offset)
	}
}

// Fixed locates every offset at pos. It suits sources whose offsets do not map
// to the host file, such as string literals with escape sequences.
func Fixed(pos token.Pos) Locator {
	return func(int) token.Pos { return pos }
}

// item is a scanned token with its byte range in the source.
type item struct {
	tok      token.Token
	lit      string
	off, end int
}

func (it item) String() string {
	switch {
	case it.tok == token.EOF:
		return "EOF"
	case it.tok.IsLiteral():
		return it.lit
	}
	return fmt.Sprintf("'%s'", it.tok)
}

// Parse parses a DSL invocation from src.
func Parse(src string, loc Locator) (*Invocation, error) {
	p := &dslParser{src: src, loc: loc}
	if err := p.scan(); err != nil {
		return nil, err
	}
	return p.parseInvocation()
}

type dslParser struct {
	src   string
	loc   Locator
	items []item
	i     int
}

// scan tokenizes the whole source with the Go scanner. Newlines are not
// significant in a block, so automatically inserted semicolons are dropped.
func (p *dslParser) scan() error {
	fset := token.NewFileSet()
	file := fset.AddFile("", -1, len(p.src))

	var scanErr *Error
	var s scanner.Scanner
	s.Init(file, []byte(p.src), func(pos token.Position, msg string) {
		if scanErr == nil {
			at := p.loc(pos.Offset)
			scanErr = &Error{Pos: at, End: at, Msg: msg}
		}
	}, 0)

	for {
		pos, tok, lit := s.Scan()
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		off := file.Offset(pos)
		text := lit
		if text == "" {
			text = tok.String()
		}
		if tok == token.EOF {
			text = ""
		}
		p.items = append(p.items, item{tok, lit, off, off + len(text)})

		if tok == token.EOF {
			break
		}
	}

	if scanErr != nil {
		return scanErr
	}
	return nil
}

func (p *dslParser) peek() item { return p.items[p.i] }

func (p *dslParser) next() item {
	it := p.items[p.i]
	if it.tok != token.EOF {
		p.i++
	}
	return it
}

func (p *dslParser) errorf(it item, format string, args ...any) *Error {
	return &Error{
		Pos: p.loc(it.off),
		End: p.loc(it.end),
		Msg: fmt.Sprintf(format, args...),
	}
}

func (p *dslParser) expect(tok token.Token, what string) (item, error) {
	it := p.peek()
	if it.tok != tok {
		return it, p.errorf(it, "expected %s, found %s", what, it)
	}
	return p.next(), nil
}

func (p *dslParser) ident(it item) *ast.Ident {
	return &ast.Ident{NamePos: p.loc(it.off), Name: it.lit}
}

func (p *dslParser) parseInvocation() (*Invocation, error) {
	name, err := p.expect(token.IDENT, "DSL name")
	if err != nil {
		return nil, err
	}

	lbrace, err := p.expect(token.LBRACE, "'{'")
	if err != nil {
		return nil, err
	}

	assignments, err := p.parseAssignments()
	if err != nil {
		return nil, err
	}

	rbrace, err := p.expect(token.RBRACE, "'}'")
	if err != nil {
		return nil, err
	}

	if it := p.peek(); it.tok != token.EOF {
		return nil, p.errorf(it, "unexpected %s after block", it)
	}

	return &Invocation{
		Name:        p.ident(name),
		Lbrace:      p.loc(lbrace.off),
		Rbrace:      p.loc(rbrace.off),
		Assignments: assignments,
	}, nil
}

func (p *dslParser) parseAssignments() ([]FieldAssignment, error) {
	var assignments []FieldAssignment
	for {
		switch it := p.peek(); it.tok {
		case token.RBRACE:
			return assignments, nil
		case token.EOF:
			return nil, p.errorf(it, "unterminated block, expected '}'")
		}

		a, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)

		switch it := p.peek(); it.tok {
		case token.COMMA:
			p.next()
		case token.RBRACE:
			return assignments, nil
		case token.EOF:
			return nil, p.errorf(it, "unterminated block, expected '}'")
		default:
			return nil, p.errorf(it, "expected ',' or '}', found %s", it)
		}
	}
}

func (p *dslParser) parseAssignment() (FieldAssignment, error) {
	name, err := p.expect(token.IDENT, "field name")
	if err != nil {
		return FieldAssignment{}, err
	}
	field := p.ident(name)

	if p.peek().tok != token.COLON {
		return FieldAssignment{
			Field:     field,
			Value:     ast.NewIdent(field.Name),
			ValuePos:  field.Pos(),
			Code:      field.Name,
			Shorthand: true,
		}, nil
	}
	p.next()

	return p.parseValue(field)
}

// parseValue parses the expression after a colon. The expression extends to
// the next ',' or '}' which is not nested in any brackets.
func (p *dslParser) parseValue(field *ast.Ident) (FieldAssignment, error) {
	start := p.i
	depth := 0

loop:
	for {
		it := p.peek()
		switch it.tok {
		case token.EOF:
			break loop
		case token.COMMA, token.SEMICOLON:
			if depth == 0 {
				break loop
			}
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			if depth == 0 {
				if it.tok == token.RBRACE {
					break loop
				}
				return FieldAssignment{}, p.errorf(it, "unexpected %s", it)
			}
			depth--
		}
		p.next()
	}

	if p.i == start {
		it := p.peek()
		return FieldAssignment{}, p.errorf(it, "expected expression, found %s", it)
	}

	first, last := p.items[start], p.items[p.i-1]
	src := p.src[first.off:last.end]

	fset := token.NewFileSet()
	expr, err := parser.ParseExprFrom(fset, "", src, 0)
	if err != nil {
		if list, ok := err.(scanner.ErrorList); ok && len(list) != 0 {
			at := p.loc(first.off + list[0].Pos.Offset)
			msg := list[0].Msg
			if rest, ok := strings.CutPrefix(msg, "expected 'EOF'"); ok {
				// The value ended but the next assignment did not start
				// with a separator.
				msg = "expected ',' or '}'" + rest
			}
			return FieldAssignment{}, &Error{Pos: at, End: at, Msg: msg}
		}
		return FieldAssignment{}, p.errorf(first, "%s", err.Error())
	}

	var code bytes.Buffer
	if err := format.Node(&code, fset, expr); err != nil {
		return FieldAssignment{}, p.errorf(first, "%s", err.Error())
	}

	return FieldAssignment{
		Field:    field,
		Value:    expr,
		ValuePos: p.loc(first.off),
		Code:     code.String(),
	}, nil
}
