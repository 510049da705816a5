package descriptor

import (
	"errors"
	"fmt"
)

// ErrBadTypeExpr is returned for a type expression that cannot be parsed.
var ErrBadTypeExpr = errors.New("bad type expression")

// ParseType parses a C#-style type expression such as
// "System.Collections.Generic.Dictionary<System.String, System.Int32>".
// Whitespace between tokens is ignored.
func ParseType(expr string) (Type, error) {
	p := &typeParser{src: expr}

	t, err := p.parseType()
	if err != nil {
		return Type{}, fmt.Errorf("%w %q: %w", ErrBadTypeExpr, expr, err)
	}

	p.skipSpace()

	if p.pos != len(p.src) {
		return Type{}, fmt.Errorf("%w %q: unexpected %q at offset %d", ErrBadTypeExpr, expr, p.src[p.pos:], p.pos)
	}

	return t, nil
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) parseType() (Type, error) {
	p.skipSpace()

	start := p.pos
	for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
		p.pos++
	}

	if start == p.pos {
		return Type{}, fmt.Errorf("expected type name at offset %d", p.pos)
	}

	t := NewType(p.src[start:p.pos])

	p.skipSpace()

	if p.peek() != '<' {
		return t, nil
	}

	p.pos++
	t.Generic = true

	for {
		arg, err := p.parseType()
		if err != nil {
			return Type{}, err
		}

		t.Args = append(t.Args, arg)

		p.skipSpace()

		switch p.peek() {
		case ',':
			p.pos++
		case '>':
			p.pos++

			return t, nil
		default:
			return Type{}, fmt.Errorf("expected ',' or '>' at offset %d", p.pos)
		}
	}
}

func (p *typeParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}

	return p.src[p.pos]
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// isNameByte accepts identifier bytes plus the separators that appear in
// CLR full names ('.', '+', '`') and array brackets.
func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '.', c == '+', c == '`', c == '[', c == ']':
		return true
	default:
		return c >= 0x80
	}
}
