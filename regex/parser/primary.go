package parser

import (
	"strconv"

	"github.com/krokodileglue/glyphre/regex/ast"
)

func (p *parser) parsePrimary() *ast.Node {
	p.skipExtended()
	if p.atEnd() {
		return nil
	}

	switch c := p.peek(); c {
	case '(':
		return p.parseGroup()
	case '.':
		p.pos++
		if p.opts&ast.Multiline != 0 {
			return &ast.Node{Kind: ast.KMultiAny}
		}
		return &ast.Node{Kind: ast.KAny}
	case '^':
		p.pos++
		return &ast.Node{Kind: ast.KBOL}
	case '$':
		p.pos++
		return &ast.Node{Kind: ast.KEOL}
	case '[':
		return p.parseClass()
	case '\\':
		return p.parseEscape()
	case '*', '+', '?':
		return p.fail(SyntaxError, "quantifier with nothing to repeat")
	case '{':
		// Only a quantifier target if it parses as one; as a primary
		// position, '{' with no preceding atom is always literal.
		p.pos++
		return &ast.Node{Kind: ast.KLiteral, Literal: c}
	default:
		p.pos++
		return p.literalNode(c)
	}
}

// literalNode builds a literal-match node. Under case-insensitive mode, a
// cased letter is represented as a small class of both cases, per
// spec.md §4.6 ("case-aware" character handling): "every letter added ...
// is paired with its opposite case."
func (p *parser) literalNode(c rune) *ast.Node {
	if p.opts&ast.Insensitive != 0 {
		lo, hi := foldPair(c)
		if lo != hi {
			return &ast.Node{Kind: ast.KClass, Ranges: []ast.Range{{lo, lo}, {hi, hi}}}
		}
	}
	return &ast.Node{Kind: ast.KLiteral, Literal: c}
}

func foldPair(c rune) (rune, rune) {
	switch {
	case c >= 'a' && c <= 'z':
		return c, c-32
	case c >= 'A' && c <= 'Z':
		return c, c+32
	default:
		return c, c
	}
}

func (p *parser) parseEscape() *ast.Node {
	p.pos++ // consume backslash
	if p.atEnd() {
		return p.fail(SyntaxError, "trailing backslash")
	}
	c := p.advance()
	switch c {
	case 'A':
		return &ast.Node{Kind: ast.KBOS}
	case 'Z':
		return &ast.Node{Kind: ast.KEOS}
	case 'b':
		return &ast.Node{Kind: ast.KWordBoundary}
	case 'B':
		return &ast.Node{Kind: ast.KNotWordBoundary}
	case 'd':
		return &ast.Node{Kind: ast.KDigit}
	case 'D':
		return &ast.Node{Kind: ast.KNotDigit}
	case 'w':
		return &ast.Node{Kind: ast.KWord}
	case 'W':
		return &ast.Node{Kind: ast.KNotWord}
	case 's':
		return &ast.Node{Kind: ast.KSpace}
	case 'S':
		return &ast.Node{Kind: ast.KNotSpace}
	case 'h':
		return &ast.Node{Kind: ast.KHSpace}
	case 'H':
		return &ast.Node{Kind: ast.KNotHSpace}
	case 'N':
		return &ast.Node{Kind: ast.KNotNewline}
	case 'K':
		return &ast.Node{Kind: ast.KSetStart}
	case 'Q':
		return p.parseLiteralSpan()
	case 'k':
		return p.parseNamedBackref()
	case 'a':
		return &ast.Node{Kind: ast.KLiteral, Literal: '\a'}
	case 'f':
		return &ast.Node{Kind: ast.KLiteral, Literal: '\f'}
	case 'n':
		return &ast.Node{Kind: ast.KLiteral, Literal: '\n'}
	case 't':
		return &ast.Node{Kind: ast.KLiteral, Literal: '\t'}
	case 'r':
		return &ast.Node{Kind: ast.KLiteral, Literal: '\r'}
	case 'e':
		return &ast.Node{Kind: ast.KLiteral, Literal: 0x1B}
	case 'x':
		return p.parseHexEscape()
	case 'o':
		return p.parseOctalBraceEscape()
	case '0':
		return p.parseOctalZeroEscape()
	default:
		if c >= '1' && c <= '9' {
			return p.parseNumericBackref(c)
		}
		return p.literalNode(c)
	}
}

func (p *parser) parseLiteralSpan() *ast.Node {
	var seq []*ast.Node
	for !p.atEnd() {
		if p.peek() == '\\' && p.hasNext(1) && p.peekAt(1) == 'E' {
			p.pos += 2
			if len(seq) == 1 {
				return seq[0]
			}
			return &ast.Node{Kind: ast.KSequence, Children: seq}
		}
		seq = append(seq, p.literalNode(p.advance()))
	}
	if len(seq) == 1 {
		return seq[0]
	}
	return &ast.Node{Kind: ast.KSequence, Children: seq}
}

func (p *parser) parseHexEscape() *ast.Node {
	if !p.atEnd() && p.peek() == '{' {
		p.pos++
		start := p.pos
		for !p.atEnd() && p.peek() != '}' {
			p.pos++
		}
		if p.atEnd() {
			return p.fail(SyntaxError, "unterminated \\x{...}")
		}
		v, err := strconv.ParseInt(string(p.src[start:p.pos]), 16, 32)
		p.pos++ // consume '}'
		if err != nil {
			return p.fail(SyntaxError, "invalid hex escape")
		}
		return &ast.Node{Kind: ast.KLiteral, Literal: rune(v)}
	}
	n := 0
	start := p.pos
	for n < 2 && !p.atEnd() && isHexDigit(p.peek()) {
		p.pos++
		n++
	}
	if n == 0 {
		return &ast.Node{Kind: ast.KLiteral, Literal: 'x'}
	}
	v, _ := strconv.ParseInt(string(p.src[start:p.pos]), 16, 32)
	return &ast.Node{Kind: ast.KLiteral, Literal: rune(v)}
}

func (p *parser) parseOctalBraceEscape() *ast.Node {
	if p.atEnd() || p.peek() != '{' {
		return &ast.Node{Kind: ast.KLiteral, Literal: 'o'}
	}
	p.pos++
	start := p.pos
	for !p.atEnd() && p.peek() != '}' {
		p.pos++
	}
	if p.atEnd() {
		return p.fail(SyntaxError, "unterminated \\o{...}")
	}
	v, err := strconv.ParseInt(string(p.src[start:p.pos]), 8, 32)
	p.pos++
	if err != nil {
		return p.fail(SyntaxError, "invalid octal escape")
	}
	return &ast.Node{Kind: ast.KLiteral, Literal: rune(v)}
}

// parseOctalZeroEscape handles \0OO: per spec.md §9, \0 with no further
// octal digits is explicitly the NUL code point, never group 0 (group 0
// is always a syntax error as a backreference).
func (p *parser) parseOctalZeroEscape() *ast.Node {
	start := p.pos
	n := 0
	for n < 2 && !p.atEnd() && p.peek() >= '0' && p.peek() <= '7' {
		p.pos++
		n++
	}
	if n == 0 {
		return &ast.Node{Kind: ast.KLiteral, Literal: 0}
	}
	v, _ := strconv.ParseInt(string(p.src[start:p.pos]), 8, 32)
	return &ast.Node{Kind: ast.KLiteral, Literal: rune(v)}
}

func (p *parser) parseNumericBackref(first rune) *ast.Node {
	start := p.pos - 1
	for !p.atEnd() && p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
	}
	n, _ := strconv.Atoi(string(p.src[start:p.pos]))
	return p.backrefNode(n)
}

func (p *parser) backrefNode(n int) *ast.Node {
	if n <= 0 {
		return p.fail(SyntaxError, "invalid backreference: group 0")
	}
	if n >= len(p.groups) {
		return p.fail(SyntaxError, "invalid backreference: no such group %d", n)
	}
	return &ast.Node{Kind: ast.KBackref, GroupNum: n}
}

func (p *parser) parseNamedBackref() *ast.Node {
	if p.atEnd() {
		return p.fail(SyntaxError, "incomplete \\k escape")
	}
	var closer rune
	switch p.peek() {
	case '<':
		closer = '>'
	case '\'':
		closer = '\''
	default:
		return p.fail(SyntaxError, "invalid \\k escape")
	}
	p.pos++
	start := p.pos
	for !p.atEnd() && p.peek() != closer {
		p.pos++
	}
	if p.atEnd() {
		return p.fail(SyntaxError, "unterminated \\k escape")
	}
	name := string(p.src[start:p.pos])
	p.pos++
	num, ok := p.groupsByName[name]
	if !ok {
		return p.fail(SyntaxError, "unknown group name %q", name)
	}
	return &ast.Node{Kind: ast.KNamedBackref, GroupName: name, GroupNum: num}
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
