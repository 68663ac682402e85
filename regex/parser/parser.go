// Package parser implements the regex parser (C6): a recursive-descent
// parser over KTRE syntax producing a regex/ast.Program. KTRE syntax
// (backreferences, lookaround, recursion, subroutine calls, branch-reset)
// has no equivalent in Go's stdlib regexp/syntax package, so this parser
// is grounded directly on original_source/src/ktre.c's grammar rather than
// adapted from any Go regex parser in the retrieved examples.
package parser

import (
	"fmt"
	"strconv"

	"github.com/krokodileglue/glyphre/regex/ast"
)

// MaxGroups is the hard cap on capturing groups (spec.md §6).
const MaxGroups = 100

type parser struct {
	src          []rune
	pos          int
	groups       []*ast.Group
	groupsByName map[string]int
	opts         ast.Options
	err          *Error
}

// Parse parses pattern under the given initial option bits, producing the
// AST and the possibly-modified option set (inline top-level modifiers
// like leading (?i) affect Program.Options).
func Parse(pattern string, opts ast.Options) (*ast.Program, *Error) {
	p := &parser{
		src:          []rune(pattern),
		groups:       []*ast.Group{nil}, // index 0 unused
		groupsByName: map[string]int{},
		opts:         opts,
	}
	root := p.parseAlt()
	if p.err != nil {
		return nil, p.err
	}
	if !p.atEnd() {
		if p.peek() == ')' {
			p.fail(SyntaxError, "unmatched )")
		} else {
			p.fail(SyntaxError, "unexpected trailing input")
		}
		return nil, p.err
	}
	return &ast.Program{Root: root, Groups: p.groups, Options: p.opts}, nil
}

func (p *parser) atEnd() bool        { return p.pos >= len(p.src) }
func (p *parser) peek() rune         { return p.src[p.pos] }
func (p *parser) peekAt(n int) rune  { return p.src[p.pos+n] }
func (p *parser) advance() rune      { c := p.src[p.pos]; p.pos++; return c }
func (p *parser) hasNext(n int) bool { return p.pos+n < len(p.src) }

func (p *parser) fail(kind ErrKind, format string, args ...any) *ast.Node {
	if p.err == nil {
		p.err = &Error{Kind: kind, Loc: p.pos, Msg: fmt.Sprintf(format, args...)}
	}
	return nil
}

// skipExtended consumes whitespace and #-comments when Extended mode is
// active; a no-op otherwise (spec.md §4.6).
func (p *parser) skipExtended() {
	if p.opts&ast.Extended == 0 {
		return
	}
	for !p.atEnd() {
		c := p.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == '#':
			for !p.atEnd() && p.peek() != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

// parseAlt handles alternation, the lowest-precedence level.
func (p *parser) parseAlt() *ast.Node {
	first := p.parseSequence()
	if p.err != nil {
		return nil
	}
	if p.atEnd() || p.peek() != '|' {
		return first
	}
	alts := []*ast.Node{first}
	for !p.atEnd() && p.peek() == '|' {
		p.pos++
		n := p.parseSequence()
		if p.err != nil {
			return nil
		}
		alts = append(alts, n)
	}
	return &ast.Node{Kind: ast.KAlt, Children: alts}
}

// parseSequence handles concatenation until '|', ')', or end of input.
func (p *parser) parseSequence() *ast.Node {
	var seq []*ast.Node
	for {
		p.skipExtended()
		if p.atEnd() || p.peek() == '|' || p.peek() == ')' {
			break
		}
		n := p.parseQuantified()
		if p.err != nil {
			return nil
		}
		if n != nil {
			seq = append(seq, n)
		}
	}
	if len(seq) == 1 {
		return seq[0]
	}
	return &ast.Node{Kind: ast.KSequence, Children: seq}
}

// iteratable reports whether n is a valid quantifier target; option
// setters and zero-width assertions that make no sense repeated are
// rejected at parse time (spec.md §4.6).
func iteratable(n *ast.Node) bool {
	switch n.Kind {
	case ast.KSetOption, ast.KSetStart:
		return false
	default:
		return true
	}
}

func (p *parser) parseQuantified() *ast.Node {
	atom := p.parsePrimary()
	if p.err != nil {
		return nil
	}
	if atom == nil {
		return nil
	}
	for {
		p.skipExtended()
		if p.atEnd() {
			return atom
		}
		var kind ast.Kind
		min, max := 0, 0
		switch p.peek() {
		case '*':
			kind, min, max = ast.KStar, 0, -1
			p.pos++
		case '+':
			kind, min, max = ast.KPlus, 1, -1
			p.pos++
		case '?':
			kind, min, max = ast.KQuest, 0, 1
			p.pos++
		case '{':
			save := p.pos
			ok, m, n := p.tryParseCountedBounds()
			if !ok {
				p.pos = save
				return atom
			}
			min, max = m, n
			kind = ast.KCounted
		default:
			return atom
		}
		if !iteratable(atom) {
			return p.fail(SyntaxError, "cannot quantify this expression")
		}
		switch kind {
		case ast.KCounted:
			atom = &ast.Node{Kind: ast.KCounted, Child: atom, Min: min, Max: max, Greedy: true}
		default:
			atom = &ast.Node{Kind: kind, Child: atom, Greedy: true}
		}
	}
}

// tryParseCountedBounds parses "{m}", "{m,}", or "{m,n}" at the cursor
// (which must be at '{'). Returns ok=false, leaving the cursor
// unspecified, if the braces don't form a valid counted-repetition (in
// which case '{' is treated as a literal by the caller after rewinding).
func (p *parser) tryParseCountedBounds() (ok bool, min, max int) {
	p.pos++ // consume '{'
	start := p.pos
	for !p.atEnd() && p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
	}
	if p.pos == start {
		return false, 0, 0
	}
	m, _ := strconv.Atoi(string(p.src[start:p.pos]))
	if p.atEnd() {
		return false, 0, 0
	}
	if p.peek() == '}' {
		p.pos++
		return true, m, m
	}
	if p.peek() != ',' {
		return false, 0, 0
	}
	p.pos++
	start = p.pos
	for !p.atEnd() && p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
	}
	if p.atEnd() || p.peek() != '}' {
		return false, 0, 0
	}
	if p.pos == start {
		p.pos++
		return true, m, -1
	}
	n, _ := strconv.Atoi(string(p.src[start:p.pos]))
	p.pos++
	return true, m, n
}
