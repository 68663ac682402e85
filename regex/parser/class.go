package parser

import "github.com/krokodileglue/glyphre/regex/ast"

var posixClasses = map[string][]ast.Range{
	"upper": {{'A', 'Z'}},
	"lower": {{'a', 'z'}},
	"alpha": {{'A', 'Z'}, {'a', 'z'}},
	"digit": {{'0', '9'}},
	"xdigit": {{'0', '9'}, {'a', 'f'}, {'A', 'F'}},
	"alnum": {{'A', 'Z'}, {'a', 'z'}, {'0', '9'}},
	"punct": {{'!', '/'}, {':', '@'}, {'[', '`'}, {'{', '~'}},
	"blank": {{' ', ' '}, {'\t', '\t'}},
	"space": {{' ', ' '}, {'\t', '\t'}, {'\n', '\n'}, {'\r', '\r'}, {'\f', '\f'}, {'\v', '\v'}},
	"cntrl": {{0, 0x1F}, {0x7F, 0x7F}},
	"graph": {{'!', '~'}},
	"print": {{' ', '~'}},
}

// parseClass parses a '[...]' character class (spec.md §4.6): ranges,
// POSIX classes, negation via a leading '^', and the usual escapes.
func (p *parser) parseClass() *ast.Node {
	p.pos++ // consume '['
	n := &ast.Node{Kind: ast.KClass}
	if !p.atEnd() && p.peek() == '^' {
		n.Negate = true
		p.pos++
	}
	first := true
	for {
		if p.atEnd() {
			return p.fail(SyntaxError, "unterminated character class")
		}
		if p.peek() == ']' && !first {
			p.pos++
			break
		}
		first = false

		if p.peek() == '[' && p.hasNext(1) && p.peekAt(1) == ':' {
			if p.parsePosixClass(n) {
				continue
			}
		}

		lo, ok := p.parseClassAtom(n)
		if !ok {
			continue // atom already added its own range(s) (e.g. \d inside a class)
		}
		hi := lo
		if !p.atEnd() && p.peek() == '-' && p.hasNext(1) && p.peekAt(1) != ']' {
			p.pos++ // consume '-'
			hi2, ok2 := p.parseClassAtom(n)
			if !ok2 {
				// a shorthand class right after '-': treat '-' as literal
				n.Ranges = append(n.Ranges, ast.Range{'-', '-'})
				continue
			}
			hi = hi2
		}
		p.addClassRange(n, lo, hi)
	}
	if len(n.Ranges) == 0 {
		return p.fail(SyntaxError, "empty character class")
	}
	return n
}

func (p *parser) addClassRange(n *ast.Node, lo, hi rune) {
	if p.opts&ast.Insensitive != 0 {
		n.Ranges = append(n.Ranges, ast.Range{lo, hi})
		for c := lo; c <= hi; c++ {
			a, b := foldPair(c)
			if a != b {
				n.Ranges = append(n.Ranges, ast.Range{b, b})
			}
		}
		return
	}
	n.Ranges = append(n.Ranges, ast.Range{lo, hi})
}

// parseClassAtom returns one code point from inside a class, handling
// escapes; ok is false if it expanded a shorthand class (\d, \s, \w, ...)
// directly into n.Ranges instead of returning a single rune.
func (p *parser) parseClassAtom(n *ast.Node) (rune, bool) {
	if p.peek() != '\\' {
		return p.advance(), true
	}
	p.pos++
	if p.atEnd() {
		p.fail(SyntaxError, "trailing backslash in class")
		return 0, true
	}
	c := p.advance()
	switch c {
	case 'd':
		n.Ranges = append(n.Ranges, ast.Range{'0', '9'})
		return 0, false
	case 'w':
		n.Ranges = append(n.Ranges, ast.Range{'a', 'z'}, ast.Range{'A', 'Z'}, ast.Range{'0', '9'}, ast.Range{'_', '_'})
		return 0, false
	case 's':
		n.Ranges = append(n.Ranges, ast.Range{' ', ' '}, ast.Range{'\t', '\t'}, ast.Range{'\n', '\n'}, ast.Range{'\r', '\r'}, ast.Range{'\f', '\f'}, ast.Range{'\v', '\v'})
		return 0, false
	case 'a':
		return '\a', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case 'e':
		return 0x1B, true
	case 'x':
		node := p.parseHexEscape()
		if node == nil {
			return 0, true
		}
		return node.Literal, true
	default:
		return c, true
	}
}

func (p *parser) parsePosixClass(n *ast.Node) bool {
	save := p.pos
	p.pos += 2 // "[:"
	start := p.pos
	for !p.atEnd() && p.peek() != ':' {
		p.pos++
	}
	name := string(p.src[start:p.pos])
	if p.atEnd() || !p.hasNext(1) || p.peek() != ':' || p.peekAt(1) != ']' {
		p.pos = save
		return false
	}
	ranges, ok := posixClasses[name]
	if !ok {
		p.pos = save
		return false
	}
	p.pos += 2 // ":]"
	n.Ranges = append(n.Ranges, ranges...)
	return true
}
