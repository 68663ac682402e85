package vm

import "github.com/krokodileglue/glyphre/regex/compiler"

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isWord(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c)
}

func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func isHSpace(c rune) bool {
	switch c {
	case ' ', '\t':
		return true
	default:
		return false
	}
}

func toLower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + 32
	}
	return c
}

func inRanges(c rune, ranges []compiler.Range) bool {
	for _, r := range ranges {
		if c >= r.Lo && c <= r.Hi {
			return true
		}
	}
	return false
}
