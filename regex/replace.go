package regex

import (
	"strconv"

	"github.com/krokodileglue/glyphre/regex/vm"
)

func itoa(n int) string { return strconv.Itoa(n) }

// ReplaceAllString matches pattern globally against s and returns s with
// each match replaced by template, per spec.md §4.9. Between matches the
// original subject text is copied unchanged. Inside template, a token
// starting with '$' followed by decimal digits names a capture group
// (`$0` is the whole match); `${name}` names a capture group by name.
// The case-shift metacharacters `\U`, `\L`, `\E`, `\u`, `\l` behave as in
// Perl: `\U`/`\L` upper/lower-case everything up to the next `\E` (or the
// template's end); `\u`/`\l` affect only the next character. Case-shift
// state resets at the start of each match's expansion.
func (r *Regex) ReplaceAllString(s, template string) string {
	return r.replace(s, template, '$')
}

// FilterString is ReplaceAllString with the indicator fixed to '$' (spec.md
// §4.9's "filter is replace with indicator = \"$\"").
func (r *Regex) FilterString(s, template string) string {
	return r.replace(s, template, '$')
}

func (r *Regex) replace(s, template string, indicator rune) string {
	cps := []rune(s)
	matches := r.execAll(cps, 0, -1)
	if len(matches) == 0 {
		return s
	}

	var out []rune
	last := 0
	for _, m := range matches {
		start, length := m[0], m[1]
		out = append(out, cps[last:start]...)
		out = append(out, expandTemplate(cps, m, template, indicator, r.prog.Names)...)
		last = start + length
	}
	out = append(out, cps[last:]...)
	return string(out)
}

// caseShift is the per-match case-shift state for template expansion.
type caseShift int

const (
	shiftNone caseShift = iota
	shiftUpperAll
	shiftLowerAll
)

// expandTemplate renders template against one match's capture vector. names
// maps group name to group number, for "${name}" references.
func expandTemplate(subject []rune, m vm.Match, template string, indicator rune, names map[string]int) []rune {
	var out []rune
	mode := shiftNone
	oneShot := caseShift(shiftNone)

	applyShift := func(r rune) rune {
		switch {
		case oneShot == shiftUpperAll:
			oneShot = shiftNone
			return toUpperASCII(r)
		case oneShot == shiftLowerAll:
			oneShot = shiftNone
			return toLowerASCII(r)
		case mode == shiftUpperAll:
			return toUpperASCII(r)
		case mode == shiftLowerAll:
			return toLowerASCII(r)
		default:
			return r
		}
	}

	tpl := []rune(template)
	for i := 0; i < len(tpl); i++ {
		c := tpl[i]
		if c == '\\' && i+1 < len(tpl) {
			switch tpl[i+1] {
			case 'U':
				mode = shiftUpperAll
				i++
				continue
			case 'L':
				mode = shiftLowerAll
				i++
				continue
			case 'E':
				mode = shiftNone
				i++
				continue
			case 'u':
				oneShot = shiftUpperAll
				i++
				continue
			case 'l':
				oneShot = shiftLowerAll
				i++
				continue
			}
		}
		if c == indicator && i+1 < len(tpl) {
			if tpl[i+1] == '{' {
				end := i + 2
				for end < len(tpl) && tpl[end] != '}' {
					end++
				}
				if end < len(tpl) {
					name := string(tpl[i+2 : end])
					ref := name
					if idx, ok := names[name]; ok {
						ref = itoa(idx)
					}
					if text, ok := groupText(subject, m, ref); ok {
						for _, r := range text {
							out = append(out, applyShift(r))
						}
						i = end
						continue
					}
				}
			}
			if tpl[i+1] >= '0' && tpl[i+1] <= '9' {
				j := i + 1
				for j < len(tpl) && tpl[j] >= '0' && tpl[j] <= '9' {
					j++
				}
				if text, ok := groupText(subject, m, string(tpl[i+1:j])); ok {
					for _, r := range text {
						out = append(out, applyShift(r))
					}
					i = j - 1
					continue
				}
			}
		}
		out = append(out, applyShift(c))
	}
	return out
}

func groupText(subject []rune, m vm.Match, numOrName string) (string, bool) {
	n := 0
	for _, c := range numOrName {
		if c < '0' || c > '9' {
			return "", false
		}
		n = n*10 + int(c-'0')
	}
	if 2*n+1 >= len(m) {
		return "", false
	}
	start, length := m[2*n], m[2*n+1]
	if start < 0 {
		return "", true
	}
	return string(subject[start : start+length]), true
}

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 32
	}
	return r
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 32
	}
	return r
}

// SplitString returns the segments of s between consecutive matches of
// the pattern, skipping zero-width matches at position 0 or at the end
// of the subject (spec.md §4.9).
func (r *Regex) SplitString(s string) []string {
	cps := []rune(s)
	matches := r.execAll(cps, 0, -1)
	if len(matches) == 0 {
		return []string{s}
	}

	var out []string
	last := 0
	for _, m := range matches {
		start, length := m[0], m[1]
		if length == 0 && (start == 0 || start == len(cps)) {
			continue
		}
		out = append(out, string(cps[last:start]))
		last = start + length
	}
	out = append(out, string(cps[last:]))
	return out
}
