// Package regex provides a backtracking regular expression engine over
// Unicode code points.
//
// Syntax is Perl-compatible: character classes, named and numbered
// capture groups, backreferences, lookaround, atomic groups, and
// subroutine calls (including whole-pattern recursion). Matching is
// guaranteed-correct backtracking rather than the automaton-based,
// ReDoS-safe matching of stdlib regexp, in exchange for supporting the
// backreference and lookaround constructs stdlib regexp cannot express.
//
// Basic usage:
//
//	re, err := regex.Compile(`(\w+)@(\w+)\.(\w+)`, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("user@example.com") {
//	    fmt.Println("matched!")
//	}
package regex

import (
	"github.com/coregx/ahocorasick"

	"github.com/krokodileglue/glyphre/regex/ast"
	"github.com/krokodileglue/glyphre/regex/compiler"
	"github.com/krokodileglue/glyphre/regex/parser"
	"github.com/krokodileglue/glyphre/regex/vm"
)

// Option is one of the inline/compile-time flag bits (spec.md §6).
type Option = ast.Options

const (
	Insensitive = ast.Insensitive
	Unanchored  = ast.Unanchored
	Extended    = ast.Extended
	Global      = ast.Global
	Multiline   = ast.Multiline
	Continue    = ast.Continue
)

// Regex is a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines: Exec
// allocates a fresh thread stack per call and never mutates the compiled
// Program.
type Regex struct {
	pattern   string
	ast       *ast.Program
	prog      *compiler.Program
	opt       ast.Options
	prefilter *ahocorasick.Automaton // literal fast-reject path, nil if no literal prefix found
}

// Compile compiles a pattern with the given option bits.
//
// Example:
//
//	re, err := regex.Compile(`\d{3}-\d{4}`, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string, opt Option) (*Regex, error) {
	if opt&Global != 0 && opt&Continue != 0 {
		return nil, &Error{Kind: ErrInvalidOptions, Msg: "GLOBAL and CONTINUE are mutually exclusive"}
	}
	if opt&Global != 0 {
		opt |= Unanchored
	}

	p, perr := parser.Parse(pattern, opt)
	if perr != nil {
		kind := ErrSyntax
		if perr.Kind == parser.TooManyGroups {
			kind = ErrTooManyGroups
		}
		return nil, &Error{Kind: kind, Msg: perr.Msg, Loc: perr.Loc}
	}
	p.Options |= opt

	prog := compiler.Compile(p)

	r := &Regex{pattern: pattern, ast: p, prog: prog, opt: p.Options}
	r.prefilter = buildPrefilter(p.Root)
	return r, nil
}

// MustCompile compiles a pattern and panics if it fails.
//
// Example:
//
//	var emailRegex = regex.MustCompile(`[a-z]+@[a-z]+\.[a-z]+`, 0)
func MustCompile(pattern string, opt Option) *Regex {
	re, err := Compile(pattern, opt)
	if err != nil {
		panic("regex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// buildPrefilter extracts a single required literal run from the front of
// the pattern, if one exists, and builds an Aho-Corasick automaton over it
// so Exec can reject non-matching subjects without running the VM at all
// (SPEC_FULL.md's domain-stack prefilter wiring).
func buildPrefilter(n *ast.Node) *ahocorasick.Automaton {
	lit := leadingLiteralRun(n)
	if len(lit) < 2 {
		return nil
	}
	b := ahocorasick.NewBuilder()
	b.AddPattern([]byte(string(lit)))
	auto, err := b.Build()
	if err != nil {
		return nil
	}
	return auto
}

// leadingLiteralRun walks the required prefix of a sequence, collecting
// consecutive literal runes, and stops at the first node that could match
// a variable or zero-width span.
func leadingLiteralRun(n *ast.Node) []rune {
	if n == nil {
		return nil
	}
	var out []rune
	switch n.Kind {
	case ast.KLiteral:
		out = append(out, n.Literal)
	case ast.KSequence:
		for _, ch := range n.Children {
			if ch.Kind != ast.KLiteral {
				break
			}
			out = append(out, ch.Literal)
		}
	}
	return out
}

// Copy returns a copy of r that shares no mutable state with it. Since a
// Regex holds no mutable fields, Copy is provided only for API symmetry
// with stdlib regexp and returns a shallow copy.
func (r *Regex) Copy() *Regex {
	cp := *r
	return &cp
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string { return r.pattern }

// NumSubexp returns the number of parenthesized capture groups (not
// counting group 0, the whole match).
func (r *Regex) NumSubexp() int { return r.prog.NumGroups }

// SubexpNames returns the names of the capture groups, indexed by group
// number; SubexpNames()[0] is always empty, and unnamed groups are empty
// strings.
func (r *Regex) SubexpNames() []string {
	names := make([]string, r.prog.NumGroups+1)
	for name, idx := range r.prog.Names {
		if idx < len(names) {
			names[idx] = name
		}
	}
	return names
}

// execAt runs the VM over subject starting at from; when Unanchored is set
// it retries at each later code point, returning the first match found,
// otherwise it tries from alone. It returns nil if nothing matched.
func (r *Regex) execAt(subject []rune, from int) vm.Match {
	if r.prefilter != nil && !r.prefilter.IsMatch([]byte(string(subject[from:]))) {
		return nil
	}
	opt := r.opt
	for start := from; start <= len(subject); start++ {
		res := vm.Exec(r.prog, opt&^ast.Global, subject, start)
		if res.Err != vm.ErrNone {
			return nil
		}
		if len(res.Matches) > 0 {
			return res.Matches[0]
		}
		if opt&ast.Unanchored == 0 {
			break
		}
	}
	return nil
}

// execAll runs the VM in GLOBAL mode, returning every non-overlapping
// match from the given start point.
func (r *Regex) execAll(subject []rune, from int, n int) []vm.Match {
	opt := r.opt | ast.Global
	res := vm.Exec(r.prog, opt, subject, from)
	if res.Err != vm.ErrNone {
		return nil
	}
	if n > 0 && len(res.Matches) > n {
		return res.Matches[:n]
	}
	return res.Matches
}

// MatchString reports whether the pattern matches s: at the start of s,
// or anywhere in s when compiled with Unanchored.
func (r *Regex) MatchString(s string) bool {
	return r.execAt([]rune(s), 0) != nil
}

// Match reports whether the pattern matches subject: at its start, or
// anywhere in it when compiled with Unanchored.
func (r *Regex) Match(subject []rune) bool {
	return r.execAt(subject, 0) != nil
}

// FindString returns the text of the leftmost match, or "" if none.
func (r *Regex) FindString(s string) string {
	cps := []rune(s)
	m := r.execAt(cps, 0)
	if m == nil {
		return ""
	}
	return string(cps[m[0] : m[0]+m[1]])
}

// FindStringIndex returns the [start, end) code-point offsets of the
// leftmost match, or nil if none.
func (r *Regex) FindStringIndex(s string) []int {
	m := r.execAt([]rune(s), 0)
	if m == nil {
		return nil
	}
	return []int{m[0], m[0] + m[1]}
}

// FindStringSubmatch returns the leftmost match and its capture groups.
// Result[0] is the whole match; result[i] is group i, or "" if the group
// didn't participate.
func (r *Regex) FindStringSubmatch(s string) []string {
	cps := []rune(s)
	m := r.execAt(cps, 0)
	if m == nil {
		return nil
	}
	return groupStrings(cps, m)
}

// FindStringSubmatchIndex returns the [start, end) code-point offsets for
// the leftmost match and its capture groups; unmatched groups are [-1,-1].
func (r *Regex) FindStringSubmatchIndex(s string) []int {
	m := r.execAt([]rune(s), 0)
	if m == nil {
		return nil
	}
	return groupIndices(m)
}

// FindAllString returns all successive, non-overlapping matches. If n >=
// 0, at most n matches are returned; n < 0 means unlimited.
func (r *Regex) FindAllString(s string, n int) []string {
	cps := []rune(s)
	ms := r.execAll(cps, 0, n)
	if len(ms) == 0 {
		return nil
	}
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = string(cps[m[0] : m[0]+m[1]])
	}
	return out
}

// FindAllStringSubmatch returns all successive, non-overlapping matches
// together with their capture groups.
func (r *Regex) FindAllStringSubmatch(s string, n int) [][]string {
	cps := []rune(s)
	ms := r.execAll(cps, 0, n)
	if len(ms) == 0 {
		return nil
	}
	out := make([][]string, len(ms))
	for i, m := range ms {
		out[i] = groupStrings(cps, m)
	}
	return out
}

// FindAllStringIndex returns all successive, non-overlapping matches'
// [start, end) code-point offsets.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	ms := r.execAll([]rune(s), 0, n)
	if len(ms) == 0 {
		return nil
	}
	out := make([][]int, len(ms))
	for i, m := range ms {
		out[i] = []int{m[0], m[0] + m[1]}
	}
	return out
}

func groupStrings(cps []rune, m vm.Match) []string {
	out := make([]string, len(m)/2)
	for i := range out {
		start, length := m[2*i], m[2*i+1]
		if start < 0 {
			continue
		}
		out[i] = string(cps[start : start+length])
	}
	return out
}

func groupIndices(m vm.Match) []int {
	out := make([]int, len(m))
	for i := 0; i < len(m); i += 2 {
		if m[i] < 0 {
			out[i], out[i+1] = -1, -1
			continue
		}
		out[i] = m[i]
		out[i+1] = m[i] + m[i+1]
	}
	return out
}
