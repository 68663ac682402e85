// Package ast is the regex data model (C6): the parser's output shape —
// AST node kinds, the group table, and the option bits the parser and
// compiler share — grounded on spec.md §3 and struct group in
// original_source/include/ktre.h.
package ast

// Kind discriminates a Node's variant.
type Kind int

const (
	KLiteral   Kind = iota // single literal rune, case-folded pair already expanded by parser
	KAny                   // . outside /m
	KMultiAny              // . under /m (matches newline too)
	KNotNewline            // \N
	KBOL
	KEOL
	KBOS
	KEOS
	KWordBoundary
	KNotWordBoundary
	KDigit
	KNotDigit
	KWord
	KNotWord
	KSpace
	KNotSpace
	KHSpace
	KNotHSpace
	KClass     // character class; Ranges/Set populated, Negate honored
	KSequence  // Children in order
	KAlt       // Children are alternatives, tried left to right
	KStar      // Child repeated 0+; Greedy
	KPlus      // Child repeated 1+; Greedy
	KQuest     // Child 0 or 1; Greedy
	KCounted   // Child repeated [Min,Max]; Max == -1 means unbounded
	KGroup     // capturing or non-capturing group; GroupNum == 0 means non-capturing
	KAtomic    // (?>...)
	KLookahead // (?=...) / (?!...) ; Negate
	KLookbehind
	KBackref    // numbered group backreference
	KNamedBackref
	KSubroutine // (?n), (?+n), (?-n); GroupNum is the resolved absolute target, 0 for whole-pattern recursion
	KBranchReset
	KSetOption // (?imx) / (?imx:...) ; inline-only if Child != nil
	KSetStart  // \K
)

// Range is an inclusive rune range inside a character class.
type Range struct{ Lo, Hi rune }

// Node is one AST node. Only the fields relevant to Kind are populated;
// unused fields stay zero.
type Node struct {
	Kind Kind

	Literal rune

	Ranges []Range
	Negate bool

	Children []*Node
	Child    *Node

	Greedy   bool
	Min, Max int // KCounted bounds; Max == -1 means unbounded

	GroupNum  int // 1-based; 0 for non-capturing
	GroupName string

	Offset int // byte offset into the pattern source, for error locations
}

// Group is one entry in the parser's group table.
type Group struct {
	Num      int
	Name     string // empty if unnamed
	Body     *Node  // the group's child node
	Called   bool   // referenced via a subroutine call or recursion
	Compiled bool   // lowering has assigned it a bytecode address
	Addr     int    // bytecode address of its body, once compiled
}

// Options are the parser/compiler/VM shared flag bits (spec.md §6).
type Options uint32

const (
	Insensitive Options = 1 << iota
	Unanchored
	Extended
	Global
	Multiline
	Continue
)

// Program is the parser's complete output: the root node, the group table
// indexed 1..N, and the option bits set by top-level inline modifiers.
type Program struct {
	Root    *Node
	Groups  []*Group // Groups[0] unused; Groups[i] is group i
	Options Options
}

// NumGroups returns the number of capturing groups (excluding group 0, the
// whole match).
func (p *Program) NumGroups() int { return len(p.Groups) - 1 }
