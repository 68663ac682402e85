// Package unicode is the property database (C1): code-point property, case,
// decomposition, composition and grapheme-boundary lookup via a two-stage
// table, as described in spec.md §3/§4.1. Decompositions are stored as
// rune slices on each record rather than in a shared sequence pool.
//
// spec.md §1 explicitly places "the generated static data tables
// themselves" out of scope ("a datum, not an algorithm"); this package is
// the consuming interface a real UCD table generator would target. Its
// backing data is a small, hand-maintained, genuinely-correct subset of
// the Unicode Character Database (ASCII, Latin-1 Supplement, a sample of
// Latin Extended-A/B, combining diacriticals, Greek, and the Hangul
// syllable/jamo blocks) sufficient to exercise every algorithm in §4 — not
// a claim of UCD completeness. See DESIGN.md.
package unicode

// Category is a coarse Unicode General Category grouping, enough to
// distinguish letters, marks, numbers and "unassigned" for the algorithms
// in this repository.
type Category uint8

const (
	CategoryUnassigned Category = iota
	CategoryUppercaseLetter
	CategoryLowercaseLetter
	CategoryTitlecaseLetter
	CategoryOtherLetter
	CategoryNonspacingMark
	CategorySpacingMark
	CategoryEnclosingMark
	CategoryDecimalNumber
	CategoryOtherNumber
	CategoryPunctuation
	CategorySymbol
	CategorySeparator
	CategoryControl
)

// DecompType distinguishes the canonical ("FONT" in spec.md's naming, i.e.
// the unlabeled compatibility-free decomposition type) decomposition used
// by NFD from the wider set of compatibility decompositions used by NFKD.
type DecompType uint8

const (
	DecompNone DecompType = iota
	DecompCanonical
	DecompCompat
)

// GraphemeClass is the UAX #29 extended grapheme cluster boundary class
// (spec.md §4.5).
type GraphemeClass uint8

const (
	GCOther GraphemeClass = iota
	GCCR
	GCLF
	GCControl
	GCExtend
	GCZWJ
	GCRegionalIndicator
	GCPrepend
	GCSpacingMark
	GCL
	GCV
	GCT
	GCLV
	GCLVT
	GCEBase
	GCEModifier
	GCGlueAfterZWJ
	GCEBaseGAZ
)

// Record is the per-code-point property record addressed by the two-stage
// table (spec.md §3 "Code-point record").
type Record struct {
	Category   Category
	CCC        uint8
	DecompType DecompType

	// decompSeq, when non-empty, is this code point's full decomposition.
	// Represented directly as a rune slice rather than a sequence-pool
	// index + sentinel-surrogate encoding: the pool's job (de-duplicating
	// storage for a 140k-entry generated table) isn't useful at this
	// data set's size, and the public contract (DecomposeChar) is
	// unaffected by the storage strategy (see spec.md §9 on legitimate
	// reimplementation latitude).
	decompSeq []rune

	SimpleUpper rune // 0 if none
	SimpleLower rune
	SimpleTitle rune

	// special, when non-nil, names this code point's context-free
	// multi-code-point special case mapping (spec.md §4.3): a single
	// input code point may expand to up to 5 output code points when
	// uppercased/lowercased/titlecased.
	special *specialCase

	Grapheme GraphemeClass

	// FinalSigmaSource marks Greek capital sigma (Σ), whose lowercase
	// mapping is context sensitive (spec.md §4.3): it lowercases to
	// final sigma (ς) only at the end of a cased-letter sequence.
	FinalSigmaSource bool
}

// unassigned is returned for code points with no table entry.
var unassigned = Record{Category: CategoryUnassigned, Grapheme: GCOther}
