package unicode

// specialCase holds a context-free multi-code-point case mapping for one
// source code point (spec.md §4.3: "a record... for context-free
// special-case multi-code-point mappings").
type specialCase struct {
	upper []rune
	lower []rune
	title []rune
}

// Locale selects a locale-sensitive case mapping variant (spec.md §4.3:
// "Turkish dotted/dotless I"; grounded on original_source/src/case.c).
type Locale int

const (
	LocaleNone Locale = iota
	LocaleTurkish
	LocaleLithuanian
)

// LocaleAzeri uses the same dotted/dotless I rules as Turkish.
const LocaleAzeri = LocaleTurkish

// CaseContext carries the information a context-sensitive case mapping
// needs beyond the code point itself: the target locale, whether Greek
// capital sigma is at the end of a cased-letter run (for final sigma),
// and whether a Lithuanian capital I/J is immediately followed by a
// combining mark with CCC "above" (for the dot-above insertion rule).
type CaseContext struct {
	Locale          Locale
	FinalSigma      bool
	FollowedByAbove bool
}

// UpperFull returns the full uppercase mapping of cp: a locale override
// if one applies, else the context-free special case, else the simple
// mapping, else cp unchanged. The result may hold more than one code
// point (spec.md §4.3: "up to 5").
func UpperFull(cp rune, ctx CaseContext) []rune {
	if ctx.Locale == LocaleTurkish {
		switch cp {
		case 'i':
			return []rune{0x0130} // İ
		case 0x0131: // ı -> I
			return []rune{'I'}
		}
	}

	rec := Lookup(cp)
	if rec.special != nil && rec.special.upper != nil {
		return rec.special.upper
	}
	if rec.SimpleUpper != 0 {
		return []rune{rec.SimpleUpper}
	}
	return []rune{cp}
}

// LowerFull returns the full lowercase mapping of cp, applying locale
// overrides, then the Lithuanian dot-above insertion rule, then Greek
// final-sigma context, then the context-free special case, then the
// simple mapping.
func LowerFull(cp rune, ctx CaseContext) []rune {
	if ctx.Locale == LocaleTurkish {
		switch cp {
		case 'I':
			return []rune{0x0131} // ı
		case 0x0130: // İ -> i, dot dropped
			return []rune{'i'}
		}
	}

	if ctx.Locale == LocaleLithuanian && ctx.FollowedByAbove {
		switch cp {
		case 'I':
			return []rune{'i', 0x0307}
		case 'J':
			return []rune{'j', 0x0307}
		case 0x012E: // Į
			return []rune{0x012F, 0x0307}
		}
	}

	if cp == 0x03A3 { // Σ
		if ctx.FinalSigma {
			return []rune{0x03C2}
		}
		return []rune{0x03C3}
	}

	rec := Lookup(cp)
	if rec.special != nil && rec.special.lower != nil {
		return rec.special.lower
	}
	if rec.SimpleLower != 0 {
		return []rune{rec.SimpleLower}
	}
	return []rune{cp}
}

// TitleFull returns the full titlecase mapping of cp (used for the first
// letter of a word); it falls back to the simple title mapping, then the
// uppercase mapping, matching the general Unicode rule that titlecase
// defaults to uppercase where no distinct titlecase form exists.
func TitleFull(cp rune, ctx CaseContext) []rune {
	rec := Lookup(cp)
	if rec.special != nil && rec.special.title != nil {
		return rec.special.title
	}
	if rec.SimpleTitle != 0 {
		return []rune{rec.SimpleTitle}
	}
	return UpperFull(cp, ctx)
}

// Fold returns cp's case-insensitive comparison key: the language-neutral
// lowercase mapping, with ß/ẞ and σ/ς/Σ folded to a common representative
// (spec.md §8: "süß" and "SÜSS" compare equal case-insensitively).
func Fold(cp rune) []rune {
	switch cp {
	case 0x00DF, 0x1E9E:
		return []rune{'s', 's'}
	case 0x03A3, 0x03C2:
		return []rune{0x03C3}
	default:
		return LowerFull(cp, CaseContext{})
	}
}
