// Package normalize implements the Normalizer (C4): decomposition,
// canonical reordering, composition (including Hangul), and Stream-Safe
// Text Format enforcement, per spec.md §4.4.
package normalize

import "github.com/krokodileglue/glyphre/unicode"

// Form names a Unicode normalization form.
type Form int

const (
	None Form = iota
	NFC
	NFD
	NFKC
	NFKD
)

func (f Form) String() string {
	switch f {
	case None:
		return "NONE"
	case NFC:
		return "NFC"
	case NFD:
		return "NFD"
	case NFKC:
		return "NFKC"
	case NFKD:
		return "NFKD"
	default:
		return "INVALID"
	}
}

// StreamSafeThreshold is the maximum run length of non-starter code points
// permitted before a Combining Grapheme Joiner (U+034F) is inserted.
//
// spec.md §4.4 and §9 both flag that the original C source compares
// against a local counter literal "5" rather than the UAX#15-recommended
// 30, and instruct implementers to choose explicitly rather than silently
// replicate the source. This repository follows UAX #15: 30.
const StreamSafeThreshold = 30

// CombiningGraphemeJoiner is inserted to break up an overlong non-starter
// run so Stream-Safe Text Format's invariant holds.
const CombiningGraphemeJoiner rune = 0x034F

// Normalize rewrites cps into the requested normalization form. It is a
// no-op (returns cps unchanged, not even copied) if from == form.
func Normalize(cps []rune, from, form Form) []rune {
	if from == form {
		return cps
	}
	switch form {
	case NFD:
		return streamSafe(canonicalReorder(decomposeToFixedPoint(cps, false)))
	case NFKD:
		return streamSafe(canonicalReorder(decomposeToFixedPoint(cps, true)))
	case NFC:
		return streamSafe(compose(canonicalReorder(decomposeToFixedPoint(cps, false))))
	case NFKC:
		return streamSafe(compose(canonicalReorder(decomposeToFixedPoint(cps, true))))
	default:
		return cps
	}
}

// decomposeToFixedPoint is pass 1 of decomposition (spec.md §4.4): replace
// every code point with its full decomposition, recursively, since a
// decomposition may itself be decomposable.
func decomposeToFixedPoint(cps []rune, compatible bool) []rune {
	out := make([]rune, 0, len(cps))
	for _, cp := range cps {
		out = append(out, decomposeOne(cp, compatible)...)
	}
	return out
}

func decomposeOne(cp rune, compatible bool) []rune {
	if !unicode.HasDecomposition(cp, compatible) {
		return []rune{cp}
	}
	seq := unicode.DecomposeChar(cp, compatible)
	if len(seq) == 1 && seq[0] == cp {
		return seq
	}
	out := make([]rune, 0, len(seq))
	for _, c := range seq {
		out = append(out, decomposeOne(c, compatible)...)
	}
	return out
}

// canonicalReorder is pass 2 of decomposition (spec.md §4.4): within each
// maximal run of non-starters (CCC != 0), stable-sort ascending by CCC.
// Starters (CCC 0) separate runs and never move.
func canonicalReorder(cps []rune) []rune {
	out := make([]rune, len(cps))
	copy(out, cps)

	i := 0
	for i < len(out) {
		if ccc(out[i]) == 0 {
			i++
			continue
		}
		j := i
		for j < len(out) && ccc(out[j]) != 0 {
			j++
		}
		stableSortByCCC(out[i:j])
		i = j
	}
	return out
}

func ccc(cp rune) uint8 { return unicode.Lookup(cp).CCC }

// stableSortByCCC is an insertion sort: the runs normalization reorders
// are short (Stream-Safe caps them at 30), so O(n^2) insertion sort is
// both simple and fast here, and -- critically -- stable under equal CCCs
// (spec.md §4.4 requires this).
func stableSortByCCC(run []rune) {
	for i := 1; i < len(run); i++ {
		v := run[i]
		vccc := ccc(v)
		j := i - 1
		for j >= 0 && ccc(run[j]) > vccc {
			run[j+1] = run[j]
			j--
		}
		run[j+1] = v
	}
}

// compose implements NFC/NFKC's composition pass (spec.md §4.4): starting
// from the decomposed, reordered form, repeatedly try to compose the code
// point at the cursor with the next one; on success, replace the pair and
// back up one step so the new starter can combine with what follows
// (multi-step combination onto a single starter); on failure, advance.
func compose(cps []rune) []rune {
	out := make([]rune, len(cps))
	copy(out, cps)

	pos := 0
	for pos < len(out)-1 {
		a, b := out[pos], out[pos+1]
		// A starter may only compose with a following mark if no
		// intervening non-starter of different CCC has already
		// "blocked" it; since composition here always considers only
		// the immediately adjacent pair, blocking falls out naturally
		// from the loop always re-examining out[pos] against its new
		// neighbor after a successful composition.
		if composed, ok := unicode.LookupComp(a, b); ok {
			out[pos] = composed
			out = append(out[:pos+1], out[pos+2:]...)
			if pos > 0 {
				pos--
			}
			continue
		}
		pos++
	}
	return out
}

// streamSafe enforces Stream-Safe Text Format (spec.md §4.4): traverse
// code points, tracking a running non-starter count; before each code
// point, compute its leading-non-starter run length (from its own
// decomposition, since normalize() has already decomposed, this is simply
// "1 if this code point is a non-starter, else 0" except at sequence
// boundaries where the code point IS itself a decomposition result with
// no further leading non-starters to consider); insert a Combining
// Grapheme Joiner before any code point that would push the running
// count past the threshold.
func streamSafe(cps []rune) []rune {
	out := make([]rune, 0, len(cps))
	running := 0
	for _, cp := range cps {
		isNonStarter := ccc(cp) != 0
		if isNonStarter {
			if running+1 > StreamSafeThreshold {
				out = append(out, CombiningGraphemeJoiner)
				running = 0
			}
			running++
		} else {
			running = 0
		}
		out = append(out, cp)
	}
	return out
}
