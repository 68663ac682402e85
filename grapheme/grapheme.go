// Package grapheme implements extended grapheme cluster boundary detection
// (C5), per spec.md §4.5 (UAX #29).
package grapheme

import "github.com/krokodileglue/glyphre/unicode"

// class is a local alias kept short for the rule table below.
type class = unicode.GraphemeClass

func classOf(cp rune) class { return unicode.Lookup(cp).Grapheme }

// IsBoundary reports whether an extended grapheme cluster boundary exists
// between the code point sequence ending at before and the one starting at
// after. Callers walk a rune slice pairwise; regionalIndicatorParity is the
// count, taken mod 2, of Regional_Indicator code points seen immediately
// before "before" in the current run -- NOT including before itself -- so
// GB12/GB13 can decide whether a third consecutive Regional Indicator
// starts a new cluster or extends the current flag-emoji pair.
func IsBoundary(before, after rune, regionalIndicatorParity int) bool {
	b := classOf(before)
	a := classOf(after)

	// GB3: CR x LF
	if b == unicode.GCCR && a == unicode.GCLF {
		return false
	}
	// GB4: (Control | CR | LF) ÷
	if b == unicode.GCControl || b == unicode.GCCR || b == unicode.GCLF {
		return true
	}
	// GB5: ÷ (Control | CR | LF)
	if a == unicode.GCControl || a == unicode.GCCR || a == unicode.GCLF {
		return true
	}
	// GB6: L x (L | V | LV | LVT)
	if b == unicode.GCL && (a == unicode.GCL || a == unicode.GCV || a == unicode.GCLV || a == unicode.GCLVT) {
		return false
	}
	// GB7: (LV | V) x (V | T)
	if (b == unicode.GCLV || b == unicode.GCV) && (a == unicode.GCV || a == unicode.GCT) {
		return false
	}
	// GB8: (LVT | T) x T
	if (b == unicode.GCLVT || b == unicode.GCT) && a == unicode.GCT {
		return false
	}
	// GB9: x (Extend | ZWJ). Emoji modifiers (Fitzpatrick skin tones) carry
	// the Extend property in the real Unicode data and attach directly to
	// their base with no ZWJ in between, so GCEModifier joins here too.
	if a == unicode.GCExtend || a == unicode.GCZWJ || a == unicode.GCEModifier {
		return false
	}
	// GB9a: x SpacingMark
	if a == unicode.GCSpacingMark {
		return false
	}
	// GB9b: Prepend x
	if b == unicode.GCPrepend {
		return false
	}
	// GB11: (E_Base | E_Base_GAZ) Extend* ZWJ x (E_Modifier | Glue_After_Zwj
	// | E_Base_GAZ). The Extend* run before the ZWJ is already absorbed by
	// GB9, so only the ZWJ x {E_Modifier, Glue_After_Zwj, E_Base_GAZ} link
	// needs checking here.
	if b == unicode.GCZWJ && (a == unicode.GCEModifier || a == unicode.GCGlueAfterZWJ || a == unicode.GCEBaseGAZ) {
		return false
	}
	// GB12/GB13: Regional_Indicator x Regional_Indicator, but only for an
	// odd-positioned pair -- an even number of consecutive Regional
	// Indicators preceding this one means this pair starts a fresh
	// flag-emoji cluster rather than extending the previous one.
	if b == unicode.GCRegionalIndicator && a == unicode.GCRegionalIndicator {
		return regionalIndicatorParity%2 != 0
	}
	// GB999: ÷ any
	return true
}

// NextRegionalIndicatorParity updates the running Regional_Indicator parity
// counter for advancing past cp: it increments on every Regional_Indicator
// code point and resets on anything else, since a non-RI code point always
// starts a fresh counting run (GB12/GB13 only chain consecutive RIs).
func NextRegionalIndicatorParity(parity int, cp rune) int {
	if classOf(cp) == unicode.GCRegionalIndicator {
		return parity + 1
	}
	return 0
}

// Clusters splits cps into extended grapheme clusters, returning the index
// of each cluster's first code point plus a final sentinel equal to
// len(cps), so that consecutive pairs of the returned slice are
// [start, end) ranges.
func Clusters(cps []rune) []int {
	bounds := []int{0}
	if len(cps) == 0 {
		return bounds
	}
	parity := 0
	for i := 0; i < len(cps)-1; i++ {
		if IsBoundary(cps[i], cps[i+1], parity) {
			bounds = append(bounds, i+1)
		}
		if classOf(cps[i]) == unicode.GCRegionalIndicator {
			parity++
		} else {
			parity = 0
		}
	}
	bounds = append(bounds, len(cps))
	return bounds
}

// Next returns the index of the first grapheme cluster boundary strictly
// after k: the start of the cluster that follows the one containing k, or
// len(cps) when k is in the last cluster. It is the cursor-oriented
// counterpart of Clusters, for callers (ustring) that want boundaries
// without materializing the whole slice.
func Next(cps []rune, k int) int {
	if k < 0 {
		k = 0
	}
	if k >= len(cps) {
		return len(cps)
	}
	parity := 0
	for i := k - 1; i >= 0 && classOf(cps[i]) == unicode.GCRegionalIndicator; i-- {
		parity++
	}
	i := k + 1
	for i < len(cps) {
		if IsBoundary(cps[i-1], cps[i], parity) {
			return i
		}
		if classOf(cps[i-1]) == unicode.GCRegionalIndicator {
			parity++
		} else {
			parity = 0
		}
		i++
	}
	return len(cps)
}

// Prev returns the index of the first grapheme cluster boundary strictly
// before k.
func Prev(cps []rune, k int) int {
	if k <= 0 {
		return 0
	}
	i := k - 1
	for i > 0 {
		parity := 0
		for j := i - 2; j >= 0 && classOf(cps[j]) == unicode.GCRegionalIndicator; j-- {
			parity++
		}
		if IsBoundary(cps[i-1], cps[i], parity) {
			return i
		}
		i--
	}
	return 0
}
