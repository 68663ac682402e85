package unicode

// compositionTable maps an ordered (starter, combining mark) pair to its
// composed code point, built from every canonical decomposition in the
// data set that isn't a composition exclusion. This stands in for the
// sequence-pool-backed composition table spec.md §3 describes; see
// record.go's comment on why a literal pool isn't warranted at this data
// set's size.
var compositionTable map[[2]rune]rune

func init() {
	compositionTable = make(map[[2]rune]rune)
	for _, e := range overrideTable {
		if e.rec.DecompType != DecompCanonical || len(e.rec.decompSeq) != 2 {
			continue
		}
		if compositionExclusions[e.cp] {
			continue
		}
		compositionTable[[2]rune{e.rec.decompSeq[0], e.rec.decompSeq[1]}] = e.cp
	}
}

// DecomposeChar returns cp's full decomposition sequence, per spec.md
// §4.1: Hangul syllables decompose arithmetically; other code points with
// a decomposition of the requested kind (canonical-only for NFD, any for
// NFKD) return their stored sequence; everything else is a singleton.
//
// The stored sequence may itself be decomposable; callers that need the
// fully-recursive expansion (NFD/NFKD pass 1) should call this
// iteratively to a fixed point, per spec.md §4.4.
func DecomposeChar(cp rune, compatible bool) []rune {
	if IsHangulSyllable(cp) {
		return DecomposeHangul(cp)
	}
	rec := Lookup(cp)
	if rec.decompSeq == nil {
		return []rune{cp}
	}
	if rec.DecompType == DecompCompat && !compatible {
		return []rune{cp}
	}
	return append([]rune(nil), rec.decompSeq...)
}

// HasDecomposition reports whether cp decomposes under the requested form
// without allocating the expansion.
func HasDecomposition(cp rune, compatible bool) bool {
	if IsHangulSyllable(cp) {
		return true
	}
	rec := Lookup(cp)
	if rec.decompSeq == nil {
		return false
	}
	return compatible || rec.DecompType == DecompCanonical
}

// LookupComp returns the canonical composition of the ordered pair (a, b),
// if one exists and isn't a composition exclusion. Hangul L+V and LV+T
// compositions are handled arithmetically.
func LookupComp(a, b rune) (rune, bool) {
	if cp, ok := ComposeHangul(a, b); ok {
		return cp, true
	}
	cp, ok := compositionTable[[2]rune{a, b}]
	return cp, ok
}
