package unicode

// Hangul syllable decomposition constants, per spec.md §4.1.
const (
	SBase = 0xAC00
	LBase = 0x1100
	VBase = 0x1161
	TBase = 0x11A7
	LCount = 19
	VCount = 21
	TCount = 28
	NCount = VCount * TCount
	SCount = LCount * NCount
)

// IsHangulSyllable reports whether cp is a precomposed Hangul syllable.
func IsHangulSyllable(cp rune) bool {
	return cp >= SBase && cp < SBase+SCount
}

// hangulJamoEntries populates grapheme-boundary classes for the Hangul
// jamo blocks (L, V, T) and precomposed syllable block (LV, LVT), per
// spec.md §4.5's GB6-GB8. The syllable block's LV-vs-LVT split is the
// same arithmetic DecomposeChar uses, run once at init time rather than
// encoded as a literal table.
func hangulJamoEntries() []tableEntry {
	var out []tableEntry
	for cp := rune(LBase); cp < LBase+LCount; cp++ {
		out = append(out, tableEntry{cp, Record{Category: CategoryOtherLetter, Grapheme: GCL}})
	}
	for cp := rune(VBase); cp < VBase+VCount; cp++ {
		out = append(out, tableEntry{cp, Record{Category: CategoryOtherLetter, Grapheme: GCV}})
	}
	for cp := rune(TBase + 1); cp < TBase+TCount; cp++ {
		out = append(out, tableEntry{cp, Record{Category: CategoryOtherLetter, Grapheme: GCT}})
	}
	for s := rune(SBase); s < SBase+SCount; s++ {
		class := GCLVT
		if (s-SBase)%TCount == 0 {
			class = GCLV
		}
		out = append(out, tableEntry{s, Record{Category: CategoryOtherLetter, Grapheme: class}})
	}
	return out
}

// DecomposeHangul arithmetically decomposes a precomposed Hangul syllable
// into its Leading/Vowel/(optional Trailing) jamo, per spec.md §4.1.
func DecomposeHangul(s rune) []rune {
	sIndex := s - SBase
	l := LBase + sIndex/NCount
	v := VBase + (sIndex%NCount)/TCount
	t := sIndex % TCount
	if t == 0 {
		return []rune{l, v}
	}
	return []rune{l, v, TBase + t}
}

// ComposeHangul implements the Hangul arithmetic half of lookup_comp:
// L+V -> LV syllable, LV+T -> LVT syllable.
func ComposeHangul(a, b rune) (rune, bool) {
	if a >= LBase && a < LBase+LCount && b >= VBase && b < VBase+VCount {
		lIndex := a - LBase
		vIndex := b - VBase
		return SBase + lIndex*NCount + vIndex*TCount, true
	}
	if IsHangulSyllable(a) && (a-SBase)%TCount == 0 && b > TBase && b < TBase+TCount {
		return a + (b - TBase), true
	}
	return 0, false
}
