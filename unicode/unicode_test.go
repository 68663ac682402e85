package unicode

import "testing"

func TestLookupASCIILetterCasePair(t *testing.T) {
	rec := Lookup('A')
	if rec.SimpleLower != 'a' {
		t.Fatalf("Lookup('A').SimpleLower = %c, want a", rec.SimpleLower)
	}
	rec = Lookup('a')
	if rec.SimpleUpper != 'A' {
		t.Fatalf("Lookup('a').SimpleUpper = %c, want A", rec.SimpleUpper)
	}
}

func TestLookupUnassignedIsZeroRecord(t *testing.T) {
	rec := Lookup(0x10FFFF)
	if rec.SimpleUpper != 0 || rec.SimpleLower != 0 || rec.decompSeq != nil {
		t.Fatalf("Lookup(unassigned) = %+v, want zero value", rec)
	}
}

func TestDecomposeCharLatin1Accented(t *testing.T) {
	got := DecomposeChar('é', false)
	want := []rune{'e', 0x0301}
	if string(got) != string(want) {
		t.Fatalf("DecomposeChar(é) = %U, want %U", got, want)
	}
}

func TestDecomposeCharHangulArithmetic(t *testing.T) {
	got := DecomposeChar(SBase, false)
	want := []rune{LBase, VBase}
	if string(got) != string(want) {
		t.Fatalf("DecomposeChar(SBase) = %U, want %U", got, want)
	}
}

func TestHasDecompositionCanonicalVsCompat(t *testing.T) {
	if !HasDecomposition('é', false) {
		t.Fatal("é should have a canonical decomposition")
	}
	if HasDecomposition(0x00B9, false) {
		t.Fatal("¹ has only a compatibility decomposition, not canonical")
	}
	if !HasDecomposition(0x00B9, true) {
		t.Fatal("¹ should decompose under compatible=true")
	}
}

func TestHasDecompositionSingleton(t *testing.T) {
	if HasDecomposition('x', true) {
		t.Fatal("'x' has no decomposition at all")
	}
}

func TestLookupCompRoundTrip(t *testing.T) {
	cp, ok := LookupComp('e', 0x0301)
	if !ok || cp != 'é' {
		t.Fatalf("LookupComp(e, acute) = (%U, %v), want (é, true)", cp, ok)
	}
}

func TestLookupCompExclusionNeverComposes(t *testing.T) {
	// U+0344 canonically decomposes to 0308 0301 but is a composition
	// exclusion: that pair must never compose back to it.
	if cp, ok := LookupComp(0x0308, 0x0301); ok {
		t.Fatalf("LookupComp(0308, 0301) = (%U, true), want no composition (exclusion)", cp)
	}
}

func TestLookupCompNoMatch(t *testing.T) {
	if _, ok := LookupComp('x', 'y'); ok {
		t.Fatal("LookupComp(x, y) should not compose")
	}
}

func TestHangulComposeDecomposeRoundTrip(t *testing.T) {
	l, v := rune(LBase+3), rune(VBase+5)
	s, ok := ComposeHangul(l, v)
	if !ok {
		t.Fatalf("ComposeHangul(%U, %U) failed", l, v)
	}
	d := DecomposeHangul(s)
	if len(d) != 2 || d[0] != l || d[1] != v {
		t.Fatalf("DecomposeHangul(%U) = %U, want [%U %U]", s, d, l, v)
	}
}

func TestHangulComposeLVPlusT(t *testing.T) {
	lv, ok := ComposeHangul(LBase, VBase)
	if !ok {
		t.Fatal("ComposeHangul(LBase, VBase) failed")
	}
	t_ := rune(TBase + 3)
	lvt, ok := ComposeHangul(lv, t_)
	if !ok {
		t.Fatal("ComposeHangul(LV, T) failed")
	}
	d := DecomposeHangul(lvt)
	if len(d) != 3 || d[2] != t_ {
		t.Fatalf("DecomposeHangul(LVT) = %U, want trailing jamo %U", d, t_)
	}
}

func TestIsHangulSyllableRange(t *testing.T) {
	if !IsHangulSyllable(SBase) {
		t.Fatal("SBase should be a Hangul syllable")
	}
	if IsHangulSyllable(SBase - 1) {
		t.Fatal("SBase-1 should not be a Hangul syllable")
	}
	if IsHangulSyllable(SBase + SCount) {
		t.Fatal("SBase+SCount should be out of range")
	}
}

func TestUpperFullTurkishDottedI(t *testing.T) {
	got := UpperFull('i', CaseContext{Locale: LocaleTurkish})
	if len(got) != 1 || got[0] != 0x0130 {
		t.Fatalf("Turkish UpperFull(i) = %U, want [İ]", got)
	}
}

func TestUpperFullLanguageNeutralI(t *testing.T) {
	got := UpperFull('i', CaseContext{})
	if len(got) != 1 || got[0] != 'I' {
		t.Fatalf("UpperFull(i) = %U, want [I]", got)
	}
}

func TestLowerFullCapitalIDotAbove(t *testing.T) {
	got := LowerFull(0x0130, CaseContext{})
	want := []rune{'i', 0x0307}
	if string(got) != string(want) {
		t.Fatalf("LowerFull(İ) = %U, want %U", got, want)
	}
}

func TestLowerFullTurkishCapitalIDotAbove(t *testing.T) {
	got := LowerFull(0x0130, CaseContext{Locale: LocaleTurkish})
	if len(got) != 1 || got[0] != 'i' {
		t.Fatalf("Turkish LowerFull(İ) = %U, want [i] (dot dropped)", got)
	}
}

func TestLowerFullGreekFinalSigma(t *testing.T) {
	mid := LowerFull(0x03A3, CaseContext{FinalSigma: false})
	if len(mid) != 1 || mid[0] != 0x03C3 {
		t.Fatalf("LowerFull(Σ, non-final) = %U, want [σ]", mid)
	}
	final := LowerFull(0x03A3, CaseContext{FinalSigma: true})
	if len(final) != 1 || final[0] != 0x03C2 {
		t.Fatalf("LowerFull(Σ, final) = %U, want [ς]", final)
	}
}

func TestLowerFullLithuanianDotAbove(t *testing.T) {
	got := LowerFull('I', CaseContext{Locale: LocaleLithuanian, FollowedByAbove: true})
	want := []rune{'i', 0x0307}
	if string(got) != string(want) {
		t.Fatalf("Lithuanian LowerFull(I, followed by above) = %U, want %U", got, want)
	}
	plain := LowerFull('I', CaseContext{Locale: LocaleLithuanian, FollowedByAbove: false})
	if len(plain) != 1 || plain[0] != 'i' {
		t.Fatalf("Lithuanian LowerFull(I, not followed by above) = %U, want [i]", plain)
	}
}

func TestTitleFullFallsBackToUpper(t *testing.T) {
	// à has an uppercase mapping but no simple titlecase mapping.
	got := TitleFull(0x00E0, CaseContext{})
	if len(got) != 1 || got[0] != 0x00C0 {
		t.Fatalf("TitleFull(à) = %U, want [U+00C0]", got)
	}
}

func TestFoldSharpSAndSigma(t *testing.T) {
	if s := string(Fold(0x00DF)); s != "ss" {
		t.Fatalf("Fold(ß) = %q, want ss", s)
	}
	a := Fold(0x03A3)
	b := Fold(0x03C2)
	if string(a) != string(b) {
		t.Fatalf("Fold(Σ) = %U, Fold(ς) = %U, want equal", a, b)
	}
}
