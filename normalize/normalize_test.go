package normalize

import (
	"testing"

	"github.com/krokodileglue/glyphre/unicode"
)

func runes(s string) []rune { return []rune(s) }

func TestDecomposeAccentedLatin(t *testing.T) {
	// é (U+00E9) decomposes to e + combining acute (U+0301).
	got := Normalize(runes("é"), None, NFD)
	want := []rune{'e', 0x0301}
	if string(got) != string(want) {
		t.Fatalf("NFD(é) = %U, want %U", got, want)
	}
}

func TestComposeRoundTrip(t *testing.T) {
	d := Normalize(runes("é"), None, NFD)
	c := Normalize(d, NFD, NFC)
	if string(c) != "é" {
		t.Fatalf("NFC(NFD(é)) = %q, want %q", string(c), "é")
	}
}

func TestNormalizeIdempotence(t *testing.T) {
	for _, form := range []Form{NFC, NFD, NFKC, NFKD} {
		once := Normalize(runes("café ½ ﬁ"), None, form)
		twice := Normalize(once, form, form)
		if string(once) != string(twice) {
			t.Fatalf("%v not idempotent: %q != %q", form, string(once), string(twice))
		}
	}
}

func TestCanonicalReorderingByCCC(t *testing.T) {
	// U+0301 (acute, CCC 230) followed by U+0316 (grave below, CCC 220)
	// must be reordered to CCC-ascending: grave-below then acute.
	in := []rune{'a', 0x0301, 0x0316}
	got := canonicalReorder(in)
	want := []rune{'a', 0x0316, 0x0301}
	if string(got) != string(want) {
		t.Fatalf("canonicalReorder = %U, want %U", got, want)
	}
}

func TestHangulDecomposeCompose(t *testing.T) {
	syllable := rune(unicode.SBase + 2*unicode.TCount) // precomposed LV-only syllable
	d := Normalize([]rune{syllable}, None, NFD)
	if len(d) != 2 {
		t.Fatalf("Hangul NFD decomposed to %d code points, want 2: %U", len(d), d)
	}
	c := Normalize(d, NFD, NFC)
	if len(c) != 1 || c[0] != syllable {
		t.Fatalf("Hangul NFC(NFD(s)) = %U, want [%U]", c, syllable)
	}
}

func TestCompatibilityDecomposition(t *testing.T) {
	// U+00B9 SUPERSCRIPT ONE only decomposes under NFKD, not NFD.
	nfd := Normalize(runes("¹"), None, NFD)
	if string(nfd) != "¹" {
		t.Fatalf("NFD(¹) = %q, want unchanged", string(nfd))
	}
	nfkd := Normalize(runes("¹"), None, NFKD)
	if string(nfkd) != "1" {
		t.Fatalf("NFKD(¹) = %q, want %q", string(nfkd), "1")
	}
}

func TestStreamSafeInsertsCGJ(t *testing.T) {
	// A run of more than StreamSafeThreshold non-starters must have a
	// Combining Grapheme Joiner inserted before the invariant is violated.
	nonStarter := rune(0x0301)
	run := make([]rune, StreamSafeThreshold+5)
	run[0] = 'a'
	for i := 1; i < len(run); i++ {
		run[i] = nonStarter
	}
	got := Normalize(run, None, NFD)
	count := 0
	sawCGJ := false
	for _, cp := range got {
		if cp == CombiningGraphemeJoiner {
			sawCGJ = true
			count = 0
			continue
		}
		if unicode.Lookup(cp).CCC != 0 {
			count++
		}
		if count > StreamSafeThreshold {
			t.Fatalf("run of %d non-starters exceeds threshold with no CGJ", count)
		}
	}
	if !sawCGJ {
		t.Fatal("expected a Combining Grapheme Joiner to be inserted")
	}
}
