package ustring

import (
	"testing"

	"github.com/krokodileglue/glyphre/encoding"
	"github.com/krokodileglue/glyphre/normalize"
	"github.com/krokodileglue/glyphre/unicode"
)

func TestUpperSharpS(t *testing.T) {
	s := New(encoding.UTF8, encoding.EndianNone, []byte("süß"))
	s.Upper(unicode.LocaleNone)
	if got := string(s.Bytes()); got != "SÜẞ" {
		t.Fatalf("Upper(süß) = %q, want %q", got, "SÜẞ")
	}
}

func TestTurkishDottedI(t *testing.T) {
	s := New(encoding.UTF8, encoding.EndianNone, []byte("i"))
	s.Upper(unicode.LocaleTurkish)
	if got := string(s.Bytes()); got != "İ" {
		t.Fatalf("Turkish Upper(i) = %q, want %q", got, "İ")
	}
}

func TestCapitalIDotAboveLowercases(t *testing.T) {
	s := New(encoding.UTF8, encoding.EndianNone, []byte("\U00000130"))
	s.Lower(unicode.LocaleNone)
	want := "i̇"
	if got := string(s.Bytes()); got != want {
		t.Fatalf("Lower(İ) = %q, want %q", got, want)
	}
}

func TestReverseByGraphemeCluster(t *testing.T) {
	// "é" (e + combining acute) is one grapheme cluster; reversing
	// "ab" + cluster must keep the cluster intact, not split it.
	s := New(encoding.UTF8, encoding.EndianNone, []byte("a"+"é"+"b"))
	s.Reverse()
	want := "b" + "é" + "a"
	if got := string(s.Bytes()); got != want {
		t.Fatalf("Reverse = %q, want %q", got, want)
	}
}

func TestContains(t *testing.T) {
	s := New(encoding.UTF8, encoding.EndianNone, []byte("hello"))
	if !s.Contains('e') {
		t.Fatal("Contains('e') = false, want true")
	}
	if s.Contains('z') {
		t.Fatal("Contains('z') = true, want false")
	}
}

func TestContainsAny(t *testing.T) {
	s := New(encoding.UTF8, encoding.EndianNone, []byte("hello"))
	if !s.ContainsAny([]rune{'z', 'l'}) {
		t.Fatal("ContainsAny([z l]) = false, want true")
	}
	if s.ContainsAny([]rune{'x', 'y', 'z'}) {
		t.Fatal("ContainsAny([x y z]) = true, want false")
	}
}

func TestSubstrAndDelete(t *testing.T) {
	s := New(encoding.UTF8, encoding.EndianNone, []byte("hello world"))
	sub := s.Substr(0, 5)
	if got := string(sub.Bytes()); got != "hello" {
		t.Fatalf("Substr = %q, want %q", got, "hello")
	}
	s.Delete(5, 11)
	if got := string(s.Bytes()); got != "hello" {
		t.Fatalf("after Delete = %q, want %q", got, "hello")
	}
}

func TestCursorNextPrevGraphemeBoundary(t *testing.T) {
	s := New(encoding.UTF8, encoding.EndianNone, []byte("a"+"é"+"b"))
	s.SetIdx(0)
	s.Next()
	if got := s.Decode(); got != 'é' {
		t.Fatalf("after Next, Decode = %q, want 'é'", got)
	}
	s.Next()
	if got := s.Decode(); got != 'b' {
		t.Fatalf("after second Next, Decode = %q, want 'b'", got)
	}
}

func TestInsertAndDeletePoint(t *testing.T) {
	s := New(encoding.UTF8, encoding.EndianNone, []byte("ac"))
	s.SetIdx(1)
	s.InsertPoint('b')
	if got := string(s.Bytes()); got != "abc" {
		t.Fatalf("InsertPoint = %q, want %q", got, "abc")
	}
	s.SetIdx(1)
	s.DeletePoint()
	if got := string(s.Bytes()); got != "ac" {
		t.Fatalf("DeletePoint = %q, want %q", got, "ac")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	s := New(encoding.UTF8, encoding.EndianNone, []byte("é"))
	s.Normalize(normalize.NFC)
	once := string(s.Bytes())
	s.Normalize(normalize.NFC)
	twice := string(s.Bytes())
	if once != twice {
		t.Fatalf("normalize not idempotent: %q != %q", once, twice)
	}
}
