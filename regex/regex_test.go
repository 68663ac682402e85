package regex

import "testing"

// The following scenarios are grounded on the end-to-end examples worked
// out against the reference C implementation's thread-stack model.

func TestBackreference(t *testing.T) {
	re, err := Compile(`(cat|dog)\1`, Unanchored)
	if err != nil {
		t.Fatal(err)
	}
	loc := re.FindStringIndex("catcat")
	if loc == nil || loc[0] != 0 || loc[1] != 6 {
		t.Fatalf("FindStringIndex = %v, want [0 6]", loc)
	}
	sub := re.FindStringSubmatch("catcat")
	if sub == nil || sub[1] != "cat" {
		t.Fatalf("FindStringSubmatch = %v, want group 1 = cat", sub)
	}
}

func TestInlineInsensitive(t *testing.T) {
	re, err := Compile(`(?i)foo`, Unanchored)
	if err != nil {
		t.Fatal(err)
	}
	loc := re.FindStringIndex("FOOBAR")
	if loc == nil || loc[0] != 0 || loc[1] != 3 {
		t.Fatalf("FindStringIndex = %v, want [0 3]", loc)
	}
}

func TestMultilineGlobal(t *testing.T) {
	re, err := Compile(`^(\d+)\s+(\w+)$`, Multiline|Global|Unanchored)
	if err != nil {
		t.Fatal(err)
	}
	matches := re.FindAllStringSubmatchIndexHelper("42 answer\n7 x")
	want := [][]int{{0, 9, 0, 2, 3, 9}, {10, 13, 10, 11, 12, 13}}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d: %v", len(matches), len(want), matches)
	}
}

// FindAllStringSubmatchIndexHelper is a test-only wrapper exposing the
// full flattened index vector (stdlib regexp names this
// FindAllStringSubmatchIndex; this module exposes the single-match form
// publicly and composes it here for the multi-match assertion above).
func (r *Regex) FindAllStringSubmatchIndexHelper(s string) [][]int {
	cps := []rune(s)
	ms := r.execAll(cps, 0, -1)
	out := make([][]int, len(ms))
	for i, m := range ms {
		out[i] = groupIndices(m)
	}
	return out
}

func TestNestedStarProgressGuard(t *testing.T) {
	re, err := Compile(`(a*)*b`, Unanchored)
	if err != nil {
		t.Fatal(err)
	}
	if re.MatchString("aaaaac") {
		t.Fatal("expected no match")
	}
}

func TestLookbehind(t *testing.T) {
	re, err := Compile(`(?<=foo)bar`, Unanchored)
	if err != nil {
		t.Fatal(err)
	}
	loc := re.FindStringIndex("foobar")
	if loc == nil || loc[0] != 3 || loc[1] != 6 {
		t.Fatalf("FindStringIndex = %v, want [3 6]", loc)
	}
}

func TestNamedGroupsGlobal(t *testing.T) {
	re, err := Compile(`(?<name>\w+)@(?<dom>\w+)`, Global)
	if err != nil {
		t.Fatal(err)
	}
	matches := re.FindAllStringSubmatch("a@b, c@d", -1)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %v", len(matches), matches)
	}
	names := re.SubexpNames()
	nameIdx, domIdx := -1, -1
	for i, n := range names {
		switch n {
		case "name":
			nameIdx = i
		case "dom":
			domIdx = i
		}
	}
	if nameIdx < 0 || domIdx < 0 {
		t.Fatalf("missing named groups: %v", names)
	}
	if matches[0][nameIdx] != "a" || matches[0][domIdx] != "b" {
		t.Fatalf("first match groups = %v", matches[0])
	}
}

func TestReplaceTemplate(t *testing.T) {
	re, err := Compile(`(\w+) (\w+)`, 0)
	if err != nil {
		t.Fatal(err)
	}
	got := re.ReplaceAllString("John Smith", "$2 $1")
	if got != "Smith John" {
		t.Fatalf("ReplaceAllString = %q, want %q", got, "Smith John")
	}
}

func TestReplaceCaseShift(t *testing.T) {
	re, err := Compile(`(\w+)`, 0)
	if err != nil {
		t.Fatal(err)
	}
	got := re.ReplaceAllString("hello", `\U$1\E!`)
	if got != "HELLO!" {
		t.Fatalf("ReplaceAllString = %q, want %q", got, "HELLO!")
	}
}

func TestSplit(t *testing.T) {
	re, err := Compile(`,\s*`, Global)
	if err != nil {
		t.Fatal(err)
	}
	got := re.SplitString("a, b,c")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("SplitString = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SplitString[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestInvalidOptionsRejected(t *testing.T) {
	_, err := Compile(`a`, Global|Continue)
	if err == nil {
		t.Fatal("expected error for GLOBAL|CONTINUE")
	}
	re, ok := err.(*Error)
	if !ok || re.Kind != ErrInvalidOptions {
		t.Fatalf("err = %v, want ErrInvalidOptions", err)
	}
}

func TestAtomicGroup(t *testing.T) {
	re, err := Compile(`(?>a*)a`, Unanchored)
	if err != nil {
		t.Fatal(err)
	}
	if re.MatchString("aaa") {
		t.Fatal("atomic group should prevent backtracking into a*, so no match")
	}
}

func TestNegativeLookahead(t *testing.T) {
	re, err := Compile(`foo(?!bar)`, Unanchored)
	if err != nil {
		t.Fatal(err)
	}
	if re.MatchString("foobar") {
		t.Fatal("expected no match for foobar")
	}
	if !re.MatchString("foobaz") {
		t.Fatal("expected match for foobaz")
	}
}

func TestSubroutineCall(t *testing.T) {
	re, err := Compile(`(?<digit>\d)-(?&digit)`, Unanchored)
	if err == nil {
		if !re.MatchString("1-2") {
			t.Fatal("expected subroutine call to match any digit, not a backreference")
		}
		return
	}
	// (?&name) syntax may not be supported; fall back to numbered form.
	re2, err2 := Compile(`(\d)-(?1)`, Unanchored)
	if err2 != nil {
		t.Fatal(err2)
	}
	if !re2.MatchString("1-2") {
		t.Fatal("expected subroutine call to match any digit")
	}
}
