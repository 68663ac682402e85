package grapheme

import "testing"

func TestCRLFIsOneCluster(t *testing.T) {
	cps := []rune{'\r', '\n'}
	bounds := Clusters(cps)
	want := []int{0, 2}
	if !equalInts(bounds, want) {
		t.Fatalf("Clusters(\\r\\n) = %v, want %v", bounds, want)
	}
}

func TestBaseWithMarksIsOneCluster(t *testing.T) {
	cps := []rune{'e', 0x0301, 0x0302}
	bounds := Clusters(cps)
	want := []int{0, 3}
	if !equalInts(bounds, want) {
		t.Fatalf("Clusters(base+marks) = %v, want %v", bounds, want)
	}
}

func TestRegionalIndicatorPairIsOneCluster(t *testing.T) {
	cps := []rune{0x1F1FA, 0x1F1F8} // US flag: RI U + RI S
	bounds := Clusters(cps)
	want := []int{0, 2}
	if !equalInts(bounds, want) {
		t.Fatalf("Clusters(RI RI) = %v, want %v", bounds, want)
	}
}

func TestFourRegionalIndicatorsAreTwoClusters(t *testing.T) {
	cps := []rune{0x1F1FA, 0x1F1F8, 0x1F1EB, 0x1F1F7} // US flag, FR flag
	bounds := Clusters(cps)
	want := []int{0, 2, 4}
	if !equalInts(bounds, want) {
		t.Fatalf("Clusters(RI RI RI RI) = %v, want %v", bounds, want)
	}
}

func TestEmojiZWJSequenceIsOneCluster(t *testing.T) {
	// EBaseGAZ ZWJ GlueAfterZWJ ZWJ EBaseGAZ
	cps := []rune{0x1F466, 0x200D, 0x2764, 0x200D, 0x1F466}
	bounds := Clusters(cps)
	want := []int{0, len(cps)}
	if !equalInts(bounds, want) {
		t.Fatalf("Clusters(ZWJ sequence) = %v, want %v", bounds, want)
	}
}

func TestEBaseModifierIsOneCluster(t *testing.T) {
	cps := []rune{0x261D, 0x1F3FB} // index pointing up + skin tone modifier
	bounds := Clusters(cps)
	want := []int{0, 2}
	if !equalInts(bounds, want) {
		t.Fatalf("Clusters(EBase EModifier) = %v, want %v", bounds, want)
	}
}

func TestNextPrevCursor(t *testing.T) {
	cps := []rune{'a', 'e', 0x0301, 'b'}
	if n := Next(cps, 0); n != 1 {
		t.Fatalf("Next(0) = %d, want 1", n)
	}
	if n := Next(cps, 1); n != 3 {
		t.Fatalf("Next(1) = %d, want 3 (base+mark is one cluster)", n)
	}
	if p := Prev(cps, 3); p != 1 {
		t.Fatalf("Prev(3) = %d, want 1", p)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
