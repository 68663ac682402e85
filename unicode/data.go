package unicode

type tableEntry struct {
	cp  rune
	rec Record
}

// overrideTable is built once at init from the ranges and explicit entries
// below. It is the hand-maintained representative data set described in
// the package doc comment.
var overrideTable []tableEntry

// compositionExclusions lists code points whose canonical decomposition
// must never be re-composed, per spec.md §4.1 ("excluding composition
// exclusions"). U+0344 is the classic example: it canonically decomposes
// to 0308 0301 but composing that pair back must not reproduce it (the
// preferred form is the sequence itself).
var compositionExclusions = map[rune]bool{
	0x0344: true,
}

func init() {
	overrideTable = append(overrideTable, asciiLetterEntries()...)
	overrideTable = append(overrideTable, asciiDigitEntries()...)
	overrideTable = append(overrideTable, latin1Entries()...)
	overrideTable = append(overrideTable, combiningMarkEntries()...)
	overrideTable = append(overrideTable, greekEntries()...)
	overrideTable = append(overrideTable, germanicEntries()...)
	overrideTable = append(overrideTable, compatibilityEntries()...)
	overrideTable = append(overrideTable, hangulJamoEntries()...)
	overrideTable = append(overrideTable, controlEntries()...)
	overrideTable = append(overrideTable, emojiEntries()...)
}

// controlEntries covers the ASCII control range plus CR/LF, which get
// their own grapheme classes distinct from the general Control class
// (spec.md §4.5's GB3-GB5).
func controlEntries() []tableEntry {
	var out []tableEntry
	for c := rune(0x00); c <= 0x1F; c++ {
		switch c {
		case '\r':
			out = append(out, tableEntry{c, Record{Category: CategoryControl, Grapheme: GCCR}})
		case '\n':
			out = append(out, tableEntry{c, Record{Category: CategoryControl, Grapheme: GCLF}})
		default:
			out = append(out, tableEntry{c, Record{Category: CategoryControl, Grapheme: GCControl}})
		}
	}
	out = append(out, tableEntry{0x7F, Record{Category: CategoryControl, Grapheme: GCControl}})
	return out
}

// emojiEntries covers a representative sample of the code points the
// extended grapheme cluster rules (GB9a/GB9b/GB11/GB12/GB13) need to
// exercise: Regional Indicators (flag-emoji pairs), a zero-width joiner,
// and one representative emoji sequence member for each of EBase,
// EModifier, GlueAfterZWJ and EBaseGAZ (spec.md §4.5). This is a sample
// sufficient to exercise the rules, not a claim of full emoji-sequence
// table completeness (see the package doc comment).
func emojiEntries() []tableEntry {
	var out []tableEntry
	for cp := rune(0x1F1E6); cp <= 0x1F1FF; cp++ {
		out = append(out, tableEntry{cp, Record{Category: CategorySymbol, Grapheme: GCRegionalIndicator}})
	}
	out = append(out,
		tableEntry{0x200D, Record{Category: CategoryControl, Grapheme: GCZWJ}},                // ZWJ
		tableEntry{0x261D, Record{Category: CategorySymbol, Grapheme: GCEBase}},                // WHITE UP POINTING INDEX
		tableEntry{0x1F3FB, Record{Category: CategorySymbol, Grapheme: GCEModifier}},           // EMOJI MODIFIER FITZPATRICK TYPE-1-2
		tableEntry{0x2764, Record{Category: CategorySymbol, Grapheme: GCGlueAfterZWJ}},         // HEAVY BLACK HEART
		tableEntry{0x1F466, Record{Category: CategorySymbol, Grapheme: GCEBaseGAZ}},            // BOY (can serve as base or glue-after-ZWJ)
	)
	return out
}

func asciiLetterEntries() []tableEntry {
	var out []tableEntry
	for c := rune('A'); c <= 'Z'; c++ {
		out = append(out, tableEntry{c, Record{
			Category: CategoryUppercaseLetter, Grapheme: GCOther,
			SimpleLower: c + 32, SimpleTitle: c,
		}})
		l := c + 32
		out = append(out, tableEntry{l, Record{
			Category: CategoryLowercaseLetter, Grapheme: GCOther,
			SimpleUpper: c, SimpleTitle: c,
		}})
	}
	return out
}

func asciiDigitEntries() []tableEntry {
	var out []tableEntry
	for c := rune('0'); c <= '9'; c++ {
		out = append(out, tableEntry{c, Record{Category: CategoryDecimalNumber, Grapheme: GCOther}})
	}
	return out
}

// accentedPair describes a Latin-1 / Latin Extended-A precomposed letter
// case pair: its uppercase and lowercase forms, followed by the base letter
// and combining mark of the uppercase form's decomposition.
type accentedPair struct {
	upper, lower rune
	base         rune
	mark         rune
}

func latin1Entries() []tableEntry {
	pairs := []accentedPair{
		{0x00C0, 0x00E0, 'A', 0x0300}, // À à (grave)
		{0x00C1, 0x00E1, 'A', 0x0301}, // Á á (acute)
		{0x00C2, 0x00E2, 'A', 0x0302}, // Â â (circumflex)
		{0x00C3, 0x00E3, 'A', 0x0303}, // Ã ã (tilde)
		{0x00C4, 0x00E4, 'A', 0x0308}, // Ä ä (diaeresis)
		{0x00C5, 0x00E5, 'A', 0x030A}, // Å å (ring above)
		{0x00C8, 0x00E8, 'E', 0x0300},
		{0x00C9, 0x00E9, 'E', 0x0301},
		{0x00CA, 0x00EA, 'E', 0x0302},
		{0x00CB, 0x00EB, 'E', 0x0308},
		{0x00CC, 0x00EC, 'I', 0x0300},
		{0x00CD, 0x00ED, 'I', 0x0301},
		{0x00CE, 0x00EE, 'I', 0x0302},
		{0x00CF, 0x00EF, 'I', 0x0308},
		{0x00D1, 0x00F1, 'N', 0x0303}, // Ñ ñ
		{0x00D2, 0x00F2, 'O', 0x0300},
		{0x00D3, 0x00F3, 'O', 0x0301},
		{0x00D4, 0x00F4, 'O', 0x0302},
		{0x00D5, 0x00F5, 'O', 0x0303},
		{0x00D6, 0x00F6, 'O', 0x0308},
		{0x00D9, 0x00F9, 'U', 0x0300},
		{0x00DA, 0x00FA, 'U', 0x0301},
		{0x00DB, 0x00FB, 'U', 0x0302},
		{0x00DC, 0x00FC, 'U', 0x0308},
		{0x00DD, 0x00FD, 'Y', 0x0301},
		{0x0106, 0x0107, 'C', 0x0301}, // Ć ć
		{0x010C, 0x010D, 'C', 0x030C}, // Č č (caron)
		{0x0130, 0, 0, 0},             // İ handled explicitly below
	}

	var out []tableEntry
	for _, p := range pairs {
		if p.base == 0 {
			continue
		}
		out = append(out,
			tableEntry{p.upper, Record{
				Category: CategoryUppercaseLetter, Grapheme: GCOther,
				SimpleLower: p.lower, DecompType: DecompCanonical,
				decompSeq: []rune{p.base, p.mark},
			}},
			tableEntry{p.lower, Record{
				Category: CategoryLowercaseLetter, Grapheme: GCOther,
				SimpleUpper: p.upper, DecompType: DecompCanonical,
				decompSeq: []rune{p.base + 32, p.mark},
			}},
		)
	}
	return out
}

func combiningMarkEntries() []tableEntry {
	// CCC values for a representative set of combining diacritical marks
	// (U+0300 block), enough to exercise canonical reordering (spec.md
	// §4.4 pass 2): above marks (230), below marks (220), and one
	// double-above/iota-subscript class (ccc 240 / 1) to show ties break
	// stably and classes besides 220/230 exist.
	type ccEntry struct {
		cp  rune
		ccc uint8
	}
	entries := []ccEntry{
		{0x0300, 230}, {0x0301, 230}, {0x0302, 230}, {0x0303, 230},
		{0x0304, 230}, {0x0305, 230}, {0x0306, 230}, {0x0307, 230},
		{0x0308, 230}, {0x0309, 230}, {0x030A, 230}, {0x030B, 230},
		{0x030C, 230},
		{0x0316, 220}, {0x0317, 220}, {0x0318, 220}, {0x0319, 220},
		{0x0323, 220}, {0x0324, 220}, {0x0325, 220}, {0x0326, 220},
		{0x0327, 202}, {0x0328, 202}, // cedilla, ogonek
		{0x0345, 240},                // combining greek ypogegrammeni (iota subscript)
	}
	var out []tableEntry
	for _, e := range entries {
		out = append(out, tableEntry{e.cp, Record{
			Category: CategoryNonspacingMark, CCC: e.ccc, Grapheme: GCExtend,
		}})
	}
	// U+0344 composition-exclusion example: canonically equivalent to
	// 0308 0301 but never recomposed (see compositionExclusions).
	out = append(out, tableEntry{0x0344, Record{
		Category: CategoryNonspacingMark, CCC: 230, Grapheme: GCExtend,
		DecompType: DecompCanonical, decompSeq: []rune{0x0308, 0x0301},
	}})
	return out
}

func greekEntries() []tableEntry {
	return []tableEntry{
		{0x03A3, Record{Category: CategoryUppercaseLetter, Grapheme: GCOther,
			SimpleLower: 0x03C3, FinalSigmaSource: true}}, // Σ
		{0x03C3, Record{Category: CategoryLowercaseLetter, Grapheme: GCOther,
			SimpleUpper: 0x03A3}}, // σ
		{0x03C2, Record{Category: CategoryLowercaseLetter, Grapheme: GCOther,
			SimpleUpper: 0x03A3}}, // ς final sigma also uppercases to Σ
	}
}

func germanicEntries() []tableEntry {
	return []tableEntry{
		// ß uppercases (simple mapping) to LATIN CAPITAL LETTER SHARP S.
		// Case-insensitive comparison still treats ß/ẞ as equivalent to
		// "ss" via the fold table in case.go (spec.md §8).
		{0x00DF, Record{Category: CategoryLowercaseLetter, Grapheme: GCOther,
			SimpleUpper: 0x1E9E}},
		{0x1E9E, Record{Category: CategoryUppercaseLetter, Grapheme: GCOther,
			SimpleLower: 0x00DF}},
		// İ LATIN CAPITAL LETTER I WITH DOT ABOVE: default full lowercase
		// is "i" + COMBINING DOT ABOVE (special, see specialCase table);
		// Turkish/Azeri locale overrides drop the dot (see case.go).
		{0x0130, Record{Category: CategoryUppercaseLetter, Grapheme: GCOther,
			special: &specialCase{lower: []rune{0x0069, 0x0307}}}},
		// ı LATIN SMALL LETTER DOTLESS I: simple uppercase is plain 'I'.
		{0x0131, Record{Category: CategoryLowercaseLetter, Grapheme: GCOther,
			SimpleUpper: 0x0049}},
	}
}

func compatibilityEntries() []tableEntry {
	return []tableEntry{
		{0x00B9, Record{Category: CategoryOtherNumber, Grapheme: GCOther,
			DecompType: DecompCompat, decompSeq: []rune{'1'}}}, // ¹
		{0x00B2, Record{Category: CategoryOtherNumber, Grapheme: GCOther,
			DecompType: DecompCompat, decompSeq: []rune{'2'}}}, // ²
		{0x00B3, Record{Category: CategoryOtherNumber, Grapheme: GCOther,
			DecompType: DecompCompat, decompSeq: []rune{'3'}}}, // ³
		{0x00BD, Record{Category: CategoryOtherNumber, Grapheme: GCOther,
			DecompType: DecompCompat, decompSeq: []rune{'1', 0x2044, '2'}}}, // ½
		{0xFB01, Record{Category: CategoryLowercaseLetter, Grapheme: GCOther,
			DecompType: DecompCompat, decompSeq: []rune{'f', 'i'}}}, // ﬁ ligature
	}
}
