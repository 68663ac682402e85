package unicode

const pageShift = 8
const pageSize = 1 << pageShift // 256
const maxCodePoint = 0x10FFFF

// stage1 maps a page index (cp >> pageShift) to an index into pages.
// Pages are deduplicated: every page that holds only default records
// shares pages[0]. This is the two-stage layout spec.md §3/§4.1 describes;
// deduplication of all-default pages keeps a 0x10FFFF-codepoint address
// space cheap to represent even with a small override data set.
var stage1 []uint16
var pages [][pageSize]Record

func init() {
	numPages := (maxCodePoint >> pageShift) + 1
	stage1 = make([]uint16, numPages)
	pages = append(pages, [pageSize]Record{}) // page 0: all-default

	for _, e := range overrideTable {
		setRecord(e.cp, e.rec)
	}
}

// pageFor returns a mutable pointer to cp's page, cloning the shared
// default page on first write.
func pageFor(cp rune) *[pageSize]Record {
	p := int(cp) >> pageShift
	if stage1[p] == 0 {
		pages = append(pages, pages[0])
		stage1[p] = uint16(len(pages) - 1)
	}
	return &pages[stage1[p]]
}

func setRecord(cp rune, rec Record) {
	page := pageFor(cp)
	page[int(cp)&(pageSize-1)] = rec
}

// Lookup returns the property record for cp. Code points beyond
// U+10FFFF, and any code point this data set has no entry for, resolve to
// the unassigned record (spec.md §4.1).
func Lookup(cp rune) Record {
	if cp < 0 || cp > maxCodePoint {
		return unassigned
	}
	p := int(cp) >> pageShift
	if p >= len(stage1) {
		return unassigned
	}
	return pages[stage1[p]][int(cp)&(pageSize-1)]
}
