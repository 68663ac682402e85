// Package ustring implements the String component (C3): an owned,
// mutable, encoding-tagged byte buffer with a cursor model, splice
// operations, and grapheme-aware reverse/case mapping, per spec.md §4.3.
package ustring

import (
	"github.com/coregx/ahocorasick"

	"github.com/krokodileglue/glyphre/encoding"
	"github.com/krokodileglue/glyphre/grapheme"
	"github.com/krokodileglue/glyphre/normalize"
	"github.com/krokodileglue/glyphre/unicode"
)

// String is the C3 string value: an owned byte buffer tagged with its
// encoding format, byte order, and normalization form, plus any decode
// errors accumulated while building it. It mirrors kdgu's struct shape
// (alloc/len/s/errlist/norm/fmt/endian) with Go-native slice growth in
// place of the C source's manual realloc bookkeeping.
type String struct {
	buf    []byte
	Format encoding.Format
	Endian encoding.Endian
	Norm   normalize.Form
	Errs   []encoding.Error

	idx int // byte cursor
}

// New validates src as format/endian and returns the resulting string.
// Decode errors are recorded in Errs, not returned as a Go error: spec.md
// §7 requires validation to never abort, only to substitute and record
// (see encoding.Validate).
func New(format encoding.Format, endian encoding.Endian, src []byte) *String {
	dst, outEndian, errs := encoding.Validate(format, endian, src)
	return &String{buf: dst, Format: format, Endian: outEndian, Errs: errs}
}

// NewASCII builds a string directly from a Go string, assumed ASCII-clean;
// non-ASCII bytes are still validated and recorded as errors, matching
// kdgu_news's promotion of a C string straight into a kdgu.
func NewASCII(s string) *String {
	return New(encoding.ASCII, encoding.EndianNone, []byte(s))
}

// Copy returns an independent copy of k.
func (k *String) Copy() *String {
	out := &String{
		buf:    append([]byte(nil), k.buf...),
		Format: k.Format, Endian: k.Endian, Norm: k.Norm,
		Errs: append([]encoding.Error(nil), k.Errs...),
		idx:  k.idx,
	}
	return out
}

// Free releases k's storage by dropping its buffer; Go's garbage collector
// reclaims the memory. The call exists so call sites written against
// kdgu's new/free discipline translate directly.
func (k *String) Free() { k.buf = nil }

// Bytes returns k's raw encoded byte buffer. Callers must not retain or
// mutate the returned slice across further String operations.
func (k *String) Bytes() []byte { return k.buf }

// Len returns the number of code points, not bytes.
func (k *String) Len() int {
	n := 0
	for i := 0; i < len(k.buf); {
		if k.Format == encoding.UTF8 {
			if run := asciiRunLen(k.buf[i:]); run > 0 {
				i += run
				n += run
				continue
			}
		}
		_, size := encoding.DecodeAt(k.Format, k.Endian, k.buf, i)
		if size <= 0 {
			size = 1
		}
		i += size
		n++
	}
	return n
}

// Size returns the number of bytes backing k.
func (k *String) Size() int { return len(k.buf) }

// Reserve grows k's backing array's capacity to at least n bytes, without
// changing its length. Mirrors kdgu_size's preallocation-only contract.
func (k *String) Reserve(n int) {
	if cap(k.buf) >= n {
		return
	}
	grown := make([]byte, len(k.buf), n)
	copy(grown, k.buf)
	k.buf = grown
}

// runes decodes k's full buffer to a rune slice. Internal helper for
// operations (reverse, case mapping, normalize) more naturally expressed
// over code points than raw bytes.
func (k *String) runes() []rune {
	out := make([]rune, 0, len(k.buf))
	for i := 0; i < len(k.buf); {
		if k.Format == encoding.UTF8 {
			if run := asciiRunLen(k.buf[i:]); run > 0 {
				for j := 0; j < run; j++ {
					out = append(out, rune(k.buf[i+j]))
				}
				i += run
				continue
			}
		}
		cp, size := encoding.DecodeAt(k.Format, k.Endian, k.buf, i)
		if size <= 0 {
			size = 1
		}
		out = append(out, cp)
		i += size
	}
	return out
}

// setRunes re-encodes cps into k's buffer in k's current format, recording
// any code points the format cannot represent as NoConversion errors.
func (k *String) setRunes(cps []rune) {
	buf := make([]byte, 0, len(cps)*4)
	var errs []encoding.Error
	for _, cp := range cps {
		enc, ok := encoding.Encode(k.Format, k.Endian, nil, cp)
		if !ok {
			errs = append(errs, encoding.Error{Kind: encoding.NoConversion, CodePoint: cp, HasCodePoint: true, Format: k.Format.String()})
			continue
		}
		buf = append(buf, enc...)
	}
	k.buf = buf
	k.Errs = errs
	if k.idx > len(k.buf) {
		k.idx = len(k.buf)
	}
}

// Equal reports whether k and other decode to the same code point
// sequence, independent of their encoded byte representation.
func (k *String) Equal(other *String) bool {
	a, b := k.runes(), other.runes()
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

// Append appends raw bytes in k's own format, decoding and re-validating
// them so new errors are recorded against the correct offsets.
func (k *String) Append(src []byte) {
	dst, _, errs := encoding.Validate(k.Format, k.Endian, src)
	base := len(k.buf)
	for _, e := range errs {
		e.ByteOffset += base
		k.Errs = append(k.Errs, e)
	}
	k.buf = append(k.buf, dst...)
}

// Concat appends other's code points (re-encoded in k's format) to k.
func (k *String) Concat(other *String) {
	cps := other.runes()
	for _, cp := range cps {
		k.chrappend(cp)
	}
}

// chrappend appends a single code point, re-encoded in k's format.
func (k *String) chrappend(cp rune) bool {
	enc, ok := encoding.Encode(k.Format, k.Endian, nil, cp)
	if !ok {
		k.Errs = append(k.Errs, encoding.Error{Kind: encoding.NoConversion, CodePoint: cp, HasCodePoint: true, Format: k.Format.String()})
		return false
	}
	k.buf = append(k.buf, enc...)
	return true
}

// Delete removes the code points whose byte range falls within [a, b).
func (k *String) Delete(a, b int) {
	if a < 0 {
		a = 0
	}
	if b > len(k.buf) {
		b = len(k.buf)
	}
	if a >= b {
		return
	}
	k.buf = append(k.buf[:a], k.buf[b:]...)
	if k.idx >= b {
		k.idx -= b - a
	} else if k.idx > a {
		k.idx = a
	}
}

// Chomp strips a single trailing whitespace code point, if present, and
// reports whether it removed one.
func (k *String) Chomp() bool {
	cps := k.runes()
	if len(cps) == 0 {
		return false
	}
	last := cps[len(cps)-1]
	if !isWhitespaceRune(last) {
		return false
	}
	k.setRunes(cps[:len(cps)-1])
	return true
}

// Substr returns the substring spanning byte offsets [a, b).
func (k *String) Substr(a, b int) *String {
	if a < 0 {
		a = 0
	}
	if b > len(k.buf) {
		b = len(k.buf)
	}
	if a > b {
		a = b
	}
	out := &String{
		buf:    append([]byte(nil), k.buf[a:b]...),
		Format: k.Format, Endian: k.Endian, Norm: k.Norm,
	}
	return out
}

// IsWhitespace reports whether the code point at byte offset idx is
// whitespace.
func (k *String) IsWhitespace(idx int) bool {
	cp, _ := encoding.DecodeAt(k.Format, k.Endian, k.buf, idx)
	return isWhitespaceRune(cp)
}

func isWhitespaceRune(cp rune) bool {
	switch cp {
	case ' ', '\t', '\n', '\r', '\f', '\v', 0x00A0, 0x2028, 0x2029:
		return true
	default:
		return false
	}
}

// Contains reports whether k holds code point c (spec.md §4.3 `contains?`).
func (k *String) Contains(c rune) bool {
	return k.ContainsAny([]rune{c})
}

// ContainsAny reports whether k holds any code point in set, scanning with
// an Aho-Corasick automaton built over set's UTF-8 encodings. Building the
// automaton is overkill for a single code point but matches the shape real
// callers need: repeated membership scans against a fixed alphabet (stop
// words, delimiter sets, forbidden-character sets) where the automaton is
// built once and reused.
func (k *String) ContainsAny(set []rune) bool {
	if len(set) == 0 {
		return false
	}
	builder := ahocorasick.NewBuilder()
	for _, cp := range set {
		builder.AddPattern([]byte(string(cp)))
	}
	auto, err := builder.Build()
	if err != nil {
		return false
	}
	return auto.IsMatch([]byte(string(k.runes())))
}

// Reverse reverses k's sequence of extended grapheme clusters (not code
// points, not bytes), per spec.md §4.3: it splits the code points into
// clusters and re-encodes them in reverse cluster order.
func (k *String) Reverse() {
	cps := k.runes()
	bounds := grapheme.Clusters(cps)
	nClusters := len(bounds) - 1
	if nClusters < 2 {
		return
	}

	out := make([]rune, 0, len(cps))
	for i := nClusters - 1; i >= 0; i-- {
		out = append(out, cps[bounds[i]:bounds[i+1]]...)
	}
	k.setRunes(out)
}

// caseMap rewrites every code point in k via mapFn, applying
// context-sensitive rules (Greek final sigma, Lithuanian dot-above) where
// the context requires looking at neighboring code points.
func (k *String) caseMap(ctx unicode.CaseContext, mapFn func(rune, unicode.CaseContext) []rune) {
	cps := k.runes()
	out := make([]rune, 0, len(cps))
	for i, cp := range cps {
		c := ctx
		if cp == 0x03A3 {
			c.FinalSigma = isFinalSigmaPosition(cps, i)
		}
		if i+1 < len(cps) {
			c.FollowedByAbove = unicode.Lookup(cps[i+1]).CCC == 230
		}
		out = append(out, mapFn(cp, c)...)
	}
	k.setRunes(out)
}

// isFinalSigmaPosition implements the Unicode final-sigma rule: cp at i is
// a Greek capital sigma preceded by a cased letter and not followed by one
// (spec.md §4.3).
func isFinalSigmaPosition(cps []rune, i int) bool {
	before := false
	for j := i - 1; j >= 0; j-- {
		rec := unicode.Lookup(cps[j])
		if rec.CCC != 0 {
			continue // case-ignorable combining mark, skip
		}
		before = rec.Category == unicode.CategoryUppercaseLetter || rec.Category == unicode.CategoryLowercaseLetter
		break
	}
	if !before {
		return false
	}
	for j := i + 1; j < len(cps); j++ {
		rec := unicode.Lookup(cps[j])
		if rec.CCC != 0 {
			continue
		}
		return !(rec.Category == unicode.CategoryUppercaseLetter || rec.Category == unicode.CategoryLowercaseLetter)
	}
	return true
}

// Upper uppercases every code point in k, applying locale/context rules.
func (k *String) Upper(locale unicode.Locale) {
	k.caseMap(unicode.CaseContext{Locale: locale}, unicode.UpperFull)
}

// Lower lowercases every code point in k, applying locale/context rules.
func (k *String) Lower(locale unicode.Locale) {
	k.caseMap(unicode.CaseContext{Locale: locale}, unicode.LowerFull)
}

// Normalize rewrites k into the requested normalization form; a no-op if
// k.Norm already matches (spec.md §4.4).
func (k *String) Normalize(form normalize.Form) {
	if k.Norm == form {
		return
	}
	k.setRunes(normalize.Normalize(k.runes(), k.Norm, form))
	k.Norm = form
}

// Convert re-encodes k's buffer into dstFormat/dstEndian, per spec.md §4.2.
func (k *String) Convert(dstFormat encoding.Format, dstEndian encoding.Endian) {
	dst, outEndian, errs := encoding.Convert(k.Format, k.Endian, k.buf, dstFormat, dstEndian)
	k.buf, k.Format, k.Endian, k.Errs = dst, dstFormat, outEndian, errs
}
