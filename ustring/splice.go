package ustring

import "github.com/krokodileglue/glyphre/encoding"

// Overwrite replaces the code point at the cursor with raw, rebalancing
// the buffer if the replacement's byte size differs (spec.md §4.3).
func (k *String) Overwrite(raw []byte) {
	size := k.ChrSize()
	tail := append([]byte(nil), k.buf[k.idx+size:]...)
	k.buf = append(k.buf[:k.idx], raw...)
	k.buf = append(k.buf, tail...)
}

// InsertPoint splices a single code point at the cursor, re-encoded in k's
// own format, and advances the cursor past it.
func (k *String) InsertPoint(cp rune) bool {
	enc, ok := encoding.Encode(k.Format, k.Endian, nil, cp)
	if !ok {
		k.Errs = append(k.Errs, encoding.Error{Kind: encoding.NoConversion, CodePoint: cp, HasCodePoint: true, Format: k.Format.String()})
		return false
	}
	k.InsertBuffer(enc)
	return true
}

// InsertBuffer splices raw bytes (already in k's format) at the cursor.
func (k *String) InsertBuffer(raw []byte) {
	tail := append([]byte(nil), k.buf[k.idx:]...)
	k.buf = append(k.buf[:k.idx], raw...)
	k.buf = append(k.buf, tail...)
	k.idx += len(raw)
}

// DeletePoint removes the code point at the cursor.
func (k *String) DeletePoint() {
	size := k.ChrSize()
	if k.idx >= len(k.buf) {
		return
	}
	k.buf = append(k.buf[:k.idx], k.buf[k.idx+size:]...)
}
