package ustring

import (
	"github.com/krokodileglue/glyphre/encoding"
	"github.com/krokodileglue/glyphre/grapheme"
	"github.com/krokodileglue/glyphre/internal/simd"
)

// asciiRunLen returns the length of the leading run of single-byte (high
// bit clear) bytes in buf, using internal/simd's byte-class scan. In UTF-8
// every byte in such a run is itself a complete one-byte code point, so
// callers can advance their cursor by the whole run length instead of
// decoding one code point at a time.
func asciiRunLen(buf []byte) int {
	if idx := simd.IndexNonASCII(buf); idx >= 0 {
		return idx
	}
	return len(buf)
}

func decodeAtFormat(format encoding.Format, endian encoding.Endian, buf []byte, idx int) (rune, int) {
	return encoding.DecodeAt(format, endian, buf, idx)
}

// Idx returns the current byte cursor position.
func (k *String) Idx() int { return k.idx }

// SetIdx moves the cursor directly to a byte offset.
func (k *String) SetIdx(idx int) { k.idx = idx }

// Decode returns the code point at the cursor without moving it.
func (k *String) Decode() rune {
	cp, _ := encodingDecodeAt(k, k.idx)
	return cp
}

// ChrSize returns the byte size of the code point at the cursor.
func (k *String) ChrSize() int {
	_, size := encodingDecodeAt(k, k.idx)
	if size <= 0 {
		return 1
	}
	return size
}

// Inc advances the cursor to the next code point and returns the number of
// bytes it moved by, or 0 if already at the end.
func (k *String) Inc() int {
	if k.idx >= len(k.buf) {
		return 0
	}
	size := k.ChrSize()
	k.idx += size
	return size
}

// Dec moves the cursor to the previous code point and returns the number of
// bytes it moved by, or 0 if already at the start. For every encoding,
// fixed-width ones included, it scans forward from the buffer start to
// find where the previous code point begins.
func (k *String) Dec() int {
	if k.idx <= 0 {
		return 0
	}
	prevIdx := 0
	for i := 0; i < k.idx; {
		if k.Format == encoding.UTF8 {
			if run := asciiRunLen(k.buf[i:k.idx]); run > 0 {
				if i+run >= k.idx {
					prevIdx = k.idx - 1
					break
				}
				i += run
				continue
			}
		}
		size := chrSizeAt(k, i)
		if i+size >= k.idx {
			prevIdx = i
			break
		}
		i += size
	}
	moved := k.idx - prevIdx
	k.idx = prevIdx
	return moved
}

// Next moves the cursor to the next extended grapheme cluster boundary.
func (k *String) Next() int {
	cps, byteOffsets := k.runesWithOffsets()
	pos := runeIndexForByte(byteOffsets, k.idx)
	next := grapheme.Next(cps, pos)
	if next >= len(byteOffsets) {
		k.idx = len(k.buf)
	} else {
		k.idx = byteOffsets[next]
	}
	return k.idx
}

// Prev moves the cursor to the previous extended grapheme cluster boundary.
func (k *String) Prev() int {
	cps, byteOffsets := k.runesWithOffsets()
	pos := runeIndexForByte(byteOffsets, k.idx)
	prev := grapheme.Prev(cps, pos)
	k.idx = byteOffsets[prev]
	return k.idx
}

// Nth seeks the cursor to the byte offset of the n-th code point (0-based)
// and reports whether n was in range.
func (k *String) Nth(n int) bool {
	i, count := 0, 0
	for i < len(k.buf) {
		if count == n {
			k.idx = i
			return true
		}
		i += chrSizeAt(k, i)
		count++
	}
	if count == n {
		k.idx = len(k.buf)
		return true
	}
	return false
}

func encodingDecodeAt(k *String, idx int) (rune, int) {
	return decodeAtFormat(k.Format, k.Endian, k.buf, idx)
}

func chrSizeAt(k *String, idx int) int {
	_, size := decodeAtFormat(k.Format, k.Endian, k.buf, idx)
	if size <= 0 {
		return 1
	}
	return size
}

func (k *String) runesWithOffsets() ([]rune, []int) {
	cps := make([]rune, 0, len(k.buf))
	offsets := make([]int, 0, len(k.buf)+1)
	for i := 0; i < len(k.buf); {
		if k.Format == encoding.UTF8 {
			if run := asciiRunLen(k.buf[i:]); run > 0 {
				for j := 0; j < run; j++ {
					offsets = append(offsets, i+j)
					cps = append(cps, rune(k.buf[i+j]))
				}
				i += run
				continue
			}
		}
		cp, size := decodeAtFormat(k.Format, k.Endian, k.buf, i)
		if size <= 0 {
			size = 1
		}
		offsets = append(offsets, i)
		cps = append(cps, cp)
		i += size
	}
	offsets = append(offsets, len(k.buf))
	return cps, offsets
}

// runeIndexForByte returns the index of the first rune whose byte offset
// is at or after byteOffset (the last index if none is).
func runeIndexForByte(offsets []int, byteOffset int) int {
	for i, off := range offsets {
		if off >= byteOffset {
			return i
		}
	}
	return len(offsets) - 1
}
