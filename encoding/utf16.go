package encoding

func get16(b []byte, i int, endian Endian) uint16 {
	if endian == EndianLittle {
		return uint16(b[i]) | uint16(b[i+1])<<8
	}
	return uint16(b[i])<<8 | uint16(b[i+1])
}

func put16(dst []byte, v uint16, endian Endian) []byte {
	if endian == EndianLittle {
		return append(dst, byte(v), byte(v>>8))
	}
	return append(dst, byte(v>>8), byte(v))
}

const (
	highSurrogateLo = 0xD800
	highSurrogateHi = 0xDBFF
	lowSurrogateLo  = 0xDC00
	lowSurrogateHi  = 0xDFFF
)

// sniffUTF16BOM detects a byte-order mark at the start of src and returns
// the endian it selects and the number of bytes it occupies (0 if absent).
func sniffUTF16BOM(src []byte) (Endian, int) {
	if len(src) < 2 {
		return EndianNone, 0
	}
	switch {
	case src[0] == 0xFE && src[1] == 0xFF:
		return EndianBig, 2
	case src[0] == 0xFF && src[1] == 0xFE:
		return EndianLittle, 2
	default:
		return EndianNone, 0
	}
}

// ValidateUTF16 decodes src as UTF-16 in the given endian (EndianNone
// triggers BOM sniffing, defaulting to big-endian absent a BOM, per the
// Unicode default) and re-encodes it in the same endian, replacing
// malformed surrogate sequences with U+FFFD.
func ValidateUTF16(src []byte, endian Endian) (dst []byte, outEndian Endian, errs []Error) {
	i := 0
	outEndian = endian
	if endian == EndianNone {
		if bomEndian, n := sniffUTF16BOM(src); n > 0 {
			outEndian = bomEndian
			i = n
		} else {
			outEndian = EndianBig
		}
	}

	dst = make([]byte, 0, len(src))
	for i < len(src) {
		if len(src)-i < 2 {
			errs = append(errs, Error{Kind: EOS, ByteOffset: i})
			dst = put16(dst, UnicodeReplacement, outEndian)
			i = len(src)
			break
		}
		unit := get16(src, i, outEndian)

		switch {
		case unit >= highSurrogateLo && unit <= highSurrogateHi:
			if len(src)-i < 4 {
				errs = append(errs, Error{Kind: MissingSurrogate, ByteOffset: i})
				dst = put16(dst, UnicodeReplacement, outEndian)
				i += 2
				continue
			}
			low := get16(src, i+2, outEndian)
			if low < lowSurrogateLo || low > lowSurrogateHi {
				errs = append(errs, Error{Kind: MissingSurrogate, ByteOffset: i})
				dst = put16(dst, UnicodeReplacement, outEndian)
				i += 2
				continue
			}
			cp := 0x10000 + (rune(unit)-highSurrogateLo)<<10 + (rune(low) - lowSurrogateLo)
			if IsNoncharacter(cp) {
				errs = append(errs, Error{Kind: Noncharacter, ByteOffset: i, CodePoint: cp, HasCodePoint: true})
				dst = put16(dst, UnicodeReplacement, outEndian)
				i += 4
				continue
			}
			dst = put16(dst, unit, outEndian)
			dst = put16(dst, low, outEndian)
			i += 4
		case unit >= lowSurrogateLo && unit <= lowSurrogateHi:
			errs = append(errs, Error{Kind: MissingSurrogate, ByteOffset: i})
			dst = put16(dst, UnicodeReplacement, outEndian)
			i += 2
		case IsNoncharacter(rune(unit)):
			errs = append(errs, Error{Kind: Noncharacter, ByteOffset: i, CodePoint: rune(unit), HasCodePoint: true})
			dst = put16(dst, UnicodeReplacement, outEndian)
			i += 2
		default:
			dst = put16(dst, unit, outEndian)
			i += 2
		}
	}
	return dst, outEndian, errs
}

// DecodeUTF16At decodes one code point from a validated UTF-16 buffer at
// byte offset i, returning its size in bytes (2 or 4).
func DecodeUTF16At(buf []byte, i int, endian Endian) (cp rune, size int) {
	unit := get16(buf, i, endian)
	if unit >= highSurrogateLo && unit <= highSurrogateHi && i+4 <= len(buf) {
		low := get16(buf, i+2, endian)
		if low >= lowSurrogateLo && low <= lowSurrogateHi {
			return 0x10000 + (rune(unit)-highSurrogateLo)<<10 + (rune(low) - lowSurrogateLo), 4
		}
	}
	return rune(unit), 2
}

// AppendUTF16 appends the UTF-16 encoding of cp (1 or 2 units) to dst in
// the given endian.
func AppendUTF16(dst []byte, cp rune, endian Endian) []byte {
	if cp < 0x10000 {
		return put16(dst, uint16(cp), endian)
	}
	cp -= 0x10000
	hi := uint16(highSurrogateLo + (cp >> 10))
	lo := uint16(lowSurrogateLo + (cp & 0x3FF))
	dst = put16(dst, hi, endian)
	return put16(dst, lo, endian)
}

// UTF16RuneLen returns the number of 16-bit code units cp encodes to.
func UTF16RuneLen(cp rune) int {
	if cp < 0x10000 {
		return 1
	}
	return 2
}
