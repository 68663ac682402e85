package encoding

func get32(b []byte, i int, endian Endian) uint32 {
	if endian == EndianLittle {
		return uint32(b[i]) | uint32(b[i+1])<<8 | uint32(b[i+2])<<16 | uint32(b[i+3])<<24
	}
	return uint32(b[i])<<24 | uint32(b[i+1])<<16 | uint32(b[i+2])<<8 | uint32(b[i+3])
}

func put32(dst []byte, v uint32, endian Endian) []byte {
	if endian == EndianLittle {
		return append(dst, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return append(dst, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// sniffUTF32BOM detects a 4-byte byte-order mark at the start of src.
func sniffUTF32BOM(src []byte) (Endian, int) {
	if len(src) < 4 {
		return EndianNone, 0
	}
	if src[0] == 0x00 && src[1] == 0x00 && src[2] == 0xFE && src[3] == 0xFF {
		return EndianBig, 4
	}
	if src[0] == 0xFF && src[1] == 0xFE && src[2] == 0x00 && src[3] == 0x00 {
		return EndianLittle, 4
	}
	return EndianNone, 0
}

// ValidateUTF32 decodes src as UTF-32 (BOM-sniffed when endian is
// EndianNone, defaulting to big-endian), rejecting surrogates, values
// beyond U+10FFFF, and noncharacters.
func ValidateUTF32(src []byte, endian Endian) (dst []byte, outEndian Endian, errs []Error) {
	i := 0
	outEndian = endian
	if endian == EndianNone {
		if bomEndian, n := sniffUTF32BOM(src); n > 0 {
			outEndian = bomEndian
			i = n
		} else {
			outEndian = EndianBig
		}
	}

	dst = make([]byte, 0, len(src))
	for i < len(src) {
		if len(src)-i < 4 {
			errs = append(errs, Error{Kind: EOS, ByteOffset: i})
			dst = put32(dst, uint32(UnicodeReplacement), outEndian)
			i = len(src)
			break
		}
		v := get32(src, i, outEndian)
		cp := rune(v)
		switch {
		case v > 0x10FFFF || IsSurrogate(cp):
			errs = append(errs, Error{Kind: Noncharacter, ByteOffset: i, CodePoint: cp, HasCodePoint: true})
			dst = put32(dst, uint32(UnicodeReplacement), outEndian)
		case IsNoncharacter(cp):
			errs = append(errs, Error{Kind: Noncharacter, ByteOffset: i, CodePoint: cp, HasCodePoint: true})
			dst = put32(dst, uint32(UnicodeReplacement), outEndian)
		default:
			dst = put32(dst, v, outEndian)
		}
		i += 4
	}
	return dst, outEndian, errs
}

// DecodeUTF32At decodes one code point from a validated UTF-32 buffer.
func DecodeUTF32At(buf []byte, i int, endian Endian) (cp rune, size int) {
	return rune(get32(buf, i, endian)), 4
}

// AppendUTF32 appends the UTF-32 encoding of cp to dst in the given endian.
func AppendUTF32(dst []byte, cp rune, endian Endian) []byte {
	return put32(dst, uint32(cp), endian)
}
