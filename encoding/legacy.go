package encoding

// cp1252ToUnicode maps each CP1252 byte value to its Unicode code point.
// Grounded on original_source/src/kdgu.c's `cp1252` table.
var cp1252ToUnicode = [256]rune{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
	0x18, 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F,
	0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27,
	0x28, 0x29, 0x2A, 0x2B, 0x2C, 0x2D, 0x2E, 0x2F,
	0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37,
	0x38, 0x39, 0x3A, 0x3B, 0x3C, 0x3D, 0x3E, 0x3F,
	0x40, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47,
	0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x4D, 0x4E, 0x4F,
	0x50, 0x51, 0x52, 0x53, 0x54, 0x55, 0x56, 0x57,
	0x58, 0x59, 0x5A, 0x5B, 0x5C, 0x5D, 0x5E, 0x5F,
	0x60, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67,
	0x68, 0x69, 0x6A, 0x6B, 0x6C, 0x6D, 0x6E, 0x6F,
	0x70, 0x71, 0x72, 0x73, 0x74, 0x75, 0x76, 0x77,
	0x78, 0x79, 0x7A, 0x7B, 0x7C, 0x7D, 0x7E, 0x7F,
	0x20AC, 0x0000, 0x201A, 0x0192, 0x201E, 0x2026, 0x2020, 0x2021,
	0x02C6, 0x2030, 0x0160, 0x2039, 0x0152, 0x0000, 0x017D, 0x0000,
	0x0000, 0x2018, 0x2019, 0x201C, 0x201D, 0x2022, 0x2013, 0x2014,
	0x02DC, 0x2122, 0x0161, 0x203A, 0x0153, 0x0000, 0x017E, 0x0178,
	0x00A0, 0x00A1, 0x00A2, 0x00A3, 0x00A4, 0x00A5, 0x00A6, 0x00A7,
	0x00A8, 0x00A9, 0x00AA, 0x00AB, 0x00AC, 0x00AD, 0x00AE, 0x00AF,
	0x00B0, 0x00B1, 0x00B2, 0x00B3, 0x00B4, 0x00B5, 0x00B6, 0x00B7,
	0x00B8, 0x00B9, 0x00BA, 0x00BB, 0x00BC, 0x00BD, 0x00BE, 0x00BF,
	0x00C0, 0x00C1, 0x00C2, 0x00C3, 0x00C4, 0x00C5, 0x00C6, 0x00C7,
	0x00C8, 0x00C9, 0x00CA, 0x00CB, 0x00CC, 0x00CD, 0x00CE, 0x00CF,
	0x00D0, 0x00D1, 0x00D2, 0x00D3, 0x00D4, 0x00D5, 0x00D6, 0x00D7,
	0x00D8, 0x00D9, 0x00DA, 0x00DB, 0x00DC, 0x00DD, 0x00DE, 0x00DF,
	0x00E0, 0x00E1, 0x00E2, 0x00E3, 0x00E4, 0x00E5, 0x00E6, 0x00E7,
	0x00E8, 0x00E9, 0x00EA, 0x00EB, 0x00EC, 0x00ED, 0x00EE, 0x00EF,
	0x00F0, 0x00F1, 0x00F2, 0x00F3, 0x00F4, 0x00F5, 0x00F6, 0x00F7,
	0x00F8, 0x00F9, 0x00FA, 0x00FB, 0x00FC, 0x00FD, 0x00FE, 0x00FF,
}

// invalidCP1252 holds the five CP1252 byte values the spec requires
// decoders to reject (undefined positions in the Windows-1252 table):
// 0x81, 0x8D, 0x8F, 0x90, 0x9D.
var invalidCP1252 = map[byte]bool{0x81: true, 0x8D: true, 0x8F: true, 0x90: true, 0x9D: true}

// ebcdic037ToUnicode maps each EBCDIC (CCSID 037) byte value to Unicode.
// Grounded on original_source/src/kdgu.c's `ebcdic` table.
var ebcdic037ToUnicode = [256]rune{
	0x00, 0x01, 0x02, 0x03, 0x9C, 0x09, 0x86, 0x7F,
	0x97, 0x8D, 0x8E, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	0x10, 0x11, 0x12, 0x13, 0x9D, 0x85, 0x08, 0x87,
	0x18, 0x19, 0x92, 0x8F, 0x1C, 0x1D, 0x1E, 0x1F,
	0x80, 0x81, 0x82, 0x83, 0x84, 0x0A, 0x17, 0x1B,
	0x88, 0x89, 0x8A, 0x8B, 0x8C, 0x05, 0x06, 0x07,
	0x90, 0x91, 0x16, 0x93, 0x94, 0x95, 0x96, 0x04,
	0x98, 0x99, 0x9A, 0x9B, 0x14, 0x15, 0x9E, 0x1A,
	0x20, 0xA0, 0xE2, 0xE4, 0xE0, 0xE1, 0xE3, 0xE5,
	0xE7, 0xF1, 0xA2, 0x2E, 0x3C, 0x28, 0x2B, 0x7C,
	0x26, 0xE9, 0xEA, 0xEB, 0xE8, 0xED, 0xEE, 0xEF,
	0xEC, 0xDF, 0x21, 0x24, 0x2A, 0x29, 0x3B, 0xAC,
	0x2D, 0x2F, 0xC2, 0xC4, 0xC0, 0xC1, 0xC3, 0xC5,
	0xC7, 0xD1, 0xA6, 0x2C, 0x25, 0x5F, 0x3E, 0x3F,
	0xF8, 0xC9, 0xCA, 0xCB, 0xC8, 0xCD, 0xCE, 0xCF,
	0xCC, 0x60, 0x3A, 0x23, 0x40, 0x27, 0x3D, 0x22,
	0xD8, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67,
	0x68, 0x69, 0xAB, 0xBB, 0xF0, 0xFD, 0xFE, 0xB1,
	0xB0, 0x6A, 0x6B, 0x6C, 0x6D, 0x6E, 0x6F, 0x70,
	0x71, 0x72, 0xAA, 0xBA, 0xE6, 0xB8, 0xC6, 0xA4,
	0xB5, 0x7E, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78,
	0x79, 0x7A, 0xA1, 0xBF, 0xD0, 0xDD, 0xDE, 0xAE,
	0x5E, 0xA3, 0xA5, 0xB7, 0xA9, 0xA7, 0xB6, 0xBC,
	0xBD, 0xBE, 0x5B, 0x5D, 0xAF, 0xA8, 0xB4, 0xD7,
	0x7B, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47,
	0x48, 0x49, 0xAD, 0xF4, 0xF6, 0xF2, 0xF3, 0xF5,
	0x7D, 0x4A, 0x4B, 0x4C, 0x4D, 0x4E, 0x4F, 0x50,
	0x51, 0x52, 0xB9, 0xFB, 0xFC, 0xF9, 0xFA, 0xFF,
	0x5C, 0xF7, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58,
	0x59, 0x5A, 0xB2, 0xD4, 0xD6, 0xD2, 0xD3, 0xD5,
	0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37,
	0x38, 0x39, 0xB3, 0xDB, 0xDC, 0xD9, 0xDA, 0x9F,
}

var (
	unicodeToCP1252     map[rune]byte
	unicodeToEBCDIC037   map[rune]byte
)

func init() {
	unicodeToCP1252 = make(map[rune]byte, 256)
	for b, cp := range cp1252ToUnicode {
		if cp != 0 || b == 0 {
			unicodeToCP1252[cp] = byte(b)
		}
	}
	unicodeToEBCDIC037 = make(map[rune]byte, 256)
	for b, cp := range ebcdic037ToUnicode {
		unicodeToEBCDIC037[cp] = byte(b)
	}
}

// invalidEBCDIC037 holds the byte values the spec requires decoders to
// reject: 0x30, 0x31 (unassigned in CCSID 037).
var invalidEBCDIC037 = map[byte]bool{0x30: true, 0x31: true}

// ValidateASCII rejects any byte >= 0x80, replacing it with '?'.
func ValidateASCII(src []byte) (dst []byte, errs []Error) {
	dst = make([]byte, len(src))
	copy(dst, src)
	for i, b := range src {
		if b >= 0x80 {
			errs = append(errs, Error{Kind: InvalidASCII, ByteOffset: i})
			dst[i] = LegacyReplacement
		}
	}
	return dst, errs
}

// ValidateCP1252 rejects the five undefined CP1252 byte values.
func ValidateCP1252(src []byte) (dst []byte, errs []Error) {
	dst = make([]byte, len(src))
	copy(dst, src)
	for i, b := range src {
		if invalidCP1252[b] {
			errs = append(errs, Error{Kind: InvalidCP1252, ByteOffset: i})
			dst[i] = LegacyReplacement
		}
	}
	return dst, errs
}

// ValidateEBCDIC037 rejects the two undefined CCSID 037 byte values.
func ValidateEBCDIC037(src []byte) (dst []byte, errs []Error) {
	dst = make([]byte, len(src))
	copy(dst, src)
	for i, b := range src {
		if invalidEBCDIC037[b] {
			errs = append(errs, Error{Kind: InvalidEBCDIC, ByteOffset: i})
			// EBCDIC has no ASCII '?' in the same slot identity-wise;
			// the replacement policy still uses the legacy '?' scalar,
			// re-encoded in EBCDIC below.
			dst[i] = unicodeToEBCDIC037[LegacyReplacement]
		}
	}
	return dst, errs
}

// DecodeCP1252At, DecodeASCIIAt and DecodeEBCDIC037At decode the single
// byte at i into its Unicode scalar value; every legacy encoding is
// fixed-width at one byte per code point.
func DecodeASCIIAt(buf []byte, i int) (cp rune, size int) { return rune(buf[i]), 1 }
func DecodeCP1252At(buf []byte, i int) (cp rune, size int) {
	return cp1252ToUnicode[buf[i]], 1
}
func DecodeEBCDIC037At(buf []byte, i int) (cp rune, size int) {
	return ebcdic037ToUnicode[buf[i]], 1
}

// EncodeASCII, EncodeCP1252 and EncodeEBCDIC037 append the single-byte
// encoding of cp, or '?' plus ok=false if cp has no representation.
func EncodeASCII(dst []byte, cp rune) ([]byte, bool) {
	if cp >= 0x80 {
		return append(dst, LegacyReplacement), false
	}
	return append(dst, byte(cp)), true
}

func EncodeCP1252(dst []byte, cp rune) ([]byte, bool) {
	if b, ok := unicodeToCP1252[cp]; ok {
		return append(dst, b), true
	}
	return append(dst, LegacyReplacement), false
}

func EncodeEBCDIC037(dst []byte, cp rune) ([]byte, bool) {
	if b, ok := unicodeToEBCDIC037[cp]; ok {
		return append(dst, b), true
	}
	return append(dst, unicodeToEBCDIC037[LegacyReplacement]), false
}
